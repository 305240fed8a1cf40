//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

package metric

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ErrLengthMismatch reports that the predicted and reference sentence lists
// have different lengths.
var ErrLengthMismatch = fmt.Errorf("predicted and reference sentence counts differ")

// Distribution summarizes a per-sentence score across a dataset.
// Mean and Std are NaN for an empty dataset.
type Distribution struct {
	// Mean is the arithmetic mean of the per-sentence scores.
	Mean float64 `json:"mean"`
	// Std is the population standard deviation of the per-sentence scores.
	Std float64 `json:"std"`
}

// Report holds dataset-level score distributions, and the raw totals when
// complete metrics were requested.
type Report struct {
	// Precision is the distribution of per-sentence precision scores.
	Precision Distribution `json:"precision"`
	// Recall is the distribution of per-sentence recall scores.
	Recall Distribution `json:"recall"`
	// FMeasure is the distribution of per-sentence F-measure scores.
	FMeasure Distribution `json:"fMeasure"`
	// Complete carries raw totals and incorrect sentence indices when requested, otherwise nil.
	Complete *Totals `json:"completeMetrics,omitempty"`
}

// Totals accumulates raw token counts across a dataset.
type Totals struct {
	// TruePositives is the dataset-wide sum of aligned tokens.
	TruePositives int `json:"truePositives"`
	// FalsePositives is the dataset-wide sum of unaligned predicted tokens.
	FalsePositives int `json:"falsePositives"`
	// FalseNegatives is the dataset-wide sum of unaligned reference tokens.
	FalseNegatives int `json:"falseNegatives"`
	// IncorrectSentences lists the ascending indices of sentences with any
	// false positive or false negative.
	IncorrectSentences []int `json:"incorrectSentences"`
}

// MicroPrecision is the unsmoothed dataset-wide precision, 0 when undefined.
func (t *Totals) MicroPrecision() float64 {
	denom := t.TruePositives + t.FalsePositives
	if denom == 0 {
		return 0
	}
	return float64(t.TruePositives) / float64(denom)
}

// MicroRecall is the unsmoothed dataset-wide recall, 0 when undefined.
func (t *Totals) MicroRecall() float64 {
	denom := t.TruePositives + t.FalseNegatives
	if denom == 0 {
		return 0
	}
	return float64(t.TruePositives) / float64(denom)
}

// MicroF1 is the harmonic mean of MicroPrecision and MicroRecall, 0 when undefined.
func (t *Totals) MicroF1() float64 {
	return fMeasure(t.MicroPrecision(), t.MicroRecall())
}

// EvaluateDataset scores every predicted sentence against the reference
// sentence at the same index and aggregates the per-sentence scores.
// The only failure is a length mismatch between the two sentence lists,
// reported as an error wrapping ErrLengthMismatch.
func EvaluateDataset(pred, ref [][]string, opt ...Option) (*Report, error) {
	if len(pred) != len(ref) {
		return nil, fmt.Errorf("%w: %d predicted, %d reference", ErrLengthMismatch, len(pred), len(ref))
	}
	counts := make([]Counts, 0, len(pred))
	for i := range pred {
		counts = append(counts, EvaluateSentence(pred[i], ref[i]))
	}
	return Summarize(counts, opt...), nil
}

// Summarize aggregates per-sentence token counts into a dataset report.
// Callers that already hold counts avoid re-running the alignment.
func Summarize(counts []Counts, opt ...Option) *Report {
	opts := newOptions(opt...)
	precisions := make([]float64, 0, len(counts))
	recalls := make([]float64, 0, len(counts))
	fMeasures := make([]float64, 0, len(counts))
	totals := Totals{}
	for i, c := range counts {
		score := SentenceScore(c)
		precisions = append(precisions, score.Precision)
		recalls = append(recalls, score.Recall)
		fMeasures = append(fMeasures, score.FMeasure)
		totals.TruePositives += c.TruePositives
		totals.FalsePositives += c.FalsePositives
		totals.FalseNegatives += c.FalseNegatives
		if !c.Correct() {
			totals.IncorrectSentences = append(totals.IncorrectSentences, i)
		}
	}
	report := &Report{
		Precision: distribution(precisions),
		Recall:    distribution(recalls),
		FMeasure:  distribution(fMeasures),
	}
	if opts.completeMetrics {
		report.Complete = &totals
	}
	return report
}

// distribution computes mean and population standard deviation. The
// population form is intentional: per-sentence scores are the whole
// dataset, not a sample drawn from it.
func distribution(scores []float64) Distribution {
	return Distribution{
		Mean: stat.Mean(scores, nil),
		Std:  stat.PopStdDev(scores, nil),
	}
}
