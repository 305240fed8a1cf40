//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

// Package metric provides token-level evaluation metrics.
//
// Scores derived from token counts are smoothed with a small epsilon in
// every denominator, so a perfect sentence scores marginally below 1.0.
// The smoothing is part of the observable output and is kept as-is.
package metric

import (
	"trpc.group/trpc-go/trpc-tokeval-go/align"
)

// epsilon is added to every score denominator to avoid division by zero
// when a sentence has no tokens on one side.
const epsilon = 1e-9

// Counts holds the token-level outcome of comparing a predicted
// tokenization against a reference tokenization.
type Counts struct {
	// TruePositives is the number of predicted tokens aligned with the reference.
	TruePositives int `json:"truePositives"`
	// FalsePositives is the number of predicted tokens left unaligned.
	FalsePositives int `json:"falsePositives"`
	// FalseNegatives is the number of reference tokens left unaligned.
	FalseNegatives int `json:"falseNegatives"`
}

// Correct reports whether the prediction reproduced the reference exactly.
func (c Counts) Correct() bool {
	return c.FalsePositives == 0 && c.FalseNegatives == 0
}

// EvaluateSentence compares a predicted token sequence against a reference
// token sequence. True positives are the tokens on the longest common token
// sequence; every other predicted token is a false positive and every other
// reference token is a false negative.
func EvaluateSentence(pred, ref []string) Counts {
	truePositives := align.Length(pred, ref)
	return Counts{
		TruePositives:  truePositives,
		FalsePositives: len(pred) - truePositives,
		FalseNegatives: len(ref) - truePositives,
	}
}

// Score holds precision, recall and F-measure.
type Score struct {
	// Precision is the fraction of predicted tokens that match the reference in range [0, 1).
	Precision float64 `json:"precision"`
	// Recall is the fraction of reference tokens that are matched by the prediction in range [0, 1).
	Recall float64 `json:"recall"`
	// FMeasure is the harmonic mean of precision and recall in range [0, 1).
	FMeasure float64 `json:"fMeasure"`
}

// SentenceScore converts token counts into an epsilon-smoothed score triple.
func SentenceScore(c Counts) Score {
	tp := float64(c.TruePositives)
	precision := tp / (tp + float64(c.FalsePositives) + epsilon)
	recall := tp / (tp + float64(c.FalseNegatives) + epsilon)
	return Score{
		Precision: precision,
		Recall:    recall,
		FMeasure:  2 * precision * recall / (precision + recall + epsilon),
	}
}

// fMeasure computes the unsmoothed harmonic mean of precision and recall.
func fMeasure(precision, recall float64) float64 {
	if precision+recall > 0 {
		return 2 * precision * recall / (precision + recall)
	}
	return 0
}

// EvalMetric represents a thresholded metric applied to each eval case.
type EvalMetric struct {
	// MetricName identifies the metric.
	MetricName string `json:"metricName"`
	// Threshold is the minimum epsilon-smoothed score required to pass.
	Threshold float64 `json:"threshold"`
}
