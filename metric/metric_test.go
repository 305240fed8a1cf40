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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateSentenceIdenticalTokens(t *testing.T) {
	counts := EvaluateSentence([]string{"Oi", ":)"}, []string{"Oi", ":)"})
	assert.Equal(t, Counts{TruePositives: 2}, counts)
	assert.True(t, counts.Correct())
}

func TestEvaluateSentenceExtraPrediction(t *testing.T) {
	counts := EvaluateSentence([]string{"a", "b", "c"}, []string{"a", "c"})
	assert.Equal(t, Counts{TruePositives: 2, FalsePositives: 1, FalseNegatives: 0}, counts)
	assert.False(t, counts.Correct())
}

func TestEvaluateSentenceCountInvariants(t *testing.T) {
	cases := []struct {
		pred []string
		ref  []string
	}{
		{[]string{"Olá", ",", "tudo", "bem", "?"}, []string{"Olá", ",", "tudo", "bem", "?"}},
		{[]string{"Olá,", "tudo", "bem?"}, []string{"Olá", ",", "tudo", "bem", "?"}},
		{[]string{}, []string{"a"}},
		{[]string{"a"}, []string{}},
		{[]string{}, []string{}},
		{[]string{"x", "y"}, []string{"z"}},
	}
	for _, tc := range cases {
		counts := EvaluateSentence(tc.pred, tc.ref)
		assert.Equal(t, len(tc.pred), counts.TruePositives+counts.FalsePositives)
		assert.Equal(t, len(tc.ref), counts.TruePositives+counts.FalseNegatives)
		assert.GreaterOrEqual(t, counts.TruePositives, 0)
	}
}

func TestSentenceScoreSmoothing(t *testing.T) {
	score := SentenceScore(Counts{TruePositives: 2})
	// Smoothing keeps even perfect scores marginally below 1.0.
	assert.Less(t, score.Precision, 1.0)
	assert.InDelta(t, 1.0, score.Precision, 1e-6)
	assert.InDelta(t, 1.0, score.Recall, 1e-6)
	assert.InDelta(t, 1.0, score.FMeasure, 1e-6)
}

func TestSentenceScoreEmptySentence(t *testing.T) {
	score := SentenceScore(Counts{})
	assert.Equal(t, 0.0, score.Precision)
	assert.Equal(t, 0.0, score.Recall)
	assert.Equal(t, 0.0, score.FMeasure)
}

func TestSentenceScoreMixedCounts(t *testing.T) {
	score := SentenceScore(Counts{TruePositives: 2, FalsePositives: 1})
	assert.InDelta(t, 2.0/3.0, score.Precision, 1e-6)
	assert.InDelta(t, 1.0, score.Recall, 1e-6)
	assert.InDelta(t, 0.8, score.FMeasure, 1e-6)
}

func TestScoreForMetric(t *testing.T) {
	counts := Counts{TruePositives: 3, FalsePositives: 1, FalseNegatives: 2}

	precision, err := ScoreForMetric(MetricTokenPrecision, counts)
	assert.NoError(t, err)
	assert.InDelta(t, 0.75, precision, 1e-6)

	recall, err := ScoreForMetric(MetricTokenRecall, counts)
	assert.NoError(t, err)
	assert.InDelta(t, 0.6, recall, 1e-6)

	f1, err := ScoreForMetric(MetricTokenF1, counts)
	assert.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, f1, 1e-6)

	_, err = ScoreForMetric("bleu", counts)
	assert.Error(t, err)
}
