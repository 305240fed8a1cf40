//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

package tokeval

import (
	"fmt"
	"math"
)

// SentenceAccuracy computes the fraction of sentences whose predicted
// tokenization reproduced the reference exactly.
//
// Given:
//
//	numSentences = number of scored sentences
//	incorrect    = indices of sentences with any false positive or
//	               false negative
//
// the accuracy is:
//
//	accuracy = (numSentences - len(incorrect)) / numSentences
//
// An empty dataset has no defined accuracy and returns NaN, matching the
// empty-dataset behavior of the score distributions.
func SentenceAccuracy(numSentences int, incorrect []int) float64 {
	if numSentences <= 0 {
		return math.NaN()
	}
	return float64(numSentences-len(incorrect)) / float64(numSentences)
}

// ParseAccuracyInputs extracts (numSentences, incorrect) from an
// EvaluationResult for SentenceAccuracy calculations. Only cases that were
// scored without errors count as sentences; they are the cases the dataset
// report aggregated.
func ParseAccuracyInputs(result *EvaluationResult) (numSentences int, incorrect []int, err error) {
	if result == nil {
		return 0, nil, fmt.Errorf("evaluation result is nil")
	}
	if result.Dataset == nil {
		return 0, nil, fmt.Errorf("dataset report is nil")
	}
	if result.Dataset.Complete == nil {
		return 0, nil, fmt.Errorf("complete dataset metrics are nil")
	}
	if result.EvalResult == nil {
		return 0, nil, fmt.Errorf("eval set result is nil")
	}
	for _, caseResult := range result.EvalResult.EvalCaseResults {
		if caseResult != nil && caseResult.ErrorMessage == "" {
			numSentences++
		}
	}
	return numSentences, result.Dataset.Complete.IncorrectSentences, nil
}
