//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"trpc.group/trpc-go/trpc-tokeval-go/evalresult"
	"trpc.group/trpc-go/trpc-tokeval-go/status"
)

func TestSummarizePrecedence(t *testing.T) {
	got, err := Summarize([]status.EvalStatus{status.EvalStatusPassed, status.EvalStatusFailed})
	assert.NoError(t, err)
	assert.Equal(t, status.EvalStatusFailed, got)

	got, err = Summarize([]status.EvalStatus{status.EvalStatusNotEvaluated, status.EvalStatusPassed})
	assert.NoError(t, err)
	assert.Equal(t, status.EvalStatusPassed, got)

	got, err = Summarize([]status.EvalStatus{status.EvalStatusNotEvaluated, status.EvalStatusNotEvaluated})
	assert.NoError(t, err)
	assert.Equal(t, status.EvalStatusNotEvaluated, got)

	got, err = Summarize(nil)
	assert.NoError(t, err)
	assert.Equal(t, status.EvalStatusNotEvaluated, got)
}

func TestSummarizeUnexpectedStatus(t *testing.T) {
	_, err := Summarize([]status.EvalStatus{status.EvalStatusUnknown})
	assert.Error(t, err)

	_, err = Summarize([]status.EvalStatus{status.EvalStatus(42)})
	assert.Error(t, err)
}

func TestSummarizeMetricsStatus(t *testing.T) {
	got, err := SummarizeMetricsStatus([]*evalresult.EvalMetricResult{
		nil,
		{EvalStatus: status.EvalStatusPassed},
		{EvalStatus: status.EvalStatusNotEvaluated},
	})
	assert.NoError(t, err)
	assert.Equal(t, status.EvalStatusPassed, got)

	got, err = SummarizeMetricsStatus([]*evalresult.EvalMetricResult{
		{EvalStatus: status.EvalStatusPassed},
		{EvalStatus: status.EvalStatusFailed},
	})
	assert.NoError(t, err)
	assert.Equal(t, status.EvalStatusFailed, got)
}
