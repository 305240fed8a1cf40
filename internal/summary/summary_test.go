//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-tokeval-go/evalresult"
	"trpc.group/trpc-go/trpc-tokeval-go/metric"
	"trpc.group/trpc-go/trpc-tokeval-go/status"
)

func TestSummarizeNilResult(t *testing.T) {
	assert.Error(t, Summarize(nil))
}

func TestSummarizeEmptyResult(t *testing.T) {
	result := &evalresult.EvalSetResult{EvalSetID: "set"}
	require.NoError(t, Summarize(result))
	require.NotNil(t, result.Summary)
	assert.Equal(t, status.EvalStatusNotEvaluated, result.Summary.OverallStatus)
	assert.Nil(t, result.Summary.CaseStatusCounts)
	assert.Nil(t, result.Summary.MetricSummaries)
}

func TestSummarizeEmptyEvalID(t *testing.T) {
	result := &evalresult.EvalSetResult{
		EvalCaseResults: []*evalresult.EvalCaseResult{{FinalEvalStatus: status.EvalStatusPassed}},
	}
	assert.Error(t, Summarize(result))
}

func TestSummarizeAggregatesCasesAndMetrics(t *testing.T) {
	result := &evalresult.EvalSetResult{
		EvalSetID: "set",
		EvalCaseResults: []*evalresult.EvalCaseResult{
			{
				EvalID:          "case-a",
				FinalEvalStatus: status.EvalStatusPassed,
				Counts:          metric.Counts{TruePositives: 4},
				OverallEvalMetricResults: []*evalresult.EvalMetricResult{
					{MetricName: metric.MetricTokenF1, Score: 0.9, Threshold: 0.8, EvalStatus: status.EvalStatusPassed},
				},
			},
			nil,
			{
				EvalID:          "case-b",
				FinalEvalStatus: status.EvalStatusFailed,
				Counts:          metric.Counts{TruePositives: 2, FalsePositives: 2},
				OverallEvalMetricResults: []*evalresult.EvalMetricResult{
					{MetricName: metric.MetricTokenPrecision, Score: 0.5, Threshold: 0.6, EvalStatus: status.EvalStatusFailed},
					{MetricName: metric.MetricTokenF1, Score: 0.7, Threshold: 0.8, EvalStatus: status.EvalStatusFailed},
				},
			},
		},
	}

	require.NoError(t, Summarize(result))
	require.NotNil(t, result.Summary)
	assert.Equal(t, status.EvalStatusFailed, result.Summary.OverallStatus)
	require.NotNil(t, result.Summary.CaseStatusCounts)
	assert.Equal(t, 1, result.Summary.CaseStatusCounts.Passed)
	assert.Equal(t, 1, result.Summary.CaseStatusCounts.Failed)
	assert.Zero(t, result.Summary.CaseStatusCounts.NotEvaluated)

	require.Len(t, result.Summary.MetricSummaries, 2)

	// Metric summaries are sorted by metric name.
	f1 := result.Summary.MetricSummaries[0]
	assert.Equal(t, metric.MetricTokenF1, f1.MetricName)
	assert.InDelta(t, 0.8, f1.AverageScore, 1e-9)
	assert.Equal(t, status.EvalStatusPassed, f1.EvalStatus)
	assert.Equal(t, 0.8, f1.Threshold)
	require.NotNil(t, f1.StatusCounts)
	assert.Equal(t, 1, f1.StatusCounts.Passed)
	assert.Equal(t, 1, f1.StatusCounts.Failed)

	precision := result.Summary.MetricSummaries[1]
	assert.Equal(t, metric.MetricTokenPrecision, precision.MetricName)
	assert.InDelta(t, 0.5, precision.AverageScore, 1e-9)
	assert.Equal(t, status.EvalStatusFailed, precision.EvalStatus)
}

func TestSummarizeNotEvaluatedMetrics(t *testing.T) {
	result := &evalresult.EvalSetResult{
		EvalCaseResults: []*evalresult.EvalCaseResult{
			{
				EvalID:          "case-a",
				FinalEvalStatus: status.EvalStatusNotEvaluated,
				OverallEvalMetricResults: []*evalresult.EvalMetricResult{
					{MetricName: metric.MetricTokenF1, Threshold: 0.8, EvalStatus: status.EvalStatusNotEvaluated},
				},
			},
		},
	}

	require.NoError(t, Summarize(result))
	assert.Equal(t, status.EvalStatusNotEvaluated, result.Summary.OverallStatus)
	require.Len(t, result.Summary.MetricSummaries, 1)
	assert.Equal(t, status.EvalStatusNotEvaluated, result.Summary.MetricSummaries[0].EvalStatus)
	assert.Zero(t, result.Summary.MetricSummaries[0].AverageScore)
}
