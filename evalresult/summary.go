//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

package evalresult

import "trpc.group/trpc-go/trpc-tokeval-go/status"

// EvalSetResultSummary summarizes an eval set result for easier inspection.
type EvalSetResultSummary struct {
	// OverallStatus summarizes the aggregated evaluation status across all cases.
	OverallStatus status.EvalStatus `json:"overallStatus,omitempty"`
	// CaseStatusCounts counts final statuses of eval cases.
	CaseStatusCounts *EvalStatusCounts `json:"caseStatusCounts,omitempty"`
	// MetricSummaries contains aggregated metric outcomes across all cases.
	MetricSummaries []*EvalMetricSummary `json:"metricSummaries,omitempty"`
}

// EvalMetricSummary summarizes metric results across a collection of cases.
type EvalMetricSummary struct {
	// MetricName identifies the metric.
	MetricName string `json:"metricName,omitempty"`
	// AverageScore is the averaged score across cases that were evaluated.
	AverageScore float64 `json:"averageScore,omitempty"`
	// EvalStatus is the aggregated status derived from the averaged score and threshold.
	EvalStatus status.EvalStatus `json:"evalStatus,omitempty"`
	// Threshold is the threshold that was used.
	Threshold float64 `json:"threshold,omitempty"`
	// StatusCounts counts metric statuses across cases.
	StatusCounts *EvalStatusCounts `json:"statusCounts,omitempty"`
}

// EvalStatusCounts records a simple histogram of evaluation statuses.
type EvalStatusCounts struct {
	// Passed is the count of passed statuses.
	Passed int `json:"passed,omitempty"`
	// Failed is the count of failed statuses.
	Failed int `json:"failed,omitempty"`
	// NotEvaluated is the count of not evaluated statuses.
	NotEvaluated int `json:"notEvaluated,omitempty"`
}
