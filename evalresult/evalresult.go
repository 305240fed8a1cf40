//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

// Package evalresult provides evaluation result for evaluation.
package evalresult

import (
	"context"

	"trpc.group/trpc-go/trpc-tokeval-go/epochtime"
	"trpc.group/trpc-go/trpc-tokeval-go/metric"
	"trpc.group/trpc-go/trpc-tokeval-go/status"
)

// EvalSetResult represents the evaluation result for an entire eval set.
type EvalSetResult struct {
	// EvalSetResultID uniquely identifies this result.
	EvalSetResultID string `json:"evalSetResultId,omitempty"`
	// EvalSetResultName is the name of this result.
	EvalSetResultName string `json:"evalSetResultName,omitempty"`
	// EvalSetID identifies the eval set.
	EvalSetID string `json:"evalSetId,omitempty"`
	// EvalCaseResults contains results for each eval case.
	EvalCaseResults []*EvalCaseResult `json:"evalCaseResults,omitempty"`
	// Summary aggregates the case results for easier inspection.
	Summary *EvalSetResultSummary `json:"summary,omitempty"`
	// CreationTimestamp when this result was created.
	CreationTimestamp *epochtime.EpochTime `json:"creationTimestamp,omitempty"`
}

// EvalCaseResult represents the result of a single evaluation case.
type EvalCaseResult struct {
	// EvalSetID identifies the eval set.
	EvalSetID string `json:"evalSetId,omitempty"`
	// EvalID identifies the eval case.
	EvalID string `json:"evalId,omitempty"`
	// FinalEvalStatus is the final eval status for this eval case.
	FinalEvalStatus status.EvalStatus `json:"finalEvalStatus,omitempty"`
	// Counts holds the token-level counts for this eval case.
	Counts metric.Counts `json:"counts"`
	// PredictedTokens is the tokenization that was scored.
	PredictedTokens []string `json:"predictedTokens,omitempty"`
	// ReferenceTokens is the gold tokenization the prediction was scored against.
	ReferenceTokens []string `json:"referenceTokens,omitempty"`
	// OverallEvalMetricResults contains overall result for each metric for the entire eval case.
	OverallEvalMetricResults []*EvalMetricResult `json:"overallEvalMetricResults,omitempty"`
	// ErrorMessage contains the error message when evaluation execution failed.
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// EvalMetricResult represents the result of a single metric evaluation.
type EvalMetricResult struct {
	// MetricName identifies the metric.
	MetricName string `json:"metricName,omitempty"`
	// Score obtained for this metric.
	Score float64 `json:"score,omitempty"`
	// EvalStatus of this metric evaluation.
	EvalStatus status.EvalStatus `json:"evalStatus,omitempty"`
	// Threshold that was used.
	Threshold float64 `json:"threshold,omitempty"`
	// Details contains additional metric-specific information.
	Details *EvalMetricResultDetails `json:"details,omitempty"`
}

// EvalMetricResultDetails contains additional metric-specific information.
type EvalMetricResultDetails struct {
	// Reason is the reason for the metric evaluation result.
	Reason string `json:"reason,omitempty"`
	// Score is the score for the metric evaluation result.
	Score float64 `json:"score,omitempty"`
}

// Manager defines the interface for managing evaluation results.
type Manager interface {
	// Save stores an evaluation result and returns its generated ID.
	Save(ctx context.Context, evalSetResult *EvalSetResult) (string, error)
	// Get retrieves an evaluation result by evalSetResultID.
	Get(ctx context.Context, evalSetResultID string) (*EvalSetResult, error)
	// List returns the IDs of all stored evaluation results.
	List(ctx context.Context) ([]string, error)
	// Close closes the manager and releases underlying resources.
	Close() error
}
