//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

// Package tokeval orchestrates tokenizer evaluation runs and aggregates their results.
package tokeval

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trpc.group/trpc-go/trpc-tokeval-go/callback"
	"trpc.group/trpc-go/trpc-tokeval-go/evalresult"
	"trpc.group/trpc-go/trpc-tokeval-go/evalset"
	icallback "trpc.group/trpc-go/trpc-tokeval-go/internal/callback"
	istatus "trpc.group/trpc-go/trpc-tokeval-go/internal/status"
	"trpc.group/trpc-go/trpc-tokeval-go/internal/summary"
	"trpc.group/trpc-go/trpc-tokeval-go/log"
	"trpc.group/trpc-go/trpc-tokeval-go/metric"
	"trpc.group/trpc-go/trpc-tokeval-go/status"
	"trpc.group/trpc-go/trpc-tokeval-go/tokenize"
)

// Callbacks configures lifecycle callbacks invoked around evaluation stages.
type Callbacks = callback.Callbacks

// TokenizerEvaluator evaluates a tokenizer against configured evaluation sets.
type TokenizerEvaluator interface {
	// Evaluate runs evaluation against the specified eval set.
	Evaluate(ctx context.Context, evalSetID string) (*EvaluationResult, error)
	// Close closes the evaluator and releases owned resources.
	Close() error
}

// New creates a TokenizerEvaluator with the supplied tokenizer and options.
func New(tokenizer tokenize.Tokenizer, opt ...Option) (TokenizerEvaluator, error) {
	if tokenizer == nil {
		return nil, errors.New("tokenizer is nil")
	}
	opts := newOptions(opt...)
	e := &tokenizerEvaluator{
		tokenizer:         tokenizer,
		evalSetManager:    opts.evalSetManager,
		evalResultManager: opts.evalResultManager,
		metricManager:     opts.metricManager,
		callbacks:         opts.callbacks,
	}
	if e.evalSetManager == nil {
		return nil, errors.New("eval set manager is nil")
	}
	if e.metricManager == nil {
		return nil, errors.New("metric manager is nil")
	}
	if e.evalResultManager == nil {
		return nil, errors.New("eval result manager is nil")
	}
	return e, nil
}

// tokenizerEvaluator is the default implementation of TokenizerEvaluator.
type tokenizerEvaluator struct {
	tokenizer         tokenize.Tokenizer
	evalSetManager    evalset.Manager
	evalResultManager evalresult.Manager
	metricManager     metric.Manager
	callbacks         *callback.Callbacks
}

// EvaluationResult contains the outcome of evaluating a tokenizer against an eval set.
type EvaluationResult struct {
	EvalSetID     string                    `json:"evalSetId"`     // EvalSetID identifies the evaluation set used in this run.
	OverallStatus status.EvalStatus         `json:"overallStatus"` // OverallStatus summarizes the evaluation status across cases.
	ExecutionTime time.Duration             `json:"executionTime"` // ExecutionTime records the total latency for the evaluation run.
	Dataset       *metric.Report            `json:"dataset"`       // Dataset holds score distributions and totals across scored cases.
	EvalCases     []*EvaluationCaseResult   `json:"evalCases"`     // EvalCases contains the result for each evaluation case.
	EvalResult    *evalresult.EvalSetResult `json:"evalSetResult"` // EvalResult contains the persisted eval set result.
}

// EvaluationCaseResult contains the outcome of a single eval case.
type EvaluationCaseResult struct {
	EvalCaseID    string                         `json:"evalId"`        // EvalCaseID identifies the evaluation case.
	OverallStatus status.EvalStatus              `json:"overallStatus"` // OverallStatus summarizes the status of this case.
	Counts        metric.Counts                  `json:"counts"`        // Counts holds the token-level counts for this case.
	MetricResults []*evalresult.EvalMetricResult `json:"metricResults"` // MetricResults lists the metric outcomes for this case.
}

// Evaluate evaluates the tokenizer against the specified eval set.
func (e *tokenizerEvaluator) Evaluate(ctx context.Context, evalSetID string) (*EvaluationResult, error) {
	if evalSetID == "" {
		return nil, errors.New("eval set id is not configured")
	}
	start := time.Now()
	evalSetResult, err := e.runEvaluation(ctx, evalSetID, start)
	if err != nil {
		return nil, err
	}
	evalCases, counts := collectCaseResults(evalSetResult)
	overallStatus, err := summarizeOverallStatus(evalCases)
	if err != nil {
		return nil, fmt.Errorf("summarize overall status: %w", err)
	}
	return &EvaluationResult{
		EvalSetID:     evalSetID,
		OverallStatus: overallStatus,
		ExecutionTime: time.Since(start),
		Dataset:       metric.Summarize(counts, metric.WithCompleteMetrics(true)),
		EvalCases:     evalCases,
		EvalResult:    evalSetResult,
	}, nil
}

// Close closes the evaluator and releases owned resources.
func (e *tokenizerEvaluator) Close() error {
	var overallErr error
	if e.evalSetManager != nil {
		if err := e.evalSetManager.Close(); err != nil {
			overallErr = errors.Join(overallErr, fmt.Errorf("close eval set manager: %w", err))
		}
	}
	if e.metricManager != nil {
		if err := e.metricManager.Close(); err != nil {
			overallErr = errors.Join(overallErr, fmt.Errorf("close metric manager: %w", err))
		}
	}
	if e.evalResultManager != nil {
		if err := e.evalResultManager.Close(); err != nil {
			overallErr = errors.Join(overallErr, fmt.Errorf("close eval result manager: %w", err))
		}
	}
	return overallErr
}

// runEvaluation evaluates the eval set and persists the eval set result.
func (e *tokenizerEvaluator) runEvaluation(ctx context.Context, evalSetID string, start time.Time) (*evalresult.EvalSetResult, error) {
	evalSet, err := e.evalSetManager.Get(ctx, evalSetID)
	if err != nil {
		return nil, fmt.Errorf("get eval set: %w", err)
	}
	if err := evalSet.Validate(); err != nil {
		return nil, fmt.Errorf("validate eval set: %w", err)
	}
	beforeSetResult, err := icallback.RunBeforeEvaluateSet(ctx, e.callbacks, &callback.BeforeEvaluateSetArgs{
		EvalSetID: evalSetID,
		EvalSet:   evalSet,
	})
	if err != nil {
		return nil, err
	}
	if beforeSetResult != nil && beforeSetResult.Context != nil {
		ctx = beforeSetResult.Context
	}
	evalSetResult, err := e.evaluateEvalSet(ctx, evalSetID, evalSet)
	// After evaluate set callbacks observe failed runs too.
	if _, cbErr := icallback.RunAfterEvaluateSet(ctx, e.callbacks, &callback.AfterEvaluateSetArgs{
		EvalSetID: evalSetID,
		Result:    evalSetResult,
		Error:     err,
		StartTime: start,
	}); cbErr != nil && err == nil {
		err = cbErr
	}
	if err != nil {
		return nil, err
	}
	return evalSetResult, nil
}

// evaluateEvalSet scores every eval case and saves the summarized eval set result.
func (e *tokenizerEvaluator) evaluateEvalSet(ctx context.Context, evalSetID string, evalSet *evalset.EvalSet) (*evalresult.EvalSetResult, error) {
	evalMetrics, err := e.loadMetrics(ctx, evalSetID)
	if err != nil {
		return nil, err
	}
	caseResults := make([]*evalresult.EvalCaseResult, 0, len(evalSet.EvalCases))
	for _, evalCase := range evalSet.EvalCases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if evalCase == nil {
			continue
		}
		caseResult, err := e.evaluateEvalCase(ctx, evalSetID, evalCase, evalMetrics)
		if err != nil {
			return nil, err
		}
		caseResults = append(caseResults, caseResult)
	}
	evalSetResult := &evalresult.EvalSetResult{
		EvalSetID:       evalSetID,
		EvalCaseResults: caseResults,
	}
	if err := summary.Summarize(evalSetResult); err != nil {
		return nil, fmt.Errorf("summarize eval set result: %w", err)
	}
	evalSetResultID, err := e.evalResultManager.Save(ctx, evalSetResult)
	if err != nil {
		return nil, fmt.Errorf("save eval set result: %w", err)
	}
	evalSetResult.EvalSetResultID = evalSetResultID
	evalSetResult.EvalSetResultName = evalSetResultID
	return evalSetResult, nil
}

// evaluateEvalCase runs callbacks around a single eval case and scores it.
// Scoring failures are recorded on the case result instead of aborting the
// run; callback failures abort.
func (e *tokenizerEvaluator) evaluateEvalCase(ctx context.Context, evalSetID string,
	evalCase *evalset.EvalCase, evalMetrics []*metric.EvalMetric) (*evalresult.EvalCaseResult, error) {
	caseStart := time.Now()
	beforeCaseResult, err := icallback.RunBeforeEvaluateCase(ctx, e.callbacks, &callback.BeforeEvaluateCaseArgs{
		EvalSetID: evalSetID,
		EvalCase:  evalCase,
	})
	if err != nil {
		return nil, err
	}
	if beforeCaseResult != nil && beforeCaseResult.Context != nil {
		ctx = beforeCaseResult.Context
	}
	caseResult, caseErr := e.scoreEvalCase(evalSetID, evalCase, evalMetrics)
	if caseErr != nil {
		log.Warnf("evaluate case %s: %v", evalCase.EvalID, caseErr)
		caseResult = &evalresult.EvalCaseResult{
			EvalSetID:       evalSetID,
			EvalID:          evalCase.EvalID,
			FinalEvalStatus: status.EvalStatusFailed,
			ErrorMessage:    caseErr.Error(),
		}
	}
	if _, cbErr := icallback.RunAfterEvaluateCase(ctx, e.callbacks, &callback.AfterEvaluateCaseArgs{
		EvalSetID: evalSetID,
		Result:    caseResult,
		Error:     caseErr,
		StartTime: caseStart,
	}); cbErr != nil {
		return nil, cbErr
	}
	return caseResult, nil
}

// scoreEvalCase tokenizes the case input when no pre-computed tokenization is
// present and scores the prediction against the reference.
func (e *tokenizerEvaluator) scoreEvalCase(evalSetID string, evalCase *evalset.EvalCase,
	evalMetrics []*metric.EvalMetric) (*evalresult.EvalCaseResult, error) {
	predicted := evalCase.PredictedTokens
	if len(predicted) == 0 {
		predicted = e.tokenizer.Tokenize(evalCase.Input)
	}
	counts := metric.EvaluateSentence(predicted, evalCase.ReferenceTokens)
	metricResults, err := buildMetricResults(counts, evalMetrics)
	if err != nil {
		return nil, err
	}
	finalStatus, err := finalCaseStatus(counts, metricResults)
	if err != nil {
		return nil, err
	}
	return &evalresult.EvalCaseResult{
		EvalSetID:                evalSetID,
		EvalID:                   evalCase.EvalID,
		FinalEvalStatus:          finalStatus,
		Counts:                   counts,
		PredictedTokens:          predicted,
		ReferenceTokens:          evalCase.ReferenceTokens,
		OverallEvalMetricResults: metricResults,
	}, nil
}

// loadMetrics fetches the metric configuration applied to this evaluation run.
func (e *tokenizerEvaluator) loadMetrics(ctx context.Context, evalSetID string) ([]*metric.EvalMetric, error) {
	metricNames, err := e.metricManager.List(ctx, evalSetID)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	evalMetrics := make([]*metric.EvalMetric, 0, len(metricNames))
	for _, metricName := range metricNames {
		evalMetric, err := e.metricManager.Get(ctx, evalSetID, metricName)
		if err != nil {
			return nil, fmt.Errorf("get metric %s: %w", metricName, err)
		}
		evalMetrics = append(evalMetrics, evalMetric)
	}
	return evalMetrics, nil
}

// buildMetricResults scores the case counts against each configured metric.
func buildMetricResults(counts metric.Counts, evalMetrics []*metric.EvalMetric) ([]*evalresult.EvalMetricResult, error) {
	if len(evalMetrics) == 0 {
		return nil, nil
	}
	score := metric.SentenceScore(counts)
	metricResults := make([]*evalresult.EvalMetricResult, 0, len(evalMetrics))
	for _, evalMetric := range evalMetrics {
		if evalMetric == nil {
			continue
		}
		value, err := metric.ScoreForMetric(evalMetric.MetricName, counts)
		if err != nil {
			return nil, err
		}
		evalStatus := status.EvalStatusFailed
		if value >= evalMetric.Threshold {
			evalStatus = status.EvalStatusPassed
		}
		metricResults = append(metricResults, &evalresult.EvalMetricResult{
			MetricName: evalMetric.MetricName,
			Score:      value,
			EvalStatus: evalStatus,
			Threshold:  evalMetric.Threshold,
			Details: &evalresult.EvalMetricResultDetails{
				Reason: metricReason(evalMetric.MetricName, value, score),
				Score:  value,
			},
		})
	}
	return metricResults, nil
}

// metricReason formats the per-metric scoring output for display.
func metricReason(metricName string, value float64, score metric.Score) string {
	return fmt.Sprintf("%s score=%.6f precision=%.6f recall=%.6f f1=%.6f",
		metricName, value, score.Precision, score.Recall, score.FMeasure)
}

// finalCaseStatus reduces metric statuses to a case status. Without configured
// metrics a case passes only when it reproduced the reference exactly.
func finalCaseStatus(counts metric.Counts, metricResults []*evalresult.EvalMetricResult) (status.EvalStatus, error) {
	if len(metricResults) == 0 {
		if counts.Correct() {
			return status.EvalStatusPassed, nil
		}
		return status.EvalStatusFailed, nil
	}
	overallStatus, err := istatus.SummarizeMetricsStatus(metricResults)
	if err != nil {
		return status.EvalStatusUnknown, fmt.Errorf("summarize metrics status: %w", err)
	}
	return overallStatus, nil
}

// collectCaseResults converts persisted case results into per-case outcomes
// and gathers the counts of cases that were scored without errors.
func collectCaseResults(evalSetResult *evalresult.EvalSetResult) ([]*EvaluationCaseResult, []metric.Counts) {
	evalCases := make([]*EvaluationCaseResult, 0, len(evalSetResult.EvalCaseResults))
	counts := make([]metric.Counts, 0, len(evalSetResult.EvalCaseResults))
	for _, caseResult := range evalSetResult.EvalCaseResults {
		if caseResult == nil {
			continue
		}
		evalCases = append(evalCases, &EvaluationCaseResult{
			EvalCaseID:    caseResult.EvalID,
			OverallStatus: caseResult.FinalEvalStatus,
			Counts:        caseResult.Counts,
			MetricResults: caseResult.OverallEvalMetricResults,
		})
		if caseResult.ErrorMessage == "" {
			counts = append(counts, caseResult.Counts)
		}
	}
	return evalCases, counts
}

// summarizeOverallStatus summarizes the aggregate status across all cases in the evaluation.
func summarizeOverallStatus(cases []*EvaluationCaseResult) (status.EvalStatus, error) {
	evalStatuses := make([]status.EvalStatus, 0, len(cases))
	for _, c := range cases {
		if c != nil {
			evalStatuses = append(evalStatuses, c.OverallStatus)
		}
	}
	return istatus.Summarize(evalStatuses)
}
