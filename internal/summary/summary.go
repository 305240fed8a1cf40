//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

// Package summary provides helpers for summarizing eval set results.
package summary

import (
	"errors"
	"fmt"
	"sort"

	"trpc.group/trpc-go/trpc-tokeval-go/evalresult"
	istatus "trpc.group/trpc-go/trpc-tokeval-go/internal/status"
	"trpc.group/trpc-go/trpc-tokeval-go/status"
)

// Summarize populates EvalSetResult.Summary based on the current EvalCaseResults.
func Summarize(evalSetResult *evalresult.EvalSetResult) error {
	if evalSetResult == nil {
		return errors.New("eval set result is nil")
	}
	var statuses []status.EvalStatus
	var caseStatusCounts evalresult.EvalStatusCounts
	metricAggs := make(map[string]*metricAgg)
	for idx, caseResult := range evalSetResult.EvalCaseResults {
		if caseResult == nil {
			continue
		}
		if caseResult.EvalID == "" {
			return fmt.Errorf("eval id at index %d is empty", idx)
		}
		statuses = append(statuses, caseResult.FinalEvalStatus)
		if err := addEvalStatus(&caseStatusCounts, caseResult.FinalEvalStatus); err != nil {
			return err
		}
		if err := mergeMetricAgg(metricAggs, caseResult.OverallEvalMetricResults); err != nil {
			return err
		}
	}
	overallStatus, err := istatus.Summarize(statuses)
	if err != nil {
		return fmt.Errorf("summarize eval set status: %w", err)
	}
	evalSetResult.Summary = &evalresult.EvalSetResultSummary{
		OverallStatus:    overallStatus,
		CaseStatusCounts: normalizeCounts(caseStatusCounts),
		MetricSummaries:  buildMetricSummaries(metricAggs),
	}
	return nil
}

func addEvalStatus(counts *evalresult.EvalStatusCounts, s status.EvalStatus) error {
	if counts == nil {
		return errors.New("eval status counts is nil")
	}
	switch s {
	case status.EvalStatusPassed:
		counts.Passed++
	case status.EvalStatusFailed:
		counts.Failed++
	case status.EvalStatusNotEvaluated:
		counts.NotEvaluated++
	default:
		return fmt.Errorf("unexpected eval status %v", s)
	}
	return nil
}

func normalizeCounts(counts evalresult.EvalStatusCounts) *evalresult.EvalStatusCounts {
	if counts.Passed == 0 && counts.Failed == 0 && counts.NotEvaluated == 0 {
		return nil
	}
	copied := counts
	return &copied
}

type metricAgg struct {
	threshold       float64
	thresholdLoaded bool
	evaluatedCount  int
	scoreSum        float64
	statusCounts    evalresult.EvalStatusCounts
}

func mergeMetricAgg(agg map[string]*metricAgg, metricResults []*evalresult.EvalMetricResult) error {
	for _, metricResult := range metricResults {
		if metricResult == nil {
			continue
		}
		m := agg[metricResult.MetricName]
		if m == nil {
			m = &metricAgg{}
			agg[metricResult.MetricName] = m
		}
		if !m.thresholdLoaded {
			m.threshold = metricResult.Threshold
			m.thresholdLoaded = true
		}
		if err := addEvalStatus(&m.statusCounts, metricResult.EvalStatus); err != nil {
			return err
		}
		if metricResult.EvalStatus == status.EvalStatusNotEvaluated {
			continue
		}
		m.evaluatedCount++
		m.scoreSum += metricResult.Score
	}
	return nil
}

func buildMetricSummaries(agg map[string]*metricAgg) []*evalresult.EvalMetricSummary {
	if len(agg) == 0 {
		return nil
	}
	names := make([]string, 0, len(agg))
	for name := range agg {
		names = append(names, name)
	}
	sort.Strings(names)
	summaries := make([]*evalresult.EvalMetricSummary, 0, len(names))
	for _, name := range names {
		m := agg[name]
		if m == nil {
			continue
		}
		averageScore := 0.0
		evalStatus := status.EvalStatusNotEvaluated
		if m.evaluatedCount > 0 {
			averageScore = m.scoreSum / float64(m.evaluatedCount)
			evalStatus = status.EvalStatusFailed
			if averageScore >= m.threshold {
				evalStatus = status.EvalStatusPassed
			}
		}
		summaries = append(summaries, &evalresult.EvalMetricSummary{
			MetricName:   name,
			AverageScore: averageScore,
			EvalStatus:   evalStatus,
			Threshold:    m.threshold,
			StatusCounts: normalizeCounts(m.statusCounts),
		})
	}
	return summaries
}
