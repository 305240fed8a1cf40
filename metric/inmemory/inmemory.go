//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory metric manager implementation.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"trpc.group/trpc-go/trpc-tokeval-go/internal/clone"
	"trpc.group/trpc-go/trpc-tokeval-go/metric"
)

// manager implements metric.Manager backed by in-memory state.
// Each API returns deep-copied objects to avoid accidental mutation.
type manager struct {
	mu       sync.RWMutex
	defaults []*metric.EvalMetric
	metrics  map[string][]*metric.EvalMetric // evalSetID -> []*metric.EvalMetric.
}

// New creates an in-memory metric manager. Eval sets without explicitly
// configured metrics fall back to the given defaults; the first Add for an
// eval set detaches it from the defaults.
func New(defaults ...*metric.EvalMetric) metric.Manager {
	return &manager{
		defaults: append([]*metric.EvalMetric(nil), defaults...),
		metrics:  make(map[string][]*metric.EvalMetric),
	}
}

// List lists all metric names configured for the given eval set ID.
func (m *manager) List(_ context.Context, evalSetID string) ([]string, error) {
	if evalSetID == "" {
		return nil, errors.New("empty eval set id")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	metrics := m.forEvalSet(evalSetID)
	metricNames := make([]string, 0, len(metrics))
	for _, evalMetric := range metrics {
		if evalMetric != nil {
			metricNames = append(metricNames, evalMetric.MetricName)
		}
	}
	return metricNames, nil
}

// Get gets a metric identified by the given eval set ID and metric name.
func (m *manager) Get(_ context.Context, evalSetID, metricName string) (*metric.EvalMetric, error) {
	if evalSetID == "" {
		return nil, errors.New("empty eval set id")
	}
	if metricName == "" {
		return nil, errors.New("empty metric name")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, evalMetric := range m.forEvalSet(evalSetID) {
		if evalMetric != nil && evalMetric.MetricName == metricName {
			cloned, err := clone.Clone(evalMetric)
			if err != nil {
				return nil, fmt.Errorf("clone metric: %w", err)
			}
			return cloned, nil
		}
	}
	return nil, fmt.Errorf("metric %s.%s not found: %w", evalSetID, metricName, os.ErrNotExist)
}

// Add adds a metric to the eval set identified by evalSetID.
func (m *manager) Add(_ context.Context, evalSetID string, evalMetric *metric.EvalMetric) error {
	if evalSetID == "" {
		return errors.New("empty eval set id")
	}
	if evalMetric == nil {
		return errors.New("metric is nil")
	}
	if evalMetric.MetricName == "" {
		return errors.New("metric name is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.metrics[evalSetID] {
		if existing != nil && existing.MetricName == evalMetric.MetricName {
			return fmt.Errorf("metric %s.%s already exists", evalSetID, evalMetric.MetricName)
		}
	}
	m.metrics[evalSetID] = append(m.metrics[evalSetID], evalMetric)
	return nil
}

// Update updates the metric identified by evalSetID and evalMetric.MetricName.
func (m *manager) Update(_ context.Context, evalSetID string, evalMetric *metric.EvalMetric) error {
	if evalSetID == "" {
		return errors.New("empty eval set id")
	}
	if evalMetric == nil {
		return errors.New("metric is nil")
	}
	if evalMetric.MetricName == "" {
		return errors.New("metric name is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	metrics := m.metrics[evalSetID]
	for i, existing := range metrics {
		if existing != nil && existing.MetricName == evalMetric.MetricName {
			metrics[i] = evalMetric
			return nil
		}
	}
	return fmt.Errorf("metric %s.%s not found: %w", evalSetID, evalMetric.MetricName, os.ErrNotExist)
}

// Delete deletes the metric identified by evalSetID and metricName.
func (m *manager) Delete(_ context.Context, evalSetID, metricName string) error {
	if evalSetID == "" {
		return errors.New("empty eval set id")
	}
	if metricName == "" {
		return errors.New("metric name is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	metrics := m.metrics[evalSetID]
	for i, existing := range metrics {
		if existing != nil && existing.MetricName == metricName {
			m.metrics[evalSetID] = append(metrics[:i], metrics[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("metric %s.%s not found: %w", evalSetID, metricName, os.ErrNotExist)
}

// Close implements metric.Manager.
func (m *manager) Close() error {
	return nil
}

// forEvalSet returns the metrics for the eval set, falling back to the
// defaults when the set has no explicit configuration. Callers hold mu.
func (m *manager) forEvalSet(evalSetID string) []*metric.EvalMetric {
	if metrics, ok := m.metrics[evalSetID]; ok {
		return metrics
	}
	return m.defaults
}
