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
	"context"
)

// Manager defines the interface for managing evaluation metrics.
type Manager interface {
	// List returns all metric names configured for the given eval set ID.
	List(ctx context.Context, evalSetID string) ([]string, error)
	// Get gets a metric identified by the given eval set ID and metric name.
	Get(ctx context.Context, evalSetID, metricName string) (*EvalMetric, error)
	// Add adds a metric to the eval set identified by evalSetID.
	Add(ctx context.Context, evalSetID string, metric *EvalMetric) error
	// Update updates the metric identified by evalSetID and metric.MetricName.
	Update(ctx context.Context, evalSetID string, metric *EvalMetric) error
	// Delete deletes the metric identified by evalSetID and metricName.
	Delete(ctx context.Context, evalSetID, metricName string) error
	// Close closes the manager and releases underlying resources.
	Close() error
}
