//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

package inmemory

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"trpc.group/trpc-go/trpc-tokeval-go/metric"
)

func TestManagerLifecycle(t *testing.T) {
	ctx := context.Background()
	mgr := New().(*manager)

	names, err := mgr.List(ctx, "set")
	assert.NoError(t, err)
	assert.Empty(t, names)

	err = mgr.Add(ctx, "set", &metric.EvalMetric{MetricName: metric.MetricTokenF1, Threshold: 0.8})
	assert.NoError(t, err)

	names, err = mgr.List(ctx, "set")
	assert.NoError(t, err)
	assert.Equal(t, []string{metric.MetricTokenF1}, names)

	got, err := mgr.Get(ctx, "set", metric.MetricTokenF1)
	assert.NoError(t, err)
	got.Threshold = 0.1

	fresh, err := mgr.Get(ctx, "set", metric.MetricTokenF1)
	assert.NoError(t, err)
	assert.Equal(t, 0.8, fresh.Threshold)

	err = mgr.Update(ctx, "set", &metric.EvalMetric{MetricName: metric.MetricTokenF1, Threshold: 0.9})
	assert.NoError(t, err)

	updated, err := mgr.Get(ctx, "set", metric.MetricTokenF1)
	assert.NoError(t, err)
	assert.Equal(t, 0.9, updated.Threshold)

	err = mgr.Delete(ctx, "set", metric.MetricTokenF1)
	assert.NoError(t, err)

	_, err = mgr.Get(ctx, "set", metric.MetricTokenF1)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	assert.NoError(t, mgr.Close())
}

func TestManagerDefaults(t *testing.T) {
	ctx := context.Background()
	mgr := New(
		&metric.EvalMetric{MetricName: metric.MetricTokenF1, Threshold: 0.9},
		&metric.EvalMetric{MetricName: metric.MetricTokenRecall, Threshold: 0.8},
	).(*manager)

	names, err := mgr.List(ctx, "unconfigured")
	assert.NoError(t, err)
	assert.Equal(t, []string{metric.MetricTokenF1, metric.MetricTokenRecall}, names)

	got, err := mgr.Get(ctx, "unconfigured", metric.MetricTokenRecall)
	assert.NoError(t, err)
	assert.Equal(t, 0.8, got.Threshold)

	// Mutating a returned default must not leak back into the manager.
	got.Threshold = 0.2
	fresh, err := mgr.Get(ctx, "unconfigured", metric.MetricTokenRecall)
	assert.NoError(t, err)
	assert.Equal(t, 0.8, fresh.Threshold)

	// The first explicit Add detaches the eval set from the defaults.
	err = mgr.Add(ctx, "configured", &metric.EvalMetric{MetricName: metric.MetricTokenPrecision, Threshold: 0.7})
	assert.NoError(t, err)

	names, err = mgr.List(ctx, "configured")
	assert.NoError(t, err)
	assert.Equal(t, []string{metric.MetricTokenPrecision}, names)

	_, err = mgr.Get(ctx, "configured", metric.MetricTokenF1)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestManagerValidation(t *testing.T) {
	ctx := context.Background()
	mgr := New().(*manager)

	_, err := mgr.List(ctx, "")
	assert.Error(t, err)

	err = mgr.Add(ctx, "", &metric.EvalMetric{MetricName: "m"})
	assert.Error(t, err)
	err = mgr.Add(ctx, "set", nil)
	assert.Error(t, err)
	err = mgr.Add(ctx, "set", &metric.EvalMetric{})
	assert.Error(t, err)

	_, err = mgr.Get(ctx, "", "metric")
	assert.Error(t, err)
	_, err = mgr.Get(ctx, "set", "")
	assert.Error(t, err)

	err = mgr.Update(ctx, "", &metric.EvalMetric{MetricName: "m"})
	assert.Error(t, err)
	err = mgr.Update(ctx, "set", nil)
	assert.Error(t, err)
	err = mgr.Update(ctx, "set", &metric.EvalMetric{Threshold: 0.1})
	assert.Error(t, err)

	err = mgr.Delete(ctx, "", "metric")
	assert.Error(t, err)
	err = mgr.Delete(ctx, "set", "")
	assert.Error(t, err)
}

func TestManagerDuplicateAndMissing(t *testing.T) {
	ctx := context.Background()
	mgr := New().(*manager)

	err := mgr.Add(ctx, "set", &metric.EvalMetric{MetricName: metric.MetricTokenPrecision, Threshold: 0.8})
	assert.NoError(t, err)

	err = mgr.Add(ctx, "set", &metric.EvalMetric{MetricName: metric.MetricTokenPrecision, Threshold: 0.9})
	assert.Error(t, err)

	err = mgr.Update(ctx, "set", &metric.EvalMetric{MetricName: "missing"})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	err = mgr.Delete(ctx, "set", "missing")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
