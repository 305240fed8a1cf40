//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

package metric

// options holds the configuration for dataset aggregation.
type options struct {
	// completeMetrics controls whether raw totals are attached to the report.
	completeMetrics bool
}

// newOptions creates options with the default values.
func newOptions(opt ...Option) *options {
	opts := &options{}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option defines a function type for configuring dataset aggregation.
type Option func(*options)

// WithCompleteMetrics controls whether the report carries dataset-wide raw
// token totals and the indices of incorrect sentences.
func WithCompleteMetrics(complete bool) Option {
	return func(o *options) {
		o.completeMetrics = complete
	}
}
