package tokeval

import (
	"trpc.group/trpc-go/trpc-tokeval-go/callback"
	"trpc.group/trpc-go/trpc-tokeval-go/evalresult"
	evalresultinmemory "trpc.group/trpc-go/trpc-tokeval-go/evalresult/inmemory"
	"trpc.group/trpc-go/trpc-tokeval-go/evalset"
	evalsetinmemory "trpc.group/trpc-go/trpc-tokeval-go/evalset/inmemory"
	"trpc.group/trpc-go/trpc-tokeval-go/metric"
	metricinmemory "trpc.group/trpc-go/trpc-tokeval-go/metric/inmemory"
)

type options struct {
	evalSetManager    evalset.Manager
	evalResultManager evalresult.Manager
	metricManager     metric.Manager
	callbacks         *callback.Callbacks
	evalMetrics       []*metric.EvalMetric
}

func newOptions(opt ...Option) *options {
	opts := &options{
		evalSetManager:    evalsetinmemory.New(),
		evalResultManager: evalresultinmemory.New(),
	}
	for _, o := range opt {
		o(opts)
	}
	if opts.metricManager == nil {
		opts.metricManager = metricinmemory.New(opts.evalMetrics...)
	}
	return opts
}

type Option func(*options)

func WithEvalSetManager(m evalset.Manager) Option {
	return func(o *options) {
		o.evalSetManager = m
	}
}

func WithEvalResultManager(m evalresult.Manager) Option {
	return func(o *options) {
		o.evalResultManager = m
	}
}

func WithMetricManager(m metric.Manager) Option {
	return func(o *options) {
		o.metricManager = m
	}
}

func WithCallbacks(callbacks *callback.Callbacks) Option {
	return func(o *options) {
		o.callbacks = callbacks
	}
}

func WithEvalMetrics(metrics []*metric.EvalMetric) Option {
	return func(o *options) {
		o.evalMetrics = append(o.evalMetrics, metrics...)
	}
}
