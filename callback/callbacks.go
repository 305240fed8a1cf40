//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

// Package callback defines lifecycle callbacks for tokenizer evaluation runs.
package callback

import (
	"context"
	"time"

	"trpc.group/trpc-go/trpc-tokeval-go/evalresult"
	"trpc.group/trpc-go/trpc-tokeval-go/evalset"
)

// NamedCallback binds a callback function with a component name.
type NamedCallback[T any] struct {
	// Name is the component name for the callback.
	Name string
	// Callback is the callback function.
	Callback T
}

// BeforeEvaluateSetCallback is called before an evaluation run starts for an eval set.
type BeforeEvaluateSetCallback func(context.Context, *BeforeEvaluateSetArgs) (*BeforeEvaluateSetResult, error)

// AfterEvaluateSetCallback is called after an evaluation run finishes for an eval set.
type AfterEvaluateSetCallback func(context.Context, *AfterEvaluateSetArgs) (*AfterEvaluateSetResult, error)

// BeforeEvaluateCaseCallback is called before an evaluation run starts for an eval case.
type BeforeEvaluateCaseCallback func(context.Context, *BeforeEvaluateCaseArgs) (*BeforeEvaluateCaseResult, error)

// AfterEvaluateCaseCallback is called after an evaluation run finishes for an eval case.
type AfterEvaluateCaseCallback func(context.Context, *AfterEvaluateCaseArgs) (*AfterEvaluateCaseResult, error)

// Callback groups optional callbacks for evaluation points.
type Callback struct {
	// BeforeEvaluateSet is called before an evaluation run starts for an eval set.
	BeforeEvaluateSet BeforeEvaluateSetCallback
	// AfterEvaluateSet is called after an evaluation run finishes for an eval set.
	AfterEvaluateSet AfterEvaluateSetCallback
	// BeforeEvaluateCase is called before an evaluation run starts for an eval case.
	BeforeEvaluateCase BeforeEvaluateCaseCallback
	// AfterEvaluateCase is called after an evaluation run finishes for an eval case.
	AfterEvaluateCase AfterEvaluateCaseCallback
}

// Callbacks stores all registered callbacks for evaluation lifecycle points.
type Callbacks struct {
	// BeforeEvaluateSet contains callbacks called before evaluation starts for an eval set.
	BeforeEvaluateSet []NamedCallback[BeforeEvaluateSetCallback]
	// AfterEvaluateSet contains callbacks called after evaluation finishes for an eval set.
	AfterEvaluateSet []NamedCallback[AfterEvaluateSetCallback]
	// BeforeEvaluateCase contains callbacks called before evaluation starts for an eval case.
	BeforeEvaluateCase []NamedCallback[BeforeEvaluateCaseCallback]
	// AfterEvaluateCase contains callbacks called after evaluation finishes for an eval case.
	AfterEvaluateCase []NamedCallback[AfterEvaluateCaseCallback]
}

// CallbacksOption configures Callbacks behavior.
type CallbacksOption func(*Callbacks)

// NewCallbacks creates a new Callbacks instance for evaluation callbacks.
func NewCallbacks(opts ...CallbacksOption) *Callbacks {
	c := &Callbacks{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register adds a callback component with the provided name.
func (c *Callbacks) Register(name string, callback *Callback) *Callbacks {
	if callback == nil {
		return c
	}
	if callback.BeforeEvaluateSet != nil {
		c.BeforeEvaluateSet = append(c.BeforeEvaluateSet, NamedCallback[BeforeEvaluateSetCallback]{Name: name, Callback: callback.BeforeEvaluateSet})
	}
	if callback.AfterEvaluateSet != nil {
		c.AfterEvaluateSet = append(c.AfterEvaluateSet, NamedCallback[AfterEvaluateSetCallback]{Name: name, Callback: callback.AfterEvaluateSet})
	}
	if callback.BeforeEvaluateCase != nil {
		c.BeforeEvaluateCase = append(c.BeforeEvaluateCase, NamedCallback[BeforeEvaluateCaseCallback]{Name: name, Callback: callback.BeforeEvaluateCase})
	}
	if callback.AfterEvaluateCase != nil {
		c.AfterEvaluateCase = append(c.AfterEvaluateCase, NamedCallback[AfterEvaluateCaseCallback]{Name: name, Callback: callback.AfterEvaluateCase})
	}
	return c
}

// RegisterBeforeEvaluateSet registers a before evaluate set callback with the provided name.
func (c *Callbacks) RegisterBeforeEvaluateSet(name string, fn BeforeEvaluateSetCallback) *Callbacks {
	return c.Register(name, &Callback{BeforeEvaluateSet: fn})
}

// RegisterAfterEvaluateSet registers an after evaluate set callback with the provided name.
func (c *Callbacks) RegisterAfterEvaluateSet(name string, fn AfterEvaluateSetCallback) *Callbacks {
	return c.Register(name, &Callback{AfterEvaluateSet: fn})
}

// RegisterBeforeEvaluateCase registers a before evaluate case callback with the provided name.
func (c *Callbacks) RegisterBeforeEvaluateCase(name string, fn BeforeEvaluateCaseCallback) *Callbacks {
	return c.Register(name, &Callback{BeforeEvaluateCase: fn})
}

// RegisterAfterEvaluateCase registers an after evaluate case callback with the provided name.
func (c *Callbacks) RegisterAfterEvaluateCase(name string, fn AfterEvaluateCaseCallback) *Callbacks {
	return c.Register(name, &Callback{AfterEvaluateCase: fn})
}

// BeforeEvaluateSetArgs contains parameters for before evaluation set callbacks.
type BeforeEvaluateSetArgs struct {
	// EvalSetID identifies the eval set about to be evaluated.
	EvalSetID string
	// EvalSet is the eval set about to be evaluated and can be modified.
	EvalSet *evalset.EvalSet
}

// BeforeEvaluateSetResult contains the return value for before evaluation set callbacks.
type BeforeEvaluateSetResult struct {
	// Context if not nil will be used by the framework for subsequent operations.
	Context context.Context
}

// AfterEvaluateSetArgs contains parameters for after evaluation set callbacks.
type AfterEvaluateSetArgs struct {
	// EvalSetID identifies the evaluated eval set.
	EvalSetID string
	// Result contains the eval set result and may be nil on error.
	Result *evalresult.EvalSetResult
	// Error is the error occurred during evaluation and may be nil.
	Error error
	// StartTime records when the evaluate set stage started.
	StartTime time.Time
}

// AfterEvaluateSetResult contains the return value for after evaluation set callbacks.
type AfterEvaluateSetResult struct {
	// Context if not nil will be used by the framework for subsequent operations.
	Context context.Context
}

// BeforeEvaluateCaseArgs contains parameters for before evaluation case callbacks.
type BeforeEvaluateCaseArgs struct {
	EvalSetID string
	EvalCase  *evalset.EvalCase
}

// BeforeEvaluateCaseResult contains the return value for before evaluation case callbacks.
type BeforeEvaluateCaseResult struct {
	// Context if not nil will be used by the framework for subsequent operations.
	Context context.Context
}

// AfterEvaluateCaseArgs contains parameters for after evaluation case callbacks.
type AfterEvaluateCaseArgs struct {
	// EvalSetID identifies the eval set the case belongs to.
	EvalSetID string
	// Result contains the eval case result.
	Result *evalresult.EvalCaseResult
	// Error is the error occurred during evaluation and may be nil.
	Error error
	// StartTime records when the evaluate case stage started.
	StartTime time.Time
}

// AfterEvaluateCaseResult contains the return value for after evaluation case callbacks.
type AfterEvaluateCaseResult struct {
	// Context if not nil will be used by the framework for subsequent operations.
	Context context.Context
}
