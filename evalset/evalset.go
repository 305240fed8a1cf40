//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

// Package evalset provides evaluation sets for tokenizer evaluation.
package evalset

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"trpc.group/trpc-go/trpc-tokeval-go/epochtime"
)

// EvalSet represents a collection of evaluation cases.
type EvalSet struct {
	// EvalSetID uniquely identifies this evaluation set.
	EvalSetID string `json:"evalSetId"`
	// Name of the evaluation set.
	Name string `json:"name,omitempty"`
	// Description of the evaluation set.
	Description string `json:"description,omitempty"`
	// EvalCases contains all the evaluation cases.
	EvalCases []*EvalCase `json:"evalCases"`
	// CreationTimestamp when this eval set was created.
	CreationTimestamp *epochtime.EpochTime `json:"creationTimestamp,omitempty"`
}

// Validate reports structural problems that make the eval set unusable,
// accumulating every problem instead of stopping at the first.
func (s *EvalSet) Validate() error {
	var err error
	if s.EvalSetID == "" {
		err = multierror.Append(err, errors.New("empty eval set id"))
	}
	seen := make(map[string]struct{}, len(s.EvalCases))
	for i, evalCase := range s.EvalCases {
		if evalCase == nil {
			err = multierror.Append(err, fmt.Errorf("eval case %d is nil", i))
			continue
		}
		if evalCase.EvalID == "" {
			err = multierror.Append(err, fmt.Errorf("eval case %d has empty eval id", i))
			continue
		}
		if _, ok := seen[evalCase.EvalID]; ok {
			err = multierror.Append(err, fmt.Errorf("eval case %d has duplicate eval id %s", i, evalCase.EvalID))
		}
		seen[evalCase.EvalID] = struct{}{}
		if len(evalCase.ReferenceTokens) == 0 {
			err = multierror.Append(err, fmt.Errorf("eval case %s has no reference tokens", evalCase.EvalID))
		}
		if evalCase.Input == "" && len(evalCase.PredictedTokens) == 0 {
			err = multierror.Append(err, fmt.Errorf("eval case %s has no input and no predicted tokens", evalCase.EvalID))
		}
	}
	return err
}

// Manager defines the interface for managing evaluation sets.
type Manager interface {
	// List returns the IDs of all stored eval sets.
	List(ctx context.Context) ([]string, error)
	// Get returns an EvalSet identified by evalSetID.
	Get(ctx context.Context, evalSetID string) (*EvalSet, error)
	// Create creates and returns an empty EvalSet given the evalSetID.
	Create(ctx context.Context, evalSetID string) (*EvalSet, error)
	// Delete deletes the EvalSet identified by evalSetID.
	Delete(ctx context.Context, evalSetID string) error
	// GetCase returns an EvalCase identified by evalSetID and evalCaseID.
	GetCase(ctx context.Context, evalSetID, evalCaseID string) (*EvalCase, error)
	// AddCase adds the given EvalCase to an existing EvalSet identified by evalSetID.
	AddCase(ctx context.Context, evalSetID string, evalCase *EvalCase) error
	// UpdateCase updates an existing EvalCase given the evalSetID.
	UpdateCase(ctx context.Context, evalSetID string, updatedEvalCase *EvalCase) error
	// DeleteCase deletes the given EvalCase identified by evalSetID and evalCaseID.
	DeleteCase(ctx context.Context, evalSetID, evalCaseID string) error
	// Close closes the manager and releases underlying resources.
	Close() error
}
