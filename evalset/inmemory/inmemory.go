//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides a in-memory storage implementation for evaluation sets.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"trpc.group/trpc-go/trpc-tokeval-go/epochtime"
	"trpc.group/trpc-go/trpc-tokeval-go/evalset"
	"trpc.group/trpc-go/trpc-tokeval-go/internal/clone"
)

// manager implements the evalset.Manager interface using in-memory storage.
//
// The manager keeps an in-memory copy of all eval sets. Each API returns
// deep-cloned objects to avoid accidental mutation by callers.
type manager struct {
	mu        sync.RWMutex
	evalSets  map[string]*evalset.EvalSet
	evalCases map[string]map[string]*evalset.EvalCase
}

// New creates a new in-memory evaluation set manager.
func New() evalset.Manager {
	return &manager{
		evalSets:  make(map[string]*evalset.EvalSet),
		evalCases: make(map[string]map[string]*evalset.EvalCase),
	}
}

// List returns the IDs of all stored eval sets in lexical order.
func (m *manager) List(ctx context.Context) ([]string, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.evalSets))
	for id := range m.evalSets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Get returns an EvalSet identified by evalSetID. If the set does not exist,
// os.ErrNotExist is returned.
func (m *manager) Get(ctx context.Context, evalSetID string) (*evalset.EvalSet, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	es, ok := m.evalSets[evalSetID]
	if !ok {
		return nil, fmt.Errorf("%w: eval set %s", os.ErrNotExist, evalSetID)
	}
	cloned, err := clone.Clone(es)
	if err != nil {
		return nil, fmt.Errorf("clone eval set %s: %w", evalSetID, err)
	}
	return cloned, nil
}

// Create creates and returns an empty EvalSet given the evalSetID.
func (m *manager) Create(ctx context.Context, evalSetID string) (*evalset.EvalSet, error) {
	_ = ctx
	if evalSetID == "" {
		return nil, errors.New("empty eval set id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.evalSets[evalSetID]; ok {
		return nil, fmt.Errorf("eval set %s already exists", evalSetID)
	}
	es := &evalset.EvalSet{
		EvalSetID:         evalSetID,
		Name:              evalSetID,
		EvalCases:         []*evalset.EvalCase{},
		CreationTimestamp: &epochtime.EpochTime{Time: time.Now().UTC()},
	}
	m.evalSets[evalSetID] = es
	m.evalCases[evalSetID] = make(map[string]*evalset.EvalCase)
	cloned, err := clone.Clone(es)
	if err != nil {
		return nil, fmt.Errorf("clone eval set %s: %w", evalSetID, err)
	}
	return cloned, nil
}

// Delete deletes the EvalSet identified by evalSetID.
func (m *manager) Delete(ctx context.Context, evalSetID string) error {
	_ = ctx
	if evalSetID == "" {
		return errors.New("empty eval set id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.evalSets[evalSetID]; !ok {
		return fmt.Errorf("%w: eval set %s", os.ErrNotExist, evalSetID)
	}
	delete(m.evalSets, evalSetID)
	delete(m.evalCases, evalSetID)
	return nil
}

// GetCase returns an EvalCase if found, otherwise an error.
func (m *manager) GetCase(ctx context.Context, evalSetID, evalCaseID string) (*evalset.EvalCase, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	casesBySet, ok := m.evalCases[evalSetID]
	if !ok {
		return nil, fmt.Errorf("%w: eval set %s", os.ErrNotExist, evalSetID)
	}
	casePtr, ok := casesBySet[evalCaseID]
	if !ok {
		return nil, fmt.Errorf("%w: eval case %s", os.ErrNotExist, evalCaseID)
	}
	cloned, err := clone.Clone(casePtr)
	if err != nil {
		return nil, fmt.Errorf("clone eval case %s: %w", evalCaseID, err)
	}
	return cloned, nil
}

// AddCase adds the given EvalCase to an existing EvalSet identified by evalSetID.
func (m *manager) AddCase(ctx context.Context, evalSetID string, evalCase *evalset.EvalCase) error {
	_ = ctx
	if evalCase == nil {
		return errors.New("evalCase is nil")
	}
	if evalCase.EvalID == "" {
		return errors.New("evalCase.EvalID is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	es, ok := m.evalSets[evalSetID]
	if !ok {
		return fmt.Errorf("%w: eval set %s", os.ErrNotExist, evalSetID)
	}
	if _, exists := m.evalCases[evalSetID][evalCase.EvalID]; exists {
		return fmt.Errorf("eval case %s.%s already exists", evalSetID, evalCase.EvalID)
	}
	cloned, err := clone.Clone(evalCase)
	if err != nil {
		return fmt.Errorf("clone eval case %s: %w", evalCase.EvalID, err)
	}
	m.evalCases[evalSetID][evalCase.EvalID] = cloned
	es.EvalCases = append(es.EvalCases, cloned)
	return nil
}

// UpdateCase updates an existing EvalCase given the evalSetID.
func (m *manager) UpdateCase(ctx context.Context, evalSetID string, updatedEvalCase *evalset.EvalCase) error {
	_ = ctx
	if updatedEvalCase == nil {
		return errors.New("updatedEvalCase is nil")
	}
	if updatedEvalCase.EvalID == "" {
		return errors.New("updatedEvalCase.EvalID is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	es, ok := m.evalSets[evalSetID]
	if !ok {
		return fmt.Errorf("%w: eval set %s", os.ErrNotExist, evalSetID)
	}
	if _, exists := m.evalCases[evalSetID][updatedEvalCase.EvalID]; !exists {
		return fmt.Errorf("%w: eval case %s", os.ErrNotExist, updatedEvalCase.EvalID)
	}
	cloned, err := clone.Clone(updatedEvalCase)
	if err != nil {
		return fmt.Errorf("clone eval case %s: %w", updatedEvalCase.EvalID, err)
	}
	m.evalCases[evalSetID][updatedEvalCase.EvalID] = cloned
	for i, c := range es.EvalCases {
		if c != nil && c.EvalID == updatedEvalCase.EvalID {
			es.EvalCases[i] = cloned
			return nil
		}
	}
	return fmt.Errorf("%w: eval case %s", os.ErrNotExist, updatedEvalCase.EvalID)
}

// DeleteCase deletes the given EvalCase identified by evalSetID and evalCaseID.
func (m *manager) DeleteCase(ctx context.Context, evalSetID, evalCaseID string) error {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	es, ok := m.evalSets[evalSetID]
	if !ok {
		return fmt.Errorf("%w: eval set %s", os.ErrNotExist, evalSetID)
	}
	if _, exists := m.evalCases[evalSetID][evalCaseID]; !exists {
		return fmt.Errorf("%w: eval case %s", os.ErrNotExist, evalCaseID)
	}
	delete(m.evalCases[evalSetID], evalCaseID)
	filtered := es.EvalCases[:0]
	for _, c := range es.EvalCases {
		if c != nil && c.EvalID != evalCaseID {
			filtered = append(filtered, c)
		}
	}
	es.EvalCases = filtered
	return nil
}

// Close implements evalset.Manager.
func (m *manager) Close() error {
	return nil
}
