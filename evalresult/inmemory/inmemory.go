//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory storage implementation for evaluation results.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"trpc.group/trpc-go/trpc-tokeval-go/epochtime"
	"trpc.group/trpc-go/trpc-tokeval-go/evalresult"
	"trpc.group/trpc-go/trpc-tokeval-go/internal/clone"
)

// manager implements the evalresult.Manager interface using in-memory storage.
type manager struct {
	mu      sync.RWMutex
	results map[string]*evalresult.EvalSetResult
}

// New creates a new in-memory evaluation result manager.
func New() evalresult.Manager {
	return &manager{results: make(map[string]*evalresult.EvalSetResult)}
}

// Save stores an evaluation result in memory and returns its id.
// An id is minted when the result does not carry one.
func (m *manager) Save(ctx context.Context, evalSetResult *evalresult.EvalSetResult) (string, error) {
	_ = ctx
	if evalSetResult == nil {
		return "", errors.New("eval set result is nil")
	}
	if evalSetResult.EvalSetID == "" {
		return "", errors.New("the eval set id of eval set result is empty")
	}
	stored, err := clone.Clone(evalSetResult)
	if err != nil {
		return "", fmt.Errorf("clone eval set result: %w", err)
	}
	if stored.EvalSetResultID == "" {
		stored.EvalSetResultID = fmt.Sprintf("%s_%s", stored.EvalSetID, uuid.New().String())
	}
	if stored.EvalSetResultName == "" {
		stored.EvalSetResultName = stored.EvalSetResultID
	}
	if stored.CreationTimestamp == nil {
		stored.CreationTimestamp = &epochtime.EpochTime{Time: time.Now().UTC()}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[stored.EvalSetResultID] = stored
	return stored.EvalSetResultID, nil
}

// Get retrieves an evaluation result by evalSetResultID from memory.
func (m *manager) Get(ctx context.Context, evalSetResultID string) (*evalresult.EvalSetResult, error) {
	_ = ctx
	if evalSetResultID == "" {
		return nil, errors.New("empty eval set result id")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored, ok := m.results[evalSetResultID]
	if !ok {
		return nil, fmt.Errorf("%w: eval set result %s", os.ErrNotExist, evalSetResultID)
	}
	return clone.Clone(stored)
}

// List returns the ids of all stored evaluation results in ascending order.
func (m *manager) List(ctx context.Context) ([]string, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.results))
	for id := range m.results {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Close implements evalresult.Manager.
func (m *manager) Close() error {
	return nil
}
