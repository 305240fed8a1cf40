//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

package evalset

import (
	"trpc.group/trpc-go/trpc-tokeval-go/epochtime"
)

// EvalCase represents a single evaluation case: one sentence with its
// reference tokenization and, optionally, a pre-computed prediction.
type EvalCase struct {
	// EvalID uniquely identifies this evaluation case.
	EvalID string `json:"evalId,omitempty"`
	// Input is the raw sentence handed to the tokenizer under test.
	Input string `json:"input,omitempty"`
	// ReferenceTokens is the gold tokenization of Input.
	ReferenceTokens []string `json:"referenceTokens,omitempty"`
	// PredictedTokens is a pre-computed tokenization. When present it is
	// scored directly and the tokenizer under test is not invoked.
	PredictedTokens []string `json:"predictedTokens,omitempty"`
	// CreationTimestamp when this eval case was created.
	CreationTimestamp *epochtime.EpochTime `json:"creationTimestamp,omitempty"`
}
