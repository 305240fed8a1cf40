//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

package clone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sentence struct {
	Input  string
	Tokens []string
}

type record struct {
	ID        string
	Sentences []*sentence
}

type nonSerializable struct {
	Bad map[string]any
}

func TestCloneSuccess(t *testing.T) {
	src := &record{
		ID: "case-1",
		Sentences: []*sentence{
			{Input: "Oi :)", Tokens: []string{"Oi", ":)"}},
		},
	}
	dst, err := Clone(src)
	assert.NoError(t, err)
	assert.NotSame(t, src, dst)
	assert.Equal(t, src, dst)
}

func TestCloneNilInput(t *testing.T) {
	dst, err := Clone[record](nil)
	assert.Error(t, err)
	assert.Nil(t, dst)
}

func TestCloneGobError(t *testing.T) {
	src := &nonSerializable{Bad: map[string]any{"c": make(chan int)}}
	dst, err := Clone(src)
	assert.Error(t, err)
	assert.Nil(t, dst)
}

func TestCloneIsolation(t *testing.T) {
	src := &record{
		ID: "case-2",
		Sentences: []*sentence{
			{Tokens: []string{"tudo", "bem", "?"}},
		},
	}
	dst, err := Clone(src)
	assert.NoError(t, err)

	// Mutating the clone must not reach back into the original.
	dst.Sentences[0].Tokens[0] = "nada"
	assert.Equal(t, "tudo", src.Sentences[0].Tokens[0])
}
