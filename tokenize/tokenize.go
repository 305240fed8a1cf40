//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

// Package tokenize provides tokenizers for social-media text and helpers
// for splitting raw text into sentences.
package tokenize

import "strings"

// Tokenizer tokenizes text into a list of tokens.
type Tokenizer interface {
	// Tokenize splits input text into tokens.
	Tokenize(text string) []string
}

// Whitespace is the baseline tokenizer: it splits on Unicode whitespace
// and performs no further analysis.
type Whitespace struct{}

// Tokenize splits input text on whitespace.
func (Whitespace) Tokenize(text string) []string {
	return strings.Fields(text)
}
