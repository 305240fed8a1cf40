//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

package tokenize

// defaultLanguage is the Punkt training data used when no language is configured.
const defaultLanguage = "english"

// options holds internal configuration for tokenization.
type options struct {
	// lowercase folds tokens except emoticons to lower case.
	lowercase bool
	// language selects the Punkt training data for sentence splitting.
	language string
}

// newOptions applies functional options to build a tokenization configuration.
func newOptions(opt ...Option) *options {
	opts := &options{language: defaultLanguage}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures tokenization.
type Option func(*options)

// WithLowercase folds tokens except emoticons to lower case.
func WithLowercase(lowercase bool) Option {
	return func(o *options) {
		o.lowercase = lowercase
	}
}

// WithLanguage selects the Punkt training data for sentence splitting.
func WithLanguage(language string) Option {
	return func(o *options) {
		o.language = language
	}
}
