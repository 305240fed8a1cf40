//
// Tencent is pleased to support the open source community by making trpc-tokeval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-tokeval-go is licensed under the Apache License Version 2.0.
//
//

package tokenize

import (
	"fmt"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

// sentenceModel holds a loaded Punkt tokenizer or the error that prevented
// loading it. Failures are cached so repeated calls do not retry the load.
type sentenceModel struct {
	tokenizer *sentences.DefaultSentenceTokenizer
	err       error
}

var (
	// sentenceModelsMu guards sentenceModels.
	sentenceModelsMu sync.Mutex
	// sentenceModels caches one Punkt model per language.
	sentenceModels = make(map[string]*sentenceModel)
)

// loadSentenceModel returns the Punkt tokenizer for a language, loading and
// caching it on first use.
func loadSentenceModel(language string) (*sentences.DefaultSentenceTokenizer, error) {
	sentenceModelsMu.Lock()
	defer sentenceModelsMu.Unlock()
	if model, ok := sentenceModels[language]; ok {
		return model.tokenizer, model.err
	}
	model := &sentenceModel{}
	sentenceModels[language] = model
	b, err := sentencesdata.Asset("data/" + language + ".json")
	if err != nil {
		model.err = fmt.Errorf("load %s punkt data: %w", language, err)
		return nil, model.err
	}
	training, err := sentences.LoadTraining(b)
	if err != nil {
		model.err = fmt.Errorf("parse %s punkt data: %w", language, err)
		return nil, model.err
	}
	model.tokenizer = sentences.NewSentenceTokenizer(training)
	return model.tokenizer, nil
}

// SplitSentences splits text into sentences using Punkt training data for
// the configured language (english unless WithLanguage says otherwise).
func SplitSentences(text string, opt ...Option) ([]string, error) {
	opts := newOptions(opt...)
	tokenizer, err := loadSentenceModel(opts.language)
	if err != nil {
		return nil, err
	}
	raw := tokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		s := strings.TrimSpace(sent.Text)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
