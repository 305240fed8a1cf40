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
	"regexp"
	"strings"
)

// Token alternatives, tried in order. URLs and eyes-first emoticons are
// matched before words; the mouth-first emoticon form comes after words so
// that ordinary words starting with d, D, p or P are not eaten, e.g. "do:".
const (
	// urlPattern matches http(s) URLs and bare www hosts.
	urlPattern = `https?://\S+|www\.\S+`
	// emoticonEyesPattern matches western emoticons written eyes first, e.g. :-) ;P =D.
	emoticonEyesPattern = `[<>]?[:;=8][-o*']?[][(){}dDpP/:@|\\]`
	// emoticonMouthPattern matches the reversed form, e.g. (-: ]:<.
	emoticonMouthPattern = `[][(){}dDpP/:@|\\][-o*']?[:;=8][<>]?`
	// heartPattern matches <3 and its broken variant </3.
	heartPattern = `</?3`
	// mentionPattern matches @usernames, which are ASCII on every major platform.
	mentionPattern = `@\w+`
	// hashtagPattern matches #hashtags, including accented ones.
	hashtagPattern = `#[\p{L}\p{N}_]+`
	// numberPattern matches integers and decimals with comma or period separators.
	numberPattern = `\d+(?:[.,]\d+)*`
	// wordPattern matches Unicode letter runs, keeping internal hyphens.
	wordPattern = `[\p{L}\p{M}]+(?:-[\p{L}\p{M}]+)*`
	// ellipsisPattern matches a three-dot ellipsis.
	ellipsisPattern = `\.\.\.`
)

var (
	// socialTokenRE extracts tokens from social-media text.
	socialTokenRE = regexp.MustCompile(strings.Join([]string{
		urlPattern,
		emoticonEyesPattern,
		heartPattern,
		mentionPattern,
		hashtagPattern,
		numberPattern,
		wordPattern,
		emoticonMouthPattern,
		ellipsisPattern,
		`\S`,
	}, "|"))
	// emoticonRE matches a full token that is an emoticon.
	emoticonRE = regexp.MustCompile(`^(?:` + emoticonEyesPattern + `|` + emoticonMouthPattern + `|` + heartPattern + `)$`)
)

// Social tokenizes social-media text. URLs, @mentions, #hashtags, western
// emoticons and decimal numbers survive as single tokens; everything else
// splits into words and single punctuation marks.
type Social struct {
	// lowercase folds every token except emoticons to lower case.
	lowercase bool
}

// NewSocial creates a social-media tokenizer.
func NewSocial(opt ...Option) *Social {
	opts := newOptions(opt...)
	return &Social{lowercase: opts.lowercase}
}

// Tokenize splits input text into tokens.
func (t *Social) Tokenize(text string) []string {
	tokens := socialTokenRE.FindAllString(text, -1)
	if !t.lowercase {
		return tokens
	}
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if emoticonRE.MatchString(token) {
			out = append(out, token)
			continue
		}
		out = append(out, strings.ToLower(token))
	}
	return out
}
