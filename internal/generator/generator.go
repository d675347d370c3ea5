// Package generator builds typing passages from a dictionary.
package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/verte-zerg/touchtype/internal/model"
	"github.com/verte-zerg/touchtype/internal/wordlist"
)

// InsufficientWordsError reports a charset that matches fewer dictionary
// words than a passage needs.
type InsufficientWordsError struct {
	Eligible  int
	Requested int
}

func (e *InsufficientWordsError) Error() string {
	return fmt.Sprintf("not enough words found: found %d words, but %d were requested", e.Eligible, e.Requested)
}

// InvalidConfigError reports a passage request that can never be satisfied.
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return "invalid passage config: " + e.Reason
}

// Generator samples passages from a fixed word list.
type Generator struct {
	words []string
	rnd   *rand.Rand
}

// New returns a Generator over words. A zero seed uses the current time.
func New(words []string, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{words: words, rnd: rand.New(rand.NewSource(seed))}
}

// Eligible returns the distinct dictionary words spelled only with charset.
func (g *Generator) Eligible(charset model.Charset) []string {
	return wordlist.Filter(g.words, wordlist.FilterForCharset(charset))
}

// Build samples count distinct eligible words and joins them with spaces.
func (g *Generator) Build(charset model.Charset, count int) (model.Passage, error) {
	if count <= 0 {
		return model.Passage{}, &InvalidConfigError{Reason: fmt.Sprintf("word count must be > 0, got %d", count)}
	}
	if len(charset) == 0 {
		return model.Passage{}, &InvalidConfigError{Reason: "character set is empty"}
	}
	eligible := g.Eligible(charset)
	if len(eligible) < count {
		return model.Passage{}, &InsufficientWordsError{Eligible: len(eligible), Requested: count}
	}

	// Partial Fisher-Yates: the first count slots end up a uniform sample.
	for i := 0; i < count; i++ {
		j := i + g.rnd.Intn(len(eligible)-i)
		eligible[i], eligible[j] = eligible[j], eligible[i]
	}
	words := eligible[:count:count]
	return model.Passage{Words: words, Text: strings.Join(words, " ")}, nil
}
