// Package model defines shared data structures.
package model

import (
	"sort"
	"time"
)

// Mode defines a practice drill: how many words and which characters.
type Mode struct {
	Key     string
	Name    string
	Words   int
	Letters string
	// Custom modes collect Words and Letters interactively before each session.
	Custom bool
}

// Charset is a case-sensitive set of permitted characters.
type Charset map[rune]struct{}

// NewCharset builds a Charset from the runes of s.
func NewCharset(s string) Charset {
	set := make(Charset, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// Contains reports whether r is in the set.
func (c Charset) Contains(r rune) bool {
	_, ok := c[r]
	return ok
}

// Allows reports whether every rune of word is in the set.
func (c Charset) Allows(word string) bool {
	for _, r := range word {
		if !c.Contains(r) {
			return false
		}
	}
	return true
}

// String returns the members in rune order.
func (c Charset) String() string {
	runes := make([]rune, 0, len(c))
	for r := range c {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}

// Passage is the fixed target text for one session.
type Passage struct {
	Words []string
	Text  string
}

// Result is the snapshot computed when a session completes.
type Result struct {
	Mode           string
	Elapsed        time.Duration
	ElapsedMinutes float64
	WPM            float64
	Accuracy       float64
	Characters     int
	Errors         int
}
