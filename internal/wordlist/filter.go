// Package wordlist provides word list filtering helpers.
package wordlist

import "github.com/verte-zerg/touchtype/internal/model"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForCharset keeps non-empty words built only from charset members.
func FilterForCharset(charset model.Charset) FilterFunc {
	return func(word string) bool {
		if word == "" {
			return false
		}
		return charset.Allows(word)
	}
}

// Filter returns the distinct words accepted by keep, in input order.
func Filter(words []string, keep FilterFunc) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, word := range words {
		if !keep(word) {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out
}
