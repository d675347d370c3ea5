package wordlist

import (
	"testing"

	"github.com/verte-zerg/touchtype/internal/model"
)

func TestFilterForCharset(t *testing.T) {
	filter := FilterForCharset(model.NewCharset("asdfghjkl;"))
	if !filter("flask") {
		t.Fatalf("expected flask to pass home row filter")
	}
	for _, word := range []string{"", "hello", "Flask", "glad!"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestFilterDeduplicatesInOrder(t *testing.T) {
	words := []string{"sad", "", "dad", "sad", "tree", "add"}
	got := Filter(words, FilterForCharset(model.NewCharset("asd")))
	want := []string{"sad", "dad", "add"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %q at index %d, got %q", want[i], i, got[i])
		}
	}
}
