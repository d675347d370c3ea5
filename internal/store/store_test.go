package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/touchtype/internal/wordlist"
)

var _ wordlist.Source = (*Store)(nil)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "words.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestImportAndLoadKeepsOrder(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	words := []string{"zoo", "ask", "", "flask", "ask"}
	if err := st.ImportWords(ctx, words); err != nil {
		t.Fatalf("import words: %v", err)
	}
	got, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	if len(got) != len(words) {
		t.Fatalf("expected %d words, got %d", len(words), len(got))
	}
	for i := range words {
		if got[i] != words[i] {
			t.Fatalf("expected %q at index %d, got %q", words[i], i, got[i])
		}
	}
}

func TestImportReplacesPreviousList(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if err := st.ImportWords(ctx, []string{"one", "two", "three"}); err != nil {
		t.Fatalf("import words: %v", err)
	}
	if err := st.ImportWords(ctx, []string{"sad"}); err != nil {
		t.Fatalf("reimport words: %v", err)
	}
	n, err := st.Count(ctx)
	if err != nil {
		t.Fatalf("count words: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 word after reimport, got %d", n)
	}
}

func TestLoadEmptyStore(t *testing.T) {
	st := openTestStore(t)
	words, err := st.Load(context.Background())
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	if len(words) != 0 {
		t.Fatalf("expected no words, got %q", words)
	}
}
