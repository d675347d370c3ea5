// Package wordlist loads dictionaries of practice words.
package wordlist

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed words.txt
var embeddedWords string

// EmbeddedName labels the bundled dictionary in messages.
const EmbeddedName = "<embedded>"

// Source provides a dictionary. Implementations return the words in their
// stored order.
type Source interface {
	Load(ctx context.Context) ([]string, error)
}

// ResourceError reports a dictionary that is missing or unreadable.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("failed to load word list %s: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// FileSource reads one word per line from a text file.
type FileSource struct {
	Path string
}

// Load implements Source.
func (s FileSource) Load(_ context.Context) ([]string, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, &ResourceError{Path: s.Path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	words, err := Parse(file)
	if err != nil {
		return nil, &ResourceError{Path: s.Path, Err: err}
	}
	return words, nil
}

type embeddedSource struct{}

// Embedded returns the dictionary bundled with the binary.
func Embedded() Source {
	return embeddedSource{}
}

func (embeddedSource) Load(_ context.Context) ([]string, error) {
	words, err := Parse(strings.NewReader(embeddedWords))
	if err != nil {
		return nil, &ResourceError{Path: EmbeddedName, Err: err}
	}
	return words, nil
}

// Parse reads newline-delimited words. Line terminators are stripped and
// empty lines are kept as empty strings.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			words = append(words, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return words, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	return FileSource{Path: path}.Load(context.Background())
}
