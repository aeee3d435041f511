package rake

import (
	"bufio"
	"context"
	"io"
	"sort"
	"strings"
)

// StopWordLoader loads stopwords from a file.
type StopWordLoader interface {
	// LoadStopWords reads the stoplist at path.
	// Returns ENOTFOUND if the file cannot be opened.
	LoadStopWords(ctx context.Context, path string) ([]string, error)
}

// maxStopWordLine bounds a single stoplist line.
const maxStopWordLine = 16 << 20

// ParseStopWords reads a stoplist. Lines whose first character is '#' are
// comments. Every whitespace-delimited token on other lines is a stopword.
func ParseStopWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxStopWordLine)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		for _, field := range strings.Fields(line) {
			words = append(words, strings.ToLower(field))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// StopWordSet is a set of lowercase stopwords.
type StopWordSet map[string]struct{}

// NewStopWordSet builds a set from words. Words are lowercased and trimmed;
// empty words are dropped.
func NewStopWordSet(words []string) StopWordSet {
	set := make(StopWordSet, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether word is in the set.
func (s StopWordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Words returns the stopwords ordered longest first, then alphabetically.
func (s StopWordSet) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	return words
}
