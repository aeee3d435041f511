package rake

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// PhraseSeparator replaces stopwords inside a sentence. It never appears in
// a candidate phrase.
const PhraseSeparator = "|"

// Matcher replaces whole-word stopword occurrences with PhraseSeparator.
// A Matcher built from an empty stoplist is a passthrough.
type Matcher struct {
	// byFirst groups stopwords by their first rune, longest first.
	byFirst map[rune][]string
}

// NewMatcher builds a matcher for stopWords. Stopwords match literally and
// only as whole words, where word characters are Unicode letters, digits
// and underscore. Longer stopwords are tried first.
func NewMatcher(stopWords []string) *Matcher {
	words := NewStopWordSet(stopWords).Words()
	if len(words) == 0 {
		return &Matcher{}
	}

	byFirst := make(map[rune][]string)
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		byFirst[r] = append(byFirst[r], w)
	}
	return &Matcher{byFirst: byFirst}
}

// Passthrough reports whether the matcher has no stopwords.
func (m *Matcher) Passthrough() bool {
	return m == nil || len(m.byFirst) == 0
}

// ReplaceAll replaces every stopword in sentence with PhraseSeparator.
// The sentence is expected to be lowercased already.
func (m *Matcher) ReplaceAll(sentence string) string {
	if m.Passthrough() {
		return sentence
	}

	var b strings.Builder
	b.Grow(len(sentence))
	for i := 0; i < len(sentence); {
		if n := m.matchAt(sentence, i); n > 0 {
			b.WriteString(PhraseSeparator)
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(sentence[i:])
		b.WriteString(sentence[i : i+size])
		i += size
	}
	return b.String()
}

// matchAt returns the byte length of the stopword matching sentence at i,
// or 0 if none does.
func (m *Matcher) matchAt(sentence string, i int) int {
	if !isWordBoundary(sentence, i) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(sentence[i:])
	for _, w := range m.byFirst[r] {
		if strings.HasPrefix(sentence[i:], w) && isWordBoundary(sentence, i+len(w)) {
			return len(w)
		}
	}
	return 0
}

// isWordBoundary reports whether exactly one side of byte offset i in s is a
// word character.
func isWordBoundary(s string, i int) bool {
	var before, after bool
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = isWordRune(r)
	}
	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
