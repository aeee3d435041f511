package rake

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// nonWordChars matches runs of characters that cannot be part of a word.
// Words consist of letters, digits, underscore, plus and minus.
var nonWordChars = regexp.MustCompile(`[^\p{L}\p{N}_+\-]+`)

// SeparateWords splits phrase into lowercase words longer than minWordLength
// runes. Numeric tokens are dropped.
func SeparateWords(phrase string, minWordLength int) []string {
	var words []string
	for _, token := range nonWordChars.Split(phrase, -1) {
		if token == "" || utf8.RuneCountInString(token) <= minWordLength || isNumeric(token) {
			continue
		}
		words = append(words, strings.ToLower(token))
	}
	return words
}

// isNumeric reports whether s is a number with an optional sign and
// exponent, e.g. "42", "-7", "+3e10" or "١٢٣". Digits of any script count.
func isNumeric(s string) bool {
	rs := []rune(s)
	i := 0
	if i < len(rs) && (rs[i] == '+' || rs[i] == '-') {
		i++
	}
	digits := func() int {
		start := i
		for i < len(rs) && unicode.IsDigit(rs[i]) {
			i++
		}
		return i - start
	}
	if digits() == 0 {
		return false
	}
	if i < len(rs) && (rs[i] == 'e' || rs[i] == 'E') {
		i++
		if i < len(rs) && (rs[i] == '+' || rs[i] == '-') {
			i++
		}
		if digits() == 0 {
			return false
		}
	}
	return i == len(rs)
}
