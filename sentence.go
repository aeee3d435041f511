package rake

import "regexp"

// sentenceDelimiters matches punctuation that ends a sentence-like fragment,
// including the curly apostrophe and the en dash.
var sentenceDelimiters = regexp.MustCompile("[.!?,;:\t\\-\"()'’–]")

// SplitSentences splits text at every delimiter character. Delimiters are
// discarded and adjacent delimiters yield empty fragments, which are kept.
func SplitSentences(text string) []string {
	return sentenceDelimiters.Split(text, -1)
}
