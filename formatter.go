package rake

import (
	"strconv"
	"strings"
)

// FormatKeywords formats keywords one per line as "score<TAB>phrase" with
// scores rounded to two decimals.
func FormatKeywords(keywords []Keyword) string {
	if len(keywords) == 0 {
		return ""
	}

	lines := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		lines = append(lines, strconv.FormatFloat(kw.Score, 'f', 2, 64)+"\t"+kw.Phrase)
	}

	return strings.Join(lines, "\n")
}
