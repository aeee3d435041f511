package rake

import "strings"

// ExtractCandidates cuts every sentence into candidate phrases at stopword
// boundaries. Phrases are trimmed, lowercased and returned in document
// order; empty phrases are dropped and duplicates are kept. A nil matcher
// yields no candidates.
func ExtractCandidates(sentences []string, m *Matcher) []string {
	if len(sentences) == 0 || m == nil {
		return nil
	}

	var phrases []string
	for _, sentence := range sentences {
		sentence = strings.ToLower(strings.TrimSpace(sentence))
		if sentence == "" {
			continue
		}

		// Without stopwords the whole sentence is one candidate.
		if m.Passthrough() {
			phrases = append(phrases, sentence)
			continue
		}

		for _, piece := range strings.Split(m.ReplaceAll(sentence), PhraseSeparator) {
			if phrase := strings.ToLower(strings.TrimSpace(piece)); phrase != "" {
				phrases = append(phrases, phrase)
			}
		}
	}
	return phrases
}
