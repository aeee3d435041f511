package rake

// WordStats holds the co-occurrence statistics of one word.
type WordStats struct {
	// Frequency counts occurrences across all candidate phrases.
	Frequency int `json:"frequency"`

	// Degree is the co-occurrence degree with the word's own
	// frequency folded in.
	Degree int `json:"degree"`

	// Score is Degree / Frequency.
	Score float64 `json:"score"`
}

// CalculateWordStats computes frequency, degree and score for every word
// longer than minWordLength found in phrases. Words that never qualify have
// no entry.
func CalculateWordStats(phrases []string, minWordLength int) map[string]WordStats {
	frequency := make(map[string]int)
	degree := make(map[string]int)

	for _, phrase := range phrases {
		words := SeparateWords(phrase, minWordLength)
		if len(words) == 0 {
			continue
		}
		contribution := len(words) - 1
		for _, w := range words {
			frequency[w]++
			degree[w] += contribution
		}
	}

	stats := make(map[string]WordStats, len(frequency))
	for w, freq := range frequency {
		deg := degree[w] + freq
		stats[w] = WordStats{
			Frequency: freq,
			Degree:    deg,
			Score:     float64(deg) / float64(freq),
		}
	}
	return stats
}

// WordScores reduces stats to a word → score mapping.
func WordScores(stats map[string]WordStats) map[string]float64 {
	scores := make(map[string]float64, len(stats))
	for w, s := range stats {
		scores[w] = s.Score
	}
	return scores
}
