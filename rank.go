package rake

import "sort"

// ScoreCandidates sums the word scores of every candidate phrase. Phrases
// are re-tokenized without a minimum length, so short words contribute when
// they have a score; words without one contribute 0. Repeated phrases
// collapse into a single entry at their first position.
func ScoreCandidates(phrases []string, scores map[string]float64) []Keyword {
	index := make(map[string]int, len(phrases))
	var scored []Keyword

	for _, phrase := range phrases {
		var total float64
		for _, w := range SeparateWords(phrase, 0) {
			total += scores[w]
		}

		if i, ok := index[phrase]; ok {
			scored[i].Score = total
			continue
		}
		index[phrase] = len(scored)
		scored = append(scored, Keyword{Phrase: phrase, Score: total})
	}
	return scored
}

// RankKeywords returns a copy of scored sorted by descending score and
// truncated to KeywordLimit. Ties keep their input order.
func RankKeywords(scored []Keyword, maxKeywords int) []Keyword {
	ranked := make([]Keyword, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked[:KeywordLimit(len(ranked), maxKeywords)]
}

// KeywordLimit returns how many of distinct ranked keywords to keep: a third
// of them, capped at maxKeywords when maxKeywords is positive.
func KeywordLimit(distinct, maxKeywords int) int {
	if maxKeywords > 0 && float64(distinct)/3 > float64(maxKeywords) {
		return maxKeywords
	}
	return distinct / 3
}
