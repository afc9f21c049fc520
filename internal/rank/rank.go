// Package rank implements fuzzy ranking of candidate strings with
// deterministic same-score collision resolution.
//
// Matching uses a fuzzy subsequence matcher; the score is derived from where
// the matched characters landed, not from the matcher's raw score, so the
// same match pattern produces the same score regardless of name length.
// Candidates that tie are compared pairwise: a name containing the query as
// an exact whitespace-delimited token beats one that does not, otherwise the
// shorter name wins. The winner of a collision is promoted one point above
// the tied bucket so the closest match surfaces first.
package rank

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Scored is a provider-local pointer into a candidate set plus a rank.
type Scored struct {
	// Index is the position of the candidate in the input slice.
	Index int
	// Score is the fuzzy score after collision resolution. Higher is better.
	Score int
}

// Rank scores candidates against query and returns them in descending score
// order. Candidates with no fuzzy match are dropped. Duplicate candidate
// strings are ranked independently per their source index.
//
// Callers must not invoke Rank with an empty query; candidacy for the empty
// query is the provider's responsibility.
func Rank(candidates []string, query string) []Scored {
	base := baseScores(candidates, query)
	return resolveCollisions(candidates, base, query)
}

// Scoring weights for the bucket key derived from matched positions.
const (
	matchWeight       = 4 // every matched character
	consecutiveWeight = 8 // adjacency to the previous matched character
	boundaryWeight    = 8 // match at the start of the name or of a word
)

// baseScores computes case-insensitive match scores, keyed by candidate
// index. Non-matching candidates are absent from the map.
func baseScores(candidates []string, query string) map[int]int {
	lowered := make([]string, len(candidates))
	for i, c := range candidates {
		lowered[i] = strings.ToLower(c)
	}

	scores := make(map[int]int, len(candidates))
	for _, m := range fuzzy.Find(strings.ToLower(query), lowered) {
		scores[m.Index] = patternScore(lowered[m.Index], m.MatchedIndexes)
	}
	return scores
}

// patternScore scores a match by where its characters landed: consecutive
// runs and word-boundary hits raise the score. The matcher's raw score is
// not used as the bucket key because it penalizes unmatched trailing
// characters — equally good matches in names of different lengths would
// never tie, and the tie is what hands ordering to the collision resolver.
func patternScore(name string, matched []int) int {
	score := 0
	prev := -2
	for _, idx := range matched {
		score += matchWeight
		if idx == prev+1 {
			score += consecutiveWeight
		}
		if idx == 0 || isBoundary(name[idx-1]) {
			score += boundaryWeight
		}
		prev = idx
	}
	return score
}

func isBoundary(b byte) bool {
	switch b {
	case ' ', '-', '_', '.', '/':
		return true
	}
	return false
}

// resolveCollisions buckets candidate indices by raw score and applies the
// pairwise tie-break, promoting collision winners to score+1.
//
// Promotion is single-level: a promoted candidate may land in an
// already-occupied bucket at score+1 without triggering another round of
// comparisons there. Cascading would let one strong candidate climb past
// buckets it never actually tied with.
func resolveCollisions(candidates []string, base map[int]int, query string) []Scored {
	buckets := make(map[int][]int, len(base))
	var order []int // bucket keys in first-seen order, for deterministic flattening

	for index := range candidates {
		score, ok := base[index]
		if !ok {
			continue
		}

		bucket, collision := buckets[score]
		if !collision {
			buckets[score] = []int{index}
			order = append(order, score)
			continue
		}

		// Compare the new candidate against every member of the tied bucket.
		// existingWinner is the first member that beats the candidate;
		// candidateWins is set if the candidate beats at least one member.
		existingWinner := -1
		candidateWins := false
		for _, existing := range bucket {
			switch resolveSameScore(candidates[existing], candidates[index], query) {
			case 1:
				existingWinner = existing
			case -1:
				candidateWins = true
			}
			if existingWinner >= 0 {
				break
			}
		}

		switch {
		case candidateWins:
			if _, ok := buckets[score+1]; !ok {
				order = append(order, score+1)
			}
			buckets[score+1] = append(buckets[score+1], index)
		case existingWinner >= 0:
			kept := bucket[:0:0]
			for _, i := range bucket {
				if i != existingWinner {
					kept = append(kept, i)
				}
			}
			buckets[score] = append(kept, index)
			if _, ok := buckets[score+1]; !ok {
				order = append(order, score+1)
			}
			buckets[score+1] = append(buckets[score+1], existingWinner)
		default:
			buckets[score] = append(bucket, index)
		}
	}

	results := make([]Scored, 0, len(base))
	for _, score := range order {
		for _, index := range buckets[score] {
			results = append(results, Scored{Index: index, Score: score})
		}
	}

	// Stable: ties within a bucket keep insertion order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// resolveSameScore breaks a raw-score tie between two candidate names.
// Returns 1 if a wins, -1 if b wins, 0 for a tie.
//
// A name containing the lower-cased query as an exact whitespace-delimited
// token beats one that does not ("Zen Browser" beats "Zenity" for "zen").
// Failing that, the shorter name is the closer match.
func resolveSameScore(a, b, query string) int {
	aName := strings.ToLower(a)
	bName := strings.ToLower(b)
	q := strings.ToLower(query)

	aExact := containsToken(aName, q)
	bExact := containsToken(bName, q)

	switch {
	case aExact && !bExact:
		return 1
	case bExact && !aExact:
		return -1
	case len(aName) < len(bName):
		return 1
	case len(bName) < len(aName):
		return -1
	default:
		return 0
	}
}

func containsToken(name, token string) bool {
	for _, field := range strings.Fields(name) {
		if field == token {
			return true
		}
	}
	return false
}
