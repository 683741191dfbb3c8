package scoring

import (
	"errors"
	"math"
	"sort"

	"careerCompass/domain"
)

// ErrEmptyCategory is returned when a response carries no category tag.
var ErrEmptyCategory = errors.New("response category must not be empty")

type Tally struct {
	Correct int
	Total   int
}

// Aggregate reduces quiz responses into per-category tallies.
// Pure function, no I/O.
func Aggregate(responses []domain.QuizResponse) (map[string]Tally, error) {
	tallies := make(map[string]Tally, len(responses))

	for _, r := range responses {
		if r.Category == "" {
			return nil, ErrEmptyCategory
		}

		t := tallies[r.Category]
		t.Total++
		if r.IsCorrect {
			t.Correct++
		}
		tallies[r.Category] = t
	}

	return tallies, nil
}

// Percentages turns tallies into rounded percentage scores, sorted by
// category name. Categories with zero answered questions never appear,
// so no divide-by-zero is possible.
func Percentages(tallies map[string]Tally) []domain.CategoryScore {
	scores := make([]domain.CategoryScore, 0, len(tallies))

	for category, t := range tallies {
		if t.Total == 0 {
			continue
		}
		scores = append(scores, domain.CategoryScore{
			Category: category,
			Correct:  t.Correct,
			Total:    t.Total,
			Score:    roundHalfUp(float64(t.Correct) / float64(t.Total) * 100),
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		return scores[i].Category < scores[j].Category
	})

	return scores
}

// OverallScore is the mean of the category percentages, 0 when there are none.
func OverallScore(scores []domain.CategoryScore) float64 {
	if len(scores) == 0 {
		return 0
	}

	sum := 0
	for _, s := range scores {
		sum += s.Score
	}

	return float64(sum) / float64(len(scores))
}

// StrongestCategory returns the highest-scoring category; on a tie the
// earlier entry wins.
func StrongestCategory(scores []domain.CategoryScore) string {
	best := ""
	bestScore := -1
	for _, s := range scores {
		if s.Score > bestScore {
			best = s.Category
			bestScore = s.Score
		}
	}
	return best
}

// half-up rounding, e.g. 66.5 -> 67
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
