package scoring

import (
	"errors"
	"testing"

	"careerCompass/domain"
)

func resp(category string, correct bool) domain.QuizResponse {
	return domain.QuizResponse{Category: category, IsCorrect: correct}
}

func TestAggregateAndPercentages(t *testing.T) {
	responses := []domain.QuizResponse{
		resp("logical", true),
		resp("logical", false),
		resp("logical", true),
		resp("technical", true),
		resp("technical", true),
	}

	tallies, err := Aggregate(responses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	scores := Percentages(tallies)
	if len(scores) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(scores))
	}

	// sorted by category name: logical, technical
	if scores[0].Category != "logical" || scores[0].Score != 67 {
		t.Errorf("logical: expected 2/3 -> 67, got %+v", scores[0])
	}
	if scores[1].Category != "technical" || scores[1].Score != 100 {
		t.Errorf("technical: expected 2/2 -> 100, got %+v", scores[1])
	}
}

func TestPercentagesBounds(t *testing.T) {
	responses := []domain.QuizResponse{
		resp("verbal", false),
		resp("verbal", false),
		resp("creative", true),
	}

	tallies, err := Aggregate(responses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range Percentages(tallies) {
		if s.Score < 0 || s.Score > 100 {
			t.Errorf("score out of range for %s: %d", s.Category, s.Score)
		}
	}
}

func TestZeroResponseCategoryAbsent(t *testing.T) {
	responses := []domain.QuizResponse{
		resp("technical", true),
		resp("technical", true),
		resp("technical", true),
		resp("technical", true),
		resp("technical", true),
	}

	tallies, err := Aggregate(responses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	scores := Percentages(tallies)
	if len(scores) != 1 {
		t.Fatalf("expected single category, got %d", len(scores))
	}
	if scores[0].Category != "technical" || scores[0].Score != 100 {
		t.Errorf("expected technical 100, got %+v", scores[0])
	}
}

func TestAggregateRejectsEmptyCategory(t *testing.T) {
	_, err := Aggregate([]domain.QuizResponse{resp("", true)})
	if !errors.Is(err, ErrEmptyCategory) {
		t.Fatalf("expected ErrEmptyCategory, got %v", err)
	}
}

func TestOverallScore(t *testing.T) {
	scores := []domain.CategoryScore{
		{Category: "logical", Score: 67},
		{Category: "technical", Score: 100},
	}

	got := OverallScore(scores)
	if got != 83.5 {
		t.Errorf("expected 83.5, got %v", got)
	}

	if OverallScore(nil) != 0 {
		t.Errorf("expected 0 for empty scores")
	}
}

func TestStrongestCategory(t *testing.T) {
	scores := []domain.CategoryScore{
		{Category: "logical", Score: 40},
		{Category: "technical", Score: 90},
		{Category: "verbal", Score: 90},
	}

	if got := StrongestCategory(scores); got != "technical" {
		t.Errorf("expected technical, got %s", got)
	}
}
