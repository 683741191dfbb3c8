package trainer

import (
	"context"
	"testing"

	"careerCompass/domain"
)

func TestSelectWeightsBase(t *testing.T) {
	w := SelectWeights(GlobalAverages{EngagementScore: 2, ConversionRate: 4})

	want := ModelWeights{
		ApplicationWeight: 0.4,
		LikeWeight:        0.2,
		EngagementWeight:  0.25,
		ConversionWeight:  0.15,
	}
	if w != want {
		t.Errorf("expected base weights %+v, got %+v", want, w)
	}
}

func TestSelectWeightsConversionBump(t *testing.T) {
	w := SelectWeights(GlobalAverages{EngagementScore: 1, ConversionRate: 12})

	if w.ConversionWeight != 0.25 || w.ApplicationWeight != 0.35 {
		t.Errorf("conversion bump not applied: %+v", w)
	}
	if w.LikeWeight != 0.2 || w.EngagementWeight != 0.25 {
		t.Errorf("unrelated weights must stay at base: %+v", w)
	}
}

func TestSelectWeightsEngagementBump(t *testing.T) {
	w := SelectWeights(GlobalAverages{EngagementScore: 6, ConversionRate: 3})

	if w.EngagementWeight != 0.3 || w.LikeWeight != 0.25 {
		t.Errorf("engagement bump not applied: %+v", w)
	}
}

func TestSelectWeightsDeterministic(t *testing.T) {
	avg := GlobalAverages{EngagementScore: 6.2, ConversionRate: 11.7}

	first := SelectWeights(avg)
	for i := 0; i < 10; i++ {
		if got := SelectWeights(avg); got != first {
			t.Fatalf("run %d produced different weights: %+v vs %+v", i, got, first)
		}
	}
}

func TestAdjustmentClamping(t *testing.T) {
	w := SelectWeights(GlobalAverages{})

	// applications alone push the raw value far past the clamp
	hot := domain.PerformanceAggregate{EngagementScore: 10, ConversionRate: 20, Applications: 15, Likes: 10}
	if got := Adjustment(hot, w); got != 20 {
		t.Errorf("expected clamp to 20, got %v", got)
	}

	cold := domain.PerformanceAggregate{EngagementScore: -200}
	if got := Adjustment(cold, w); got != -20 {
		t.Errorf("expected clamp to -20, got %v", got)
	}
}

func TestNegligibleAdjustmentSkipped(t *testing.T) {
	if !Negligible(0.4) || !Negligible(-0.9) {
		t.Errorf("sub-epsilon adjustments must be no-ops")
	}
	if Negligible(1.0) || Negligible(-1.5) {
		t.Errorf("adjustments at or beyond epsilon must count")
	}
}

func TestBuildInteractionMatrix(t *testing.T) {
	records := []domain.FeedbackRecord{
		{UserID: 1, RecommendationType: domain.TargetCareer, RecommendationID: 5, FeedbackType: domain.FeedbackApplied},
		{UserID: 1, RecommendationType: domain.TargetCareer, RecommendationID: 5, FeedbackType: domain.FeedbackLike},
		{UserID: 1, RecommendationType: domain.TargetCollege, RecommendationID: 2, FeedbackType: domain.FeedbackDislike},
		{UserID: 2, RecommendationType: domain.TargetCareer, RecommendationID: 5, FeedbackType: domain.FeedbackNotInterested},
		{UserID: 3, RecommendationType: domain.TargetJob, RecommendationID: 9, FeedbackType: "unknown"},
	}

	matrix := BuildInteractionMatrix(records)

	if len(matrix) != 2 {
		t.Fatalf("expected 2 users with scored interactions, got %d", len(matrix))
	}

	// applied (+10) and like (+5) accumulate
	if got := matrix[1][itemKey{domain.TargetCareer, 5}]; got != 15 {
		t.Errorf("user 1 career 5: expected 15, got %v", got)
	}
	if got := matrix[1][itemKey{domain.TargetCollege, 2}]; got != -3 {
		t.Errorf("user 1 college 2: expected -3, got %v", got)
	}
	if got := matrix[2][itemKey{domain.TargetCareer, 5}]; got != -1 {
		t.Errorf("user 2 career 5: expected -1, got %v", got)
	}
}

type fakePerformanceRepo struct {
	rows []domain.PerformanceAggregate
}

func (f *fakePerformanceRepo) FindAll(context.Context) ([]domain.PerformanceAggregate, error) {
	return f.rows, nil
}

type fakeFeedbackRepo struct {
	rows []domain.FeedbackRecord
}

func (f *fakeFeedbackRepo) FindAll(context.Context) ([]domain.FeedbackRecord, error) {
	return f.rows, nil
}

type fakeContentRepo struct{}

func (fakeContentRepo) CountColleges(context.Context) (int64, error)     { return 3, nil }
func (fakeContentRepo) CountScholarships(context.Context) (int64, error) { return 2, nil }
func (fakeContentRepo) CountActiveJobs(context.Context) (int64, error)   { return 4, nil }

func TestTrain(t *testing.T) {
	performance := []domain.PerformanceAggregate{
		// raw comfortably above 1 -> counted
		{RecommendationType: domain.TargetCareer, RecommendationID: 1, EngagementScore: 8, ConversionRate: 4, Applications: 1, Likes: 2},
		// raw below 1 -> skipped
		{RecommendationType: domain.TargetCollege, RecommendationID: 2, EngagementScore: 0.5},
		// raw far beyond the clamp -> counted (as 20)
		{RecommendationType: domain.TargetJob, RecommendationID: 3, EngagementScore: 40, ConversionRate: 30, Applications: 20, Likes: 20},
	}
	records := []domain.FeedbackRecord{
		{UserID: 1, RecommendationType: domain.TargetCareer, RecommendationID: 1, FeedbackType: domain.FeedbackApplied},
		{UserID: 2, RecommendationType: domain.TargetJob, RecommendationID: 3, FeedbackType: domain.FeedbackLike},
	}

	svc := NewService(&fakePerformanceRepo{rows: performance}, &fakeFeedbackRepo{rows: records}, fakeContentRepo{})

	stats, err := svc.Train(context.Background())
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	if stats.PerformanceRecords != 3 {
		t.Errorf("expected 3 performance records, got %d", stats.PerformanceRecords)
	}
	if stats.UsersAnalyzed != 2 {
		t.Errorf("expected 2 users analyzed, got %d", stats.UsersAnalyzed)
	}
	if stats.UpdatesApplied != 2 {
		t.Errorf("expected 2 non-trivial adjustments, got %d", stats.UpdatesApplied)
	}

	// avg engagement = (8+0.5+40)/3 > 5 -> engagement bump
	// avg conversion = (4+0+30)/3 > 10 -> conversion bump
	if stats.ModelWeights.EngagementWeight != 0.3 || stats.ModelWeights.ConversionWeight != 0.25 {
		t.Errorf("expected both bumps applied, got %+v", stats.ModelWeights)
	}
}

func TestTrainDeterministic(t *testing.T) {
	performance := []domain.PerformanceAggregate{
		{RecommendationType: domain.TargetCareer, RecommendationID: 1, EngagementScore: 7, ConversionRate: 12, Applications: 2, Likes: 1},
	}
	svc := NewService(&fakePerformanceRepo{rows: performance}, &fakeFeedbackRepo{}, fakeContentRepo{})

	first, err := svc.Train(context.Background())
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	for i := 0; i < 5; i++ {
		got, err := svc.Train(context.Background())
		if err != nil {
			t.Fatalf("train run %d: %v", i, err)
		}
		if got != first {
			t.Fatalf("run %d differed: %+v vs %+v", i, got, first)
		}
	}
}
