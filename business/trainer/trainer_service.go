package trainer

import (
	"context"
	"fmt"

	"careerCompass/domain"
	"careerCompass/pkg/logger"
	"careerCompass/pkg/metrics"
)

// PerformanceRepository contract interface
type PerformanceRepository interface {
	FindAll(ctx context.Context) ([]domain.PerformanceAggregate, error)
}

// FeedbackRepository contract interface
type FeedbackRepository interface {
	FindAll(ctx context.Context) ([]domain.FeedbackRecord, error)
}

// ContentRepository provides the catalog rows whose features are aggregated
// for future content-based scoring.
type ContentRepository interface {
	CountColleges(ctx context.Context) (int64, error)
	CountScholarships(ctx context.Context) (int64, error)
	CountActiveJobs(ctx context.Context) (int64, error)
}

type Service struct {
	performanceRepo PerformanceRepository
	feedbackRepo    FeedbackRepository
	contentRepo     ContentRepository
}

func NewService(performanceRepo PerformanceRepository, feedbackRepo FeedbackRepository, contentRepo ContentRepository) *Service {
	return &Service{
		performanceRepo: performanceRepo,
		feedbackRepo:    feedbackRepo,
		contentRepo:     contentRepo,
	}
}

// TrainingStats is the report of one training run.
type TrainingStats struct {
	PerformanceRecords int          `json:"performance_records"`
	UsersAnalyzed      int          `json:"users_analyzed"`
	UpdatesApplied     int          `json:"updates_applied"`
	ModelWeights       ModelWeights `json:"model_weights"`
}

// itemKey identifies one recommended entity across types.
type itemKey struct {
	Type string
	ID   uint64
}

// Train runs one single-pass batch over all feedback and performance rows.
// Adjustments are computed, clamped and counted but not written back to any
// confidence column; the write path per entity type is a deliberate
// extension point.
func (s *Service) Train(ctx context.Context) (TrainingStats, error) {
	if err := ctx.Err(); err != nil {
		return TrainingStats{}, fmt.Errorf("context error: %w", err)
	}

	performance, err := s.performanceRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to load performance aggregates", err)
		return TrainingStats{}, err
	}

	records, err := s.feedbackRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to load feedback records", err)
		return TrainingStats{}, err
	}

	matrix := BuildInteractionMatrix(records)

	// content features are logged as intermediate signals only; they are not
	// blended into the weight formula yet
	s.logContentFeatures(ctx)

	averages := Averages(performance)
	weights := SelectWeights(averages)

	updates := 0
	for _, row := range performance {
		adj := Adjustment(row, weights)
		if Negligible(adj) {
			continue
		}
		updates++
		logger.Info("Proposed confidence adjustment",
			"recommendation_type", row.RecommendationType,
			"recommendation_id", row.RecommendationID,
			"adjustment", adj,
		)
	}

	metrics.TrainerAdjustments.Set(float64(updates))

	logger.Info("Training run finished",
		"performance_records", len(performance),
		"users_analyzed", len(matrix),
		"updates_applied", updates,
		"avg_engagement", averages.EngagementScore,
		"avg_conversion", averages.ConversionRate,
	)

	return TrainingStats{
		PerformanceRecords: len(performance),
		UsersAnalyzed:      len(matrix),
		UpdatesApplied:     updates,
		ModelWeights:       weights,
	}, nil
}

// BuildInteractionMatrix accumulates feedback scores per user and item.
// Unlike the feedback store's current-label semantics this view is additive:
// repeated events for the same item sum up.
func BuildInteractionMatrix(records []domain.FeedbackRecord) map[uint]map[itemKey]float64 {
	matrix := make(map[uint]map[itemKey]float64)

	for _, rec := range records {
		score := feedbackScore(rec.FeedbackType)
		if score == 0 {
			continue
		}

		items, ok := matrix[rec.UserID]
		if !ok {
			items = make(map[itemKey]float64)
			matrix[rec.UserID] = items
		}
		items[itemKey{Type: rec.RecommendationType, ID: rec.RecommendationID}] += score
	}

	return matrix
}

func (s *Service) logContentFeatures(ctx context.Context) {
	colleges, err := s.contentRepo.CountColleges(ctx)
	if err != nil {
		logger.Warn("Failed to count colleges for content features", err)
	}
	scholarships, err := s.contentRepo.CountScholarships(ctx)
	if err != nil {
		logger.Warn("Failed to count scholarships for content features", err)
	}
	jobs, err := s.contentRepo.CountActiveJobs(ctx)
	if err != nil {
		logger.Warn("Failed to count active jobs for content features", err)
	}

	logger.Info("Content features",
		"colleges", colleges,
		"scholarships", scholarships,
		"active_jobs", jobs,
	)
}
