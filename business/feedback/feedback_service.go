package feedback

import (
	"context"
	"errors"
	"fmt"

	"careerCompass/domain"
	"careerCompass/pkg/logger"
	"careerCompass/pkg/metrics"

	"gorm.io/datatypes"
)

var ErrUnknownFeedbackType = errors.New("unknown feedback type")

var validFeedbackTypes = map[string]bool{
	domain.FeedbackLike:          true,
	domain.FeedbackDislike:       true,
	domain.FeedbackApplied:       true,
	domain.FeedbackNotInterested: true,
}

// FeedbackRepository contract interface
type FeedbackRepository interface {
	FindByTuple(ctx context.Context, userID uint, recType string, recID uint64) (domain.FeedbackRecord, bool, error)
	Create(ctx context.Context, record *domain.FeedbackRecord) error
	Update(ctx context.Context, record *domain.FeedbackRecord) error
}

type Service struct {
	feedbackRepo FeedbackRepository
}

func NewService(feedbackRepo FeedbackRepository) *Service {
	return &Service{feedbackRepo: feedbackRepo}
}

// Submit records the user's current feedback label for one recommendation.
// At most one live record exists per (user, type, id); a new submission
// overwrites type, data and timestamp. Last write wins.
func (s *Service) Submit(ctx context.Context, userID uint, recType string, recID uint64, feedbackType string, data map[string]interface{}) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if !validFeedbackTypes[feedbackType] {
		return fmt.Errorf("%w: %s", ErrUnknownFeedbackType, feedbackType)
	}

	existing, found, err := s.feedbackRepo.FindByTuple(ctx, userID, recType, recID)
	if err != nil {
		logger.Error("Failed to look up feedback record", err)
		return err
	}

	if found {
		existing.FeedbackType = feedbackType
		existing.FeedbackData = datatypes.JSONMap(data)
		if err := s.feedbackRepo.Update(ctx, &existing); err != nil {
			logger.Error("Failed to update feedback record", err)
			return err
		}
	} else {
		record := domain.FeedbackRecord{
			UserID:             userID,
			RecommendationType: recType,
			RecommendationID:   recID,
			FeedbackType:       feedbackType,
			FeedbackData:       datatypes.JSONMap(data),
		}
		if err := s.feedbackRepo.Create(ctx, &record); err != nil {
			logger.Error("Failed to create feedback record", err)
			return err
		}
	}

	metrics.FeedbackSubmissions.WithLabelValues(feedbackType).Inc()

	return nil
}

// Get returns the current feedback label for a tuple, "none" when absent.
func (s *Service) Get(ctx context.Context, userID uint, recType string, recID uint64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}

	record, found, err := s.feedbackRepo.FindByTuple(ctx, userID, recType, recID)
	if err != nil {
		logger.Error("Failed to look up feedback record", err)
		return "", err
	}
	if !found {
		return domain.FeedbackNone, nil
	}

	return record.FeedbackType, nil
}
