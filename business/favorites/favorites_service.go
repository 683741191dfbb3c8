package favorites

import (
	"context"
	"errors"
	"fmt"

	"careerCompass/domain"
	"careerCompass/pkg/logger"
)

var ErrUnknownItemType = errors.New("unknown favorite item type")

var validItemTypes = map[string]bool{
	domain.TargetCareer:      true,
	domain.TargetCollege:     true,
	domain.TargetScholarship: true,
	domain.TargetJob:         true,
}

// FavoriteRepository contract interface
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *domain.Favorite) error
	Delete(ctx context.Context, userID uint, itemType string, itemID uint64) error
	FindByUser(ctx context.Context, userID uint) ([]domain.Favorite, error)
	Exists(ctx context.Context, userID uint, itemType string, itemID uint64) (bool, error)
}

type Service struct {
	favoriteRepo FavoriteRepository
}

func NewService(favoriteRepo FavoriteRepository) *Service {
	return &Service{favoriteRepo: favoriteRepo}
}

// Add stores a favorite; adding the same item twice is a no-op.
func (s *Service) Add(ctx context.Context, userID uint, itemType string, itemID uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if !validItemTypes[itemType] {
		return fmt.Errorf("%w: %s", ErrUnknownItemType, itemType)
	}

	exists, err := s.favoriteRepo.Exists(ctx, userID, itemType, itemID)
	if err != nil {
		logger.Error("Failed to check favorite", err)
		return err
	}
	if exists {
		return nil
	}

	favorite := domain.Favorite{
		UserID:   userID,
		ItemType: itemType,
		ItemID:   itemID,
	}

	if err := s.favoriteRepo.Create(ctx, &favorite); err != nil {
		logger.Error("Failed to store favorite", err)
		return err
	}

	return nil
}

func (s *Service) Remove(ctx context.Context, userID uint, itemType string, itemID uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if !validItemTypes[itemType] {
		return fmt.Errorf("%w: %s", ErrUnknownItemType, itemType)
	}

	if err := s.favoriteRepo.Delete(ctx, userID, itemType, itemID); err != nil {
		logger.Error("Failed to remove favorite", err)
		return err
	}

	return nil
}

func (s *Service) List(ctx context.Context, userID uint) ([]domain.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.favoriteRepo.FindByUser(ctx, userID)
}
