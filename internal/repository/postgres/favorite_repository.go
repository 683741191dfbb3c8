package postgres

import (
	"context"
	"errors"
	"fmt"

	"careerCompass/domain"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{
		DB: db,
	}
}

func (r *FavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(favorite).Error; err != nil {
		// a concurrent Add for the same item is fine, the row already exists
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}

	return nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID uint, itemType string, itemID uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).
		Delete(&domain.Favorite{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("favorite not found")
	}

	return nil
}

func (r *FavoriteRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var favorites []domain.Favorite
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find favorites: %w", err)
	}

	return favorites, nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID uint, itemType string, itemID uint64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}

	return count > 0, nil
}
