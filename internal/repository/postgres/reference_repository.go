package postgres

import (
	"context"
	"errors"
	"fmt"

	"careerCompass/domain"

	"gorm.io/gorm"
)

type FAQRepository struct {
	DB *gorm.DB
}

func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{
		DB: db,
	}
}

func (r *FAQRepository) Create(ctx context.Context, faq *domain.FAQ) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(faq).Error; err != nil {
		return fmt.Errorf("failed to create faq: %w", err)
	}

	return nil
}

func (r *FAQRepository) FindAll(ctx context.Context) ([]domain.FAQ, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var faqs []domain.FAQ
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&faqs).Error; err != nil {
		return nil, fmt.Errorf("failed to find faqs: %w", err)
	}

	return faqs, nil
}

func (r *FAQRepository) Update(ctx context.Context, faq *domain.FAQ) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.FAQ{}).
		Where("id = ?", faq.ID).
		Updates(map[string]interface{}{
			"question": faq.Question,
			"answer":   faq.Answer,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update faq: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("faq not found")
	}

	return nil
}

func (r *FAQRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.FAQ{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete faq: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("faq not found")
	}

	return nil
}

type NGORepository struct {
	DB *gorm.DB
}

func NewNGORepository(db *gorm.DB) *NGORepository {
	return &NGORepository{
		DB: db,
	}
}

func (r *NGORepository) Create(ctx context.Context, ngo *domain.NGO) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(ngo).Error; err != nil {
		return fmt.Errorf("failed to create ngo: %w", err)
	}

	return nil
}

func (r *NGORepository) FindAll(ctx context.Context) ([]domain.NGO, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var ngos []domain.NGO
	if err := r.DB.WithContext(ctx).Order("name ASC").Find(&ngos).Error; err != nil {
		return nil, fmt.Errorf("failed to find ngos: %w", err)
	}

	return ngos, nil
}

func (r *NGORepository) Update(ctx context.Context, ngo *domain.NGO) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.NGO{}).
		Where("id = ?", ngo.ID).
		Updates(map[string]interface{}{
			"name":         ngo.Name,
			"focus":        ngo.Focus,
			"location":     ngo.Location,
			"contact_info": ngo.ContactInfo,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ngo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("ngo not found")
	}

	return nil
}

func (r *NGORepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.NGO{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ngo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("ngo not found")
	}

	return nil
}
