package catalog

import (
	"context"
	"errors"
	"fmt"

	"careerCompass/domain"
	"careerCompass/pkg/logger"
)

// ScholarshipRepository contract interface
type ScholarshipRepository interface {
	Create(ctx context.Context, scholarship *domain.Scholarship) error
	FindByID(ctx context.Context, id uint64) (domain.Scholarship, error)
	FindAll(ctx context.Context, activeOnly bool) ([]domain.Scholarship, error)
	Update(ctx context.Context, scholarship *domain.Scholarship) error
	Delete(ctx context.Context, id uint64) error
}

type scholarshipService struct {
	scholarshipRepo ScholarshipRepository
}

func NewScholarshipService(scholarshipRepo ScholarshipRepository) *scholarshipService {
	return &scholarshipService{scholarshipRepo: scholarshipRepo}
}

func (s *scholarshipService) GetAllScholarships(ctx context.Context, activeOnly bool) ([]domain.Scholarship, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	scholarships, err := s.scholarshipRepo.FindAll(ctx, activeOnly)
	if err != nil {
		logger.Error("Failed to find all scholarships", err)
		return nil, err
	}

	return scholarships, nil
}

func (s *scholarshipService) GetScholarshipByID(ctx context.Context, id uint64) (domain.Scholarship, error) {
	if err := ctx.Err(); err != nil {
		return domain.Scholarship{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		return domain.Scholarship{}, errors.New("invalid scholarship id")
	}

	scholarship, err := s.scholarshipRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find scholarship", err)
		return domain.Scholarship{}, err
	}

	return scholarship, nil
}

func (s *scholarshipService) CreateScholarship(ctx context.Context, scholarship *domain.Scholarship) (*domain.Scholarship, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if scholarship.Name == "" {
		return nil, errors.New("scholarship name is required")
	}

	scholarship.IsActive = true
	if err := s.scholarshipRepo.Create(ctx, scholarship); err != nil {
		logger.Error("failed to create new scholarship", err)
		return nil, fmt.Errorf("failed to create scholarship: %w", err)
	}

	return scholarship, nil
}

func (s *scholarshipService) UpdateScholarship(ctx context.Context, scholarship *domain.Scholarship) (*domain.Scholarship, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if scholarship.ID == 0 {
		return nil, errors.New("scholarship ID is required")
	}
	if scholarship.Name == "" {
		return nil, errors.New("scholarship name is required")
	}

	if _, err := s.scholarshipRepo.FindByID(ctx, scholarship.ID); err != nil {
		logger.Error("scholarship not found", err)
		return nil, errors.New("scholarship not found")
	}

	if err := s.scholarshipRepo.Update(ctx, scholarship); err != nil {
		logger.Error("failed to update scholarship", err)
		return nil, fmt.Errorf("failed to update scholarship: %w", err)
	}

	updated, err := s.scholarshipRepo.FindByID(ctx, scholarship.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated scholarship: %w", err)
	}

	return &updated, nil
}

func (s *scholarshipService) DeleteScholarship(ctx context.Context, id uint64) error {
	if id == 0 {
		return errors.New("invalid scholarship id")
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.scholarshipRepo.FindByID(ctx, id); err != nil {
		logger.Error("scholarship not found", err)
		return errors.New("scholarship not found")
	}

	if err := s.scholarshipRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete scholarship", err)
		return fmt.Errorf("failed to delete scholarship: %w", err)
	}

	return nil
}
