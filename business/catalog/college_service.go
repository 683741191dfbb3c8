package catalog

import (
	"context"
	"errors"
	"fmt"

	"careerCompass/domain"
	"careerCompass/pkg/logger"
)

// CollegeRepository contract interface
type CollegeRepository interface {
	Create(ctx context.Context, college *domain.College) error
	FindByID(ctx context.Context, id uint64) (domain.College, error)
	FindAll(ctx context.Context) ([]domain.College, error)
	Update(ctx context.Context, college *domain.College) error
	Delete(ctx context.Context, id uint64) error
}

type collegeService struct {
	collegeRepo CollegeRepository
}

func NewCollegeService(collegeRepo CollegeRepository) *collegeService {
	return &collegeService{collegeRepo: collegeRepo}
}

func (s *collegeService) GetAllColleges(ctx context.Context) ([]domain.College, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	colleges, err := s.collegeRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all colleges", err)
		return nil, err
	}

	return colleges, nil
}

func (s *collegeService) GetCollegeByID(ctx context.Context, id uint64) (domain.College, error) {
	if err := ctx.Err(); err != nil {
		return domain.College{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		return domain.College{}, errors.New("invalid college id")
	}

	college, err := s.collegeRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find college", err)
		return domain.College{}, err
	}

	return college, nil
}

func (s *collegeService) CreateCollege(ctx context.Context, college *domain.College) (*domain.College, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if college.Name == "" {
		return nil, errors.New("college name is required")
	}

	if err := s.collegeRepo.Create(ctx, college); err != nil {
		logger.Error("failed to create new college", err)
		return nil, fmt.Errorf("failed to create college: %w", err)
	}

	logger.Info("college created successfully")

	return college, nil
}

func (s *collegeService) UpdateCollege(ctx context.Context, college *domain.College) (*domain.College, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if college.ID == 0 {
		return nil, errors.New("college ID is required")
	}
	if college.Name == "" {
		return nil, errors.New("college name is required")
	}

	if _, err := s.collegeRepo.FindByID(ctx, college.ID); err != nil {
		logger.Error("college not found", err)
		return nil, errors.New("college not found")
	}

	if err := s.collegeRepo.Update(ctx, college); err != nil {
		logger.Error("failed to update college", err)
		return nil, fmt.Errorf("failed to update college: %w", err)
	}

	updated, err := s.collegeRepo.FindByID(ctx, college.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated college: %w", err)
	}

	return &updated, nil
}

func (s *collegeService) DeleteCollege(ctx context.Context, id uint64) error {
	if id == 0 {
		return errors.New("invalid college id")
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.collegeRepo.FindByID(ctx, id); err != nil {
		logger.Error("college not found", err)
		return errors.New("college not found")
	}

	if err := s.collegeRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete college", err)
		return fmt.Errorf("failed to delete college: %w", err)
	}

	return nil
}
