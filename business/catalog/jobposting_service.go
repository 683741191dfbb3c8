package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careerCompass/domain"
	"careerCompass/pkg/logger"
)

// JobPostingRepository contract interface
type JobPostingRepository interface {
	Create(ctx context.Context, job *domain.JobPosting) error
	FindByID(ctx context.Context, id uint64) (domain.JobPosting, error)
	FindAll(ctx context.Context, activeOnly bool) ([]domain.JobPosting, error)
	Update(ctx context.Context, job *domain.JobPosting) error
	Delete(ctx context.Context, id uint64) error
}

type jobPostingService struct {
	jobRepo JobPostingRepository
}

func NewJobPostingService(jobRepo JobPostingRepository) *jobPostingService {
	return &jobPostingService{jobRepo: jobRepo}
}

func (s *jobPostingService) GetAllJobPostings(ctx context.Context, activeOnly bool) ([]domain.JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	jobs, err := s.jobRepo.FindAll(ctx, activeOnly)
	if err != nil {
		logger.Error("Failed to find all job postings", err)
		return nil, err
	}

	return jobs, nil
}

func (s *jobPostingService) GetJobPostingByID(ctx context.Context, id uint64) (domain.JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return domain.JobPosting{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		return domain.JobPosting{}, errors.New("invalid job posting id")
	}

	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find job posting", err)
		return domain.JobPosting{}, err
	}

	return job, nil
}

func (s *jobPostingService) CreateJobPosting(ctx context.Context, job *domain.JobPosting) (*domain.JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if job.Title == "" {
		return nil, errors.New("job title is required")
	}

	job.IsActive = true
	if job.PostedAt.IsZero() {
		job.PostedAt = time.Now()
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		logger.Error("failed to create new job posting", err)
		return nil, fmt.Errorf("failed to create job posting: %w", err)
	}

	return job, nil
}

func (s *jobPostingService) UpdateJobPosting(ctx context.Context, job *domain.JobPosting) (*domain.JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if job.ID == 0 {
		return nil, errors.New("job posting ID is required")
	}
	if job.Title == "" {
		return nil, errors.New("job title is required")
	}

	if _, err := s.jobRepo.FindByID(ctx, job.ID); err != nil {
		logger.Error("job posting not found", err)
		return nil, errors.New("job posting not found")
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		logger.Error("failed to update job posting", err)
		return nil, fmt.Errorf("failed to update job posting: %w", err)
	}

	updated, err := s.jobRepo.FindByID(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated job posting: %w", err)
	}

	return &updated, nil
}

func (s *jobPostingService) DeleteJobPosting(ctx context.Context, id uint64) error {
	if id == 0 {
		return errors.New("invalid job posting id")
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.jobRepo.FindByID(ctx, id); err != nil {
		logger.Error("job posting not found", err)
		return errors.New("job posting not found")
	}

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete job posting", err)
		return fmt.Errorf("failed to delete job posting: %w", err)
	}

	return nil
}
