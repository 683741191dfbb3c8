package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careerCompass/domain"

	"gorm.io/gorm"
)

type JobPostingRepository struct {
	DB *gorm.DB
}

func NewJobPostingRepository(db *gorm.DB) *JobPostingRepository {
	return &JobPostingRepository{
		DB: db,
	}
}

func (r *JobPostingRepository) Create(ctx context.Context, job *domain.JobPosting) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if job.PostedAt.IsZero() {
		job.PostedAt = time.Now()
	}

	if err := r.DB.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job posting: %w", err)
	}

	return nil
}

func (r *JobPostingRepository) FindByID(ctx context.Context, id uint64) (domain.JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return domain.JobPosting{}, fmt.Errorf("context error: %w", err)
	}

	var job domain.JobPosting
	err := r.DB.WithContext(ctx).First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.JobPosting{}, errors.New("job posting not found")
		}
		return domain.JobPosting{}, fmt.Errorf("failed to find job posting: %w", err)
	}

	return job, nil
}

func (r *JobPostingRepository) FindAll(ctx context.Context, activeOnly bool) ([]domain.JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	query := r.DB.WithContext(ctx).Order("posted_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var jobs []domain.JobPosting
	if err := query.Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to find job postings: %w", err)
	}

	return jobs, nil
}

func (r *JobPostingRepository) Update(ctx context.Context, job *domain.JobPosting) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.JobPosting{}).
		Where("id = ?", job.ID).
		Updates(map[string]interface{}{
			"title":       job.Title,
			"company":     job.Company,
			"location":    job.Location,
			"description": job.Description,
			"is_active":   job.IsActive,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update job posting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("job posting not found")
	}

	return nil
}

func (r *JobPostingRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.JobPosting{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete job posting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("job posting not found")
	}

	return nil
}

// DeactivateStale flips is_active off for postings older than the cutoff.
func (r *JobPostingRepository) DeactivateStale(ctx context.Context, postedBefore time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.JobPosting{}).
		Where("is_active = ? AND posted_at < ?", true, postedBefore).
		Update("is_active", false)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to deactivate stale job postings: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *JobPostingRepository) CountActive(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).Model(&domain.JobPosting{}).
		Where("is_active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count job postings: %w", err)
	}

	return count, nil
}
