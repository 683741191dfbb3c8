package maintenance

import (
	"context"
	"fmt"
	"time"

	"careerCompass/pkg/logger"
)

// job postings older than this are considered stale
const staleJobAge = 60 * 24 * time.Hour

// ScholarshipRepository contract interface
type ScholarshipRepository interface {
	CloseExpired(ctx context.Context, now time.Time) (int64, error)
}

// JobRepository contract interface
type JobRepository interface {
	DeactivateStale(ctx context.Context, postedBefore time.Time) (int64, error)
}

// CollegeRepository contract interface
type CollegeRepository interface {
	Count(ctx context.Context) (int64, error)
	TouchAll(ctx context.Context, now time.Time) error
}

type Service struct {
	scholarshipRepo ScholarshipRepository
	jobRepo         JobRepository
	collegeRepo     CollegeRepository
	now             func() time.Time
}

func NewService(scholarshipRepo ScholarshipRepository, jobRepo JobRepository, collegeRepo CollegeRepository) *Service {
	return &Service{
		scholarshipRepo: scholarshipRepo,
		jobRepo:         jobRepo,
		collegeRepo:     collegeRepo,
		now:             time.Now,
	}
}

type RefreshResults struct {
	ScholarshipsUpdated int64    `json:"scholarships_updated"`
	JobsDeactivated     int64    `json:"jobs_deactivated"`
	CollegesChecked     int64    `json:"colleges_checked"`
	Errors              []string `json:"errors"`
}

// Refresh runs the scheduled maintenance pass. Each step is independent;
// a failing step is recorded and the rest still run.
func (s *Service) Refresh(ctx context.Context) (RefreshResults, error) {
	if err := ctx.Err(); err != nil {
		return RefreshResults{}, fmt.Errorf("context error: %w", err)
	}

	now := s.now()
	results := RefreshResults{Errors: []string{}}

	updated, err := s.scholarshipRepo.CloseExpired(ctx, now)
	if err != nil {
		logger.Error("Failed to close expired scholarships", err)
		results.Errors = append(results.Errors, fmt.Sprintf("scholarships: %v", err))
	} else {
		results.ScholarshipsUpdated = updated
	}

	deactivated, err := s.jobRepo.DeactivateStale(ctx, now.Add(-staleJobAge))
	if err != nil {
		logger.Error("Failed to deactivate stale job postings", err)
		results.Errors = append(results.Errors, fmt.Sprintf("jobs: %v", err))
	} else {
		results.JobsDeactivated = deactivated
	}

	checked, err := s.collegeRepo.Count(ctx)
	if err != nil {
		logger.Error("Failed to count colleges", err)
		results.Errors = append(results.Errors, fmt.Sprintf("colleges: %v", err))
	} else {
		results.CollegesChecked = checked
		if err := s.collegeRepo.TouchAll(ctx, now); err != nil {
			logger.Error("Failed to refresh college timestamps", err)
			results.Errors = append(results.Errors, fmt.Sprintf("colleges: %v", err))
		}
	}

	logger.Info("Data refresh finished",
		"scholarships_updated", results.ScholarshipsUpdated,
		"jobs_deactivated", results.JobsDeactivated,
		"colleges_checked", results.CollegesChecked,
		"errors", len(results.Errors),
	)

	return results, nil
}
