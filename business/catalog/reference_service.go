package catalog

import (
	"context"
	"errors"
	"fmt"

	"careerCompass/domain"
	"careerCompass/pkg/logger"
)

// FAQRepository contract interface
type FAQRepository interface {
	Create(ctx context.Context, faq *domain.FAQ) error
	FindAll(ctx context.Context) ([]domain.FAQ, error)
	Update(ctx context.Context, faq *domain.FAQ) error
	Delete(ctx context.Context, id uint64) error
}

// NGORepository contract interface
type NGORepository interface {
	Create(ctx context.Context, ngo *domain.NGO) error
	FindAll(ctx context.Context) ([]domain.NGO, error)
	Update(ctx context.Context, ngo *domain.NGO) error
	Delete(ctx context.Context, id uint64) error
}

// referenceService covers the small reference tables (FAQs, NGOs) managed by
// the admin back-office.
type referenceService struct {
	faqRepo FAQRepository
	ngoRepo NGORepository
}

func NewReferenceService(faqRepo FAQRepository, ngoRepo NGORepository) *referenceService {
	return &referenceService{faqRepo: faqRepo, ngoRepo: ngoRepo}
}

func (s *referenceService) GetAllFAQs(ctx context.Context) ([]domain.FAQ, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	faqs, err := s.faqRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all FAQs", err)
		return nil, err
	}

	return faqs, nil
}

func (s *referenceService) CreateFAQ(ctx context.Context, faq *domain.FAQ) (*domain.FAQ, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if faq.Question == "" || faq.Answer == "" {
		return nil, errors.New("faq question and answer are required")
	}

	if err := s.faqRepo.Create(ctx, faq); err != nil {
		logger.Error("failed to create FAQ", err)
		return nil, fmt.Errorf("failed to create faq: %w", err)
	}

	return faq, nil
}

func (s *referenceService) UpdateFAQ(ctx context.Context, faq *domain.FAQ) (*domain.FAQ, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if faq.ID == 0 {
		return nil, errors.New("faq ID is required")
	}
	if faq.Question == "" || faq.Answer == "" {
		return nil, errors.New("faq question and answer are required")
	}

	if err := s.faqRepo.Update(ctx, faq); err != nil {
		logger.Error("failed to update FAQ", err)
		return nil, fmt.Errorf("failed to update faq: %w", err)
	}

	return faq, nil
}

func (s *referenceService) DeleteFAQ(ctx context.Context, id uint64) error {
	if id == 0 {
		return errors.New("invalid faq id")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.faqRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete FAQ", err)
		return fmt.Errorf("failed to delete faq: %w", err)
	}

	return nil
}

func (s *referenceService) GetAllNGOs(ctx context.Context) ([]domain.NGO, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	ngos, err := s.ngoRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all NGOs", err)
		return nil, err
	}

	return ngos, nil
}

func (s *referenceService) CreateNGO(ctx context.Context, ngo *domain.NGO) (*domain.NGO, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if ngo.Name == "" {
		return nil, errors.New("ngo name is required")
	}

	if err := s.ngoRepo.Create(ctx, ngo); err != nil {
		logger.Error("failed to create NGO", err)
		return nil, fmt.Errorf("failed to create ngo: %w", err)
	}

	return ngo, nil
}

func (s *referenceService) UpdateNGO(ctx context.Context, ngo *domain.NGO) (*domain.NGO, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if ngo.ID == 0 {
		return nil, errors.New("ngo ID is required")
	}
	if ngo.Name == "" {
		return nil, errors.New("ngo name is required")
	}

	if err := s.ngoRepo.Update(ctx, ngo); err != nil {
		logger.Error("failed to update NGO", err)
		return nil, fmt.Errorf("failed to update ngo: %w", err)
	}

	return ngo, nil
}

func (s *referenceService) DeleteNGO(ctx context.Context, id uint64) error {
	if id == 0 {
		return errors.New("invalid ngo id")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.ngoRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete NGO", err)
		return fmt.Errorf("failed to delete ngo: %w", err)
	}

	return nil
}
