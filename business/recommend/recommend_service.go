package recommend

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"careerCompass/business/scoring"
	"careerCompass/domain"
	"careerCompass/pkg/logger"
)

var (
	ErrNoResponses       = errors.New("quiz responses are required")
	ErrNoScorableProfile = errors.New("no scorable categories in responses")
	// ErrInvalidGeneration rejects the whole AI result before anything is persisted.
	ErrInvalidGeneration = errors.New("generated recommendations failed validation")
	ErrInvalidTitle      = errors.New("career title must be 1-200 word, space or hyphen characters")
	ErrInvalidCategory   = errors.New("category must be 1-100 word, space or hyphen characters")
)

// ErrDuplicateTitle is the persistence layer's signal that a concurrent
// request already created the same career. Treated as "exists, re-fetch".
var ErrDuplicateTitle = errors.New("career title already exists")

// CareerRepository contract interface
type CareerRepository interface {
	FindByTitle(ctx context.Context, title string) (domain.Career, bool, error)
	Create(ctx context.Context, career *domain.Career) error
}

// RecommendationRepository contract interface
type RecommendationRepository interface {
	Create(ctx context.Context, rec *domain.Recommendation) error
	FindByUser(ctx context.Context, userID uint) ([]domain.Recommendation, error)
}

// SessionRepository contract interface
type SessionRepository interface {
	FindByID(ctx context.Context, id string) (domain.QuizSession, error)
	Complete(ctx context.Context, id string, overallScore float64) error
}

// Generator contract interface (AI gateway)
type Generator interface {
	GenerateStructured(ctx context.Context, instructions, prompt, schemaName string, schema map[string]any, out any) error
	GenerateText(ctx context.Context, instructions, prompt string) (string, error)
	Model() string
}

type PersistedRecommendation struct {
	domain.Recommendation
	Title string `json:"title"`
	Band  string `json:"band"`
}

type Service struct {
	careerRepo  CareerRepository
	recRepo     RecommendationRepository
	sessionRepo SessionRepository
	generator   Generator
}

func NewService(
	careerRepo CareerRepository,
	recRepo RecommendationRepository,
	sessionRepo SessionRepository,
	generator Generator,
) *Service {
	return &Service{
		careerRepo:  careerRepo,
		recRepo:     recRepo,
		sessionRepo: sessionRepo,
		generator:   generator,
	}
}

// GenerateForSession scores the responses, asks the gateway for career
// suggestions and persists the validated result. Persistence failures abort
// the remaining loop but already-written rows stay; no transaction wraps the
// per-item loop.
func (s *Service) GenerateForSession(ctx context.Context, userID uint, sessionID string, responses []domain.QuizResponse) ([]domain.CategoryScore, []PersistedRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("context error: %w", err)
	}

	if len(responses) == 0 {
		return nil, nil, ErrNoResponses
	}

	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		logger.Error("Quiz session not found", err)
		return nil, nil, err
	}
	if session.UserID != userID {
		return nil, nil, errors.New("quiz session does not belong to user")
	}

	tallies, err := scoring.Aggregate(responses)
	if err != nil {
		return nil, nil, err
	}

	scores := scoring.Percentages(tallies)
	if len(scores) == 0 {
		return nil, nil, ErrNoScorableProfile
	}

	items, err := s.requestCareers(ctx, scores)
	if err != nil {
		return nil, nil, err
	}

	persisted, err := s.persist(ctx, userID, sessionID, scores, items)
	if err != nil {
		return scores, persisted, err
	}

	if err := s.sessionRepo.Complete(ctx, sessionID, scoring.OverallScore(scores)); err != nil {
		logger.Error("Failed to mark session completed", err)
		return scores, persisted, err
	}

	return scores, persisted, nil
}

// requestCareers is the pure request/validate half: one gateway call, whole
// result rejected on any out-of-range confidence.
func (s *Service) requestCareers(ctx context.Context, scores []domain.CategoryScore) ([]domain.RecommendedItem, error) {
	var result generationResult
	err := s.generator.GenerateStructured(ctx, careerInstructions, careerPrompt(scores), "career_recommendations", recommendationSchema(), &result)
	if err != nil {
		return nil, err
	}

	if err := ValidateItems(result.Recommendations); err != nil {
		return nil, err
	}

	return result.Recommendations, nil
}

// ValidateItems enforces the generation contract: non-empty titles and
// integer confidence within [0,100]. One bad item rejects the whole list.
func ValidateItems(items []domain.RecommendedItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: empty recommendation list", ErrInvalidGeneration)
	}

	for _, item := range items {
		if strings.TrimSpace(item.Title) == "" {
			return fmt.Errorf("%w: empty title", ErrInvalidGeneration)
		}
		if item.Confidence < 0 || item.Confidence > 100 {
			return fmt.Errorf("%w: confidence %d out of range", ErrInvalidGeneration, item.Confidence)
		}
	}

	return nil
}

func (s *Service) persist(ctx context.Context, userID uint, sessionID string, scores []domain.CategoryScore, items []domain.RecommendedItem) ([]PersistedRecommendation, error) {
	strongest := scoring.StrongestCategory(scores)
	persisted := make([]PersistedRecommendation, 0, len(items))

	for _, item := range items {
		career, err := s.resolveCareer(ctx, item, strongest)
		if err != nil {
			logger.Error("Failed to resolve career entity", err)
			return persisted, err
		}

		rec := domain.Recommendation{
			UserID:          userID,
			SessionID:       sessionID,
			TargetType:      domain.TargetCareer,
			TargetID:        career.ID,
			ConfidenceScore: item.Confidence,
			Justification:   item.Justification,
		}

		if err := s.recRepo.Create(ctx, &rec); err != nil {
			logger.Error("Failed to store recommendation", err)
			return persisted, err
		}

		persisted = append(persisted, PersistedRecommendation{
			Recommendation: rec,
			Title:          career.Title,
			Band:           domain.ConfidenceBand(rec.ConfidenceScore),
		})
	}

	return persisted, nil
}

// resolveCareer looks the catalog up by case-insensitive title and creates a
// row lazily. A unique-title conflict from a concurrent insert means someone
// else won the race; re-fetch instead of failing.
func (s *Service) resolveCareer(ctx context.Context, item domain.RecommendedItem, strongest string) (domain.Career, error) {
	title := strings.TrimSpace(item.Title)

	career, found, err := s.careerRepo.FindByTitle(ctx, title)
	if err != nil {
		return domain.Career{}, err
	}
	if found {
		return career, nil
	}

	newCareer := domain.Career{
		Title:       title,
		Description: item.Justification,
		Category:    strongest,
	}

	err = s.careerRepo.Create(ctx, &newCareer)
	if err == nil {
		return newCareer, nil
	}
	if !errors.Is(err, ErrDuplicateTitle) {
		return domain.Career{}, err
	}

	career, found, err = s.careerRepo.FindByTitle(ctx, title)
	if err != nil {
		return domain.Career{}, err
	}
	if !found {
		return domain.Career{}, fmt.Errorf("career vanished after duplicate insert: %s", title)
	}

	return career, nil
}

// History lists a user's stored recommendations.
func (s *Service) History(ctx context.Context, userID uint) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.recRepo.FindByUser(ctx, userID)
}

var sanitizePattern = regexp.MustCompile(`[^\w \-]`)

// SanitizeTitle strips everything but word, space and hyphen characters.
func SanitizeTitle(raw string) string {
	return strings.TrimSpace(sanitizePattern.ReplaceAllString(raw, ""))
}

// DescribeCareer generates a one-paragraph description for a sanitized
// title/category pair.
func (s *Service) DescribeCareer(ctx context.Context, careerTitle, category string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}

	title := SanitizeTitle(careerTitle)
	if len(title) == 0 || len(title) > 200 {
		return "", ErrInvalidTitle
	}

	cat := SanitizeTitle(category)
	if len(cat) == 0 || len(cat) > 100 {
		return "", ErrInvalidCategory
	}

	description, err := s.generator.GenerateText(ctx, descriptionInstructions, descriptionPrompt(title, cat))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(description), nil
}
