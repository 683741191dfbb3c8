package opportunity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"careerCompass/business/recommend"
	"careerCompass/domain"
	"careerCompass/pkg/logger"
)

// ErrNoSections is returned when every section of the mapping result fails
// validation; the per-section reasons are in the result's error list.
var ErrNoSections = errors.New("all opportunity sections failed validation")

const mapperInstructions = "You are an education and career opportunity mapper for students. " +
	"Given an aptitude profile, suggest matching colleges, scholarships and job openings. " +
	"Respect the preferred locations and academic level. Return only the requested JSON."

// Generator contract interface (AI gateway)
type Generator interface {
	GenerateStructured(ctx context.Context, instructions, prompt, schemaName string, schema map[string]any, out any) error
	Model() string
}

type Service struct {
	generator Generator
}

func NewService(generator Generator) *Service {
	return &Service{generator: generator}
}

// mappingResult mirrors the combined output schema of the single gateway call.
// Explanations is a fixed object rather than a free-form map: strict schema
// mode forbids objects with open additionalProperties.
type mappingResult struct {
	Colleges     []domain.RecommendedItem `json:"colleges"`
	Scholarships []domain.RecommendedItem `json:"scholarships"`
	Jobs         []domain.RecommendedItem `json:"jobs"`
	Explanations sectionExplanations      `json:"explanations"`
}

type sectionExplanations struct {
	Colleges     string `json:"colleges"`
	Scholarships string `json:"scholarships"`
	Jobs         string `json:"jobs"`
}

// Map combines the enriched profile into one request for colleges,
// scholarships and jobs. Sections that fail validation are dropped and
// reported in the result's error list; they do not fail the other sections.
func (s *Service) Map(ctx context.Context, profile domain.AptitudeProfile) (domain.OpportunityResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.OpportunityResult{}, fmt.Errorf("context error: %w", err)
	}

	var result mappingResult
	err := s.generator.GenerateStructured(ctx, mapperInstructions, mapperPrompt(profile), "opportunity_mapping", mappingSchema(), &result)
	if err != nil {
		return domain.OpportunityResult{}, err
	}

	out := domain.OpportunityResult{
		Meta: domain.OpportunityMeta{
			AcademicLevel: profile.AcademicLevel,
			GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
			Model:         s.generator.Model(),
		},
		Recommendations: make(map[string]domain.OpportunitySection, 3),
		Explanations:    make(map[string]string, 3),
		Errors:          []string{},
	}

	sections := []struct {
		name        string
		items       []domain.RecommendedItem
		explanation string
	}{
		{"colleges", result.Colleges, result.Explanations.Colleges},
		{"scholarships", result.Scholarships, result.Explanations.Scholarships},
		{"jobs", result.Jobs, result.Explanations.Jobs},
	}

	for _, sec := range sections {
		if err := recommend.ValidateItems(sec.items); err != nil {
			logger.Warn("Opportunity section rejected", "section", sec.name, "error", err)
			out.Errors = append(out.Errors, fmt.Sprintf("%s: %v", sec.name, err))
			continue
		}
		out.Recommendations[sec.name] = domain.OpportunitySection{Items: sec.items}
		if sec.explanation != "" {
			out.Explanations[sec.name] = sec.explanation
		}
	}

	if len(out.Recommendations) == 0 {
		return out, ErrNoSections
	}

	return out, nil
}

func mapperPrompt(p domain.AptitudeProfile) string {
	var b strings.Builder

	b.WriteString("Student profile:\n")
	fmt.Fprintf(&b, "- skills: logical %d, verbal %d, quantitative %d, creative %d, technical %d, interpersonal %d (each 0-100)\n",
		p.Skills.Logical, p.Skills.Verbal, p.Skills.Quantitative, p.Skills.Creative, p.Skills.Technical, p.Skills.Interpersonal)
	fmt.Fprintf(&b, "- academic level: %s\n", p.AcademicLevel)
	fmt.Fprintf(&b, "- percentile band: %.1f\n", p.Percentile)

	if len(p.Interests) > 0 {
		fmt.Fprintf(&b, "- interests: %s\n", strings.Join(p.Interests, ", "))
	}
	if len(p.PreferredLocations) > 0 {
		fmt.Fprintf(&b, "- preferred locations: %s\n", strings.Join(p.PreferredLocations, ", "))
	}
	if p.Geolocation != nil {
		fmt.Fprintf(&b, "- current location: %.4f, %.4f", p.Geolocation.Latitude, p.Geolocation.Longitude)
		if p.MaxDistanceKm > 0 {
			fmt.Fprintf(&b, " (max distance %.0f km)", p.MaxDistanceKm)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nSuggest up to 5 colleges, 5 scholarships and 5 job openings that fit. ")
	b.WriteString("For each give a title, a confidence score from 0 to 100, and a short justification. ")
	b.WriteString("Add a one-sentence explanation per section under explanations.")

	return b.String()
}

func mappingSchema() map[string]any {
	itemList := map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"required":             []string{"title", "confidence", "justification"},
			"properties": map[string]any{
				"title":         map[string]any{"type": "string"},
				"confidence":    map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				"justification": map[string]any{"type": "string"},
			},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"colleges", "scholarships", "jobs", "explanations"},
		"properties": map[string]any{
			"colleges":     itemList,
			"scholarships": itemList,
			"jobs":         itemList,
			"explanations": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"colleges", "scholarships", "jobs"},
				"properties": map[string]any{
					"colleges":     map[string]any{"type": "string"},
					"scholarships": map[string]any{"type": "string"},
					"jobs":         map[string]any{"type": "string"},
				},
			},
		},
	}
}
