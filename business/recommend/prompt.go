package recommend

import (
	"fmt"
	"strings"

	"careerCompass/domain"
)

const careerInstructions = "You are a career guidance counselor for students. " +
	"Given aptitude scores per category, suggest careers that fit the student's strengths. " +
	"Return only the requested JSON."

// generationResult mirrors the declared output schema.
type generationResult struct {
	Recommendations []domain.RecommendedItem `json:"recommendations"`
}

func careerPrompt(scores []domain.CategoryScore) string {
	var b strings.Builder
	b.WriteString("Aptitude profile (percentage correct per category):\n")
	for _, s := range scores {
		fmt.Fprintf(&b, "- %s: %d%% (%d of %d correct)\n", s.Category, s.Score, s.Correct, s.Total)
	}
	b.WriteString("\nSuggest 5 careers matching this profile. For each give a title, ")
	b.WriteString("a confidence score from 0 to 100, and a short justification.")
	return b.String()
}

// recommendationSchema is the strict output contract for every list-producing call.
func recommendationSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"recommendations"},
		"properties": map[string]any{
			"recommendations": map[string]any{
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
			},
		},
	}
}

const descriptionInstructions = "You are a career guidance counselor. " +
	"Write one concise paragraph describing the given career for a student audience: " +
	"what the work involves, typical entry paths, and growth prospects."

func descriptionPrompt(title, category string) string {
	return fmt.Sprintf("Career: %s\nAptitude category: %s", title, category)
}
