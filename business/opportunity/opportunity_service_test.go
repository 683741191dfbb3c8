package opportunity

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"careerCompass/domain"
	"careerCompass/internal/repository/aigateway"
)

type fakeGenerator struct {
	payload string
	err     error
}

func (f *fakeGenerator) GenerateStructured(_ context.Context, _, _, _ string, _ map[string]any, out any) error {
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.payload), out)
}

func (f *fakeGenerator) Model() string { return "test-model" }

func profile() domain.AptitudeProfile {
	return domain.AptitudeProfile{
		Skills:        domain.SkillProfile{Logical: 70, Technical: 85, Quantitative: 60},
		AcademicLevel: domain.LevelUG,
		Percentile:    88,
		Interests:     []string{"robotics"},
	}
}

const validPayload = `{
	"colleges": [{"title":"State Engineering College","confidence":81,"justification":"strong technical program"}],
	"scholarships": [{"title":"Merit Scholarship","confidence":70,"justification":"percentile qualifies"}],
	"jobs": [{"title":"Junior Technician","confidence":55,"justification":"entry level fit"}],
	"explanations": {"colleges":"matched on technical aptitude"}
}`

func TestMap(t *testing.T) {
	svc := NewService(&fakeGenerator{payload: validPayload})

	result, err := svc.Map(context.Background(), profile())
	if err != nil {
		t.Fatalf("map: %v", err)
	}

	if len(result.Recommendations) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(result.Recommendations))
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no section errors, got %v", result.Errors)
	}
	if result.Meta.AcademicLevel != domain.LevelUG || result.Meta.Model != "test-model" {
		t.Errorf("unexpected meta: %+v", result.Meta)
	}
	if got := result.Explanations["colleges"]; got != "matched on technical aptitude" {
		t.Errorf("expected colleges explanation to carry through, got %q", got)
	}
	if _, ok := result.Explanations["jobs"]; ok {
		t.Errorf("empty explanations must be omitted")
	}
}

func TestMapPartialSectionFailure(t *testing.T) {
	// jobs section carries an out-of-range confidence and must be dropped
	payload := `{
		"colleges": [{"title":"State Engineering College","confidence":81,"justification":"fit"}],
		"scholarships": [{"title":"Merit Scholarship","confidence":70,"justification":"fit"}],
		"jobs": [{"title":"Junior Technician","confidence":140,"justification":"fit"}],
		"explanations": {}
	}`
	svc := NewService(&fakeGenerator{payload: payload})

	result, err := svc.Map(context.Background(), profile())
	if err != nil {
		t.Fatalf("map: %v", err)
	}

	if len(result.Recommendations) != 2 {
		t.Errorf("expected 2 surviving sections, got %d", len(result.Recommendations))
	}
	if _, ok := result.Recommendations["jobs"]; ok {
		t.Errorf("invalid jobs section must be dropped")
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 section error, got %v", result.Errors)
	}
}

func TestMapGatewayFailure(t *testing.T) {
	svc := NewService(&fakeGenerator{err: aigateway.ErrQuotaExceeded})

	_, err := svc.Map(context.Background(), profile())
	if !errors.Is(err, aigateway.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
}

func TestMapAllSectionsInvalid(t *testing.T) {
	svc := NewService(&fakeGenerator{payload: `{"colleges":[],"scholarships":[],"jobs":[],"explanations":{}}`})

	result, err := svc.Map(context.Background(), profile())
	if !errors.Is(err, ErrNoSections) {
		t.Fatalf("expected ErrNoSections, got %v", err)
	}
	if len(result.Errors) != 3 {
		t.Errorf("expected 3 section errors, got %v", result.Errors)
	}
}

// Strict schema mode rejects any object whose additionalProperties is not
// literally false, so every object node of the mapping schema must carry it.
func TestMappingSchemaStrictCompatible(t *testing.T) {
	var checkNode func(path string, node map[string]any)
	checkNode = func(path string, node map[string]any) {
		if node["type"] == "object" {
			if v, ok := node["additionalProperties"].(bool); !ok || v {
				t.Errorf("%s: object node must set additionalProperties to false, got %v", path, node["additionalProperties"])
			}
			props, _ := node["properties"].(map[string]any)
			required, _ := node["required"].([]string)
			if len(required) != len(props) {
				t.Errorf("%s: strict mode requires every property to be required (%d required, %d properties)", path, len(required), len(props))
			}
			for name, p := range props {
				if child, ok := p.(map[string]any); ok {
					checkNode(path+"."+name, child)
				}
			}
		}
		if items, ok := node["items"].(map[string]any); ok {
			checkNode(path+"[]", items)
		}
	}

	checkNode("root", mappingSchema())
}
