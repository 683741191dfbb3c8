package domain

const (
	LevelUG      = "UG"
	LevelPG      = "PG"
	LevelDiploma = "Diploma"
)

// SkillProfile holds the six aptitude dimensions, each 0-100.
type SkillProfile struct {
	Logical       int `json:"logical" validate:"min=0,max=100"`
	Verbal        int `json:"verbal" validate:"min=0,max=100"`
	Quantitative  int `json:"quantitative" validate:"min=0,max=100"`
	Creative      int `json:"creative" validate:"min=0,max=100"`
	Technical     int `json:"technical" validate:"min=0,max=100"`
	Interpersonal int `json:"interpersonal" validate:"min=0,max=100"`
}

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AptitudeProfile is the enriched input of the opportunity mapper.
type AptitudeProfile struct {
	Skills             SkillProfile `json:"skills"`
	Interests          []string     `json:"interests"`
	PreferredLocations []string     `json:"preferred_locations"`
	AcademicLevel      string       `json:"academic_level" validate:"required,oneof=UG PG Diploma"`
	Percentile         float64      `json:"percentile" validate:"min=0,max=100"`
	Geolocation        *GeoPoint    `json:"geolocation,omitempty"`
	MaxDistanceKm      float64      `json:"max_distance_km,omitempty"`
}

// OpportunitySection is one block of a combined mapping result.
type OpportunitySection struct {
	Items []RecommendedItem `json:"items"`
}

type OpportunityResult struct {
	Meta            OpportunityMeta               `json:"meta"`
	Recommendations map[string]OpportunitySection `json:"recommendations"`
	Explanations    map[string]string             `json:"explanations"`
	Errors          []string                      `json:"errors"`
}

type OpportunityMeta struct {
	AcademicLevel string `json:"academic_level"`
	GeneratedAt   string `json:"generated_at"`
	Model         string `json:"model"`
}
