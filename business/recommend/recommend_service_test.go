package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"careerCompass/domain"
	"careerCompass/internal/repository/aigateway"
)

type fakeCareerRepo struct {
	careers    map[string]domain.Career
	nextID     uint64
	failCreate error
	raceOnce   bool
}

func newFakeCareerRepo() *fakeCareerRepo {
	return &fakeCareerRepo{careers: make(map[string]domain.Career), nextID: 1}
}

func (f *fakeCareerRepo) FindByTitle(_ context.Context, title string) (domain.Career, bool, error) {
	c, ok := f.careers[strings.ToLower(title)]
	return c, ok, nil
}

func (f *fakeCareerRepo) Create(_ context.Context, career *domain.Career) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	key := strings.ToLower(career.Title)
	if f.raceOnce {
		// simulate a concurrent insert winning the race
		f.raceOnce = false
		f.careers[key] = domain.Career{ID: f.nextID, Title: career.Title}
		f.nextID++
		return ErrDuplicateTitle
	}
	if _, ok := f.careers[key]; ok {
		return ErrDuplicateTitle
	}
	career.ID = f.nextID
	f.nextID++
	f.careers[key] = *career
	return nil
}

type fakeRecRepo struct {
	rows []domain.Recommendation
	fail error
}

func (f *fakeRecRepo) Create(_ context.Context, rec *domain.Recommendation) error {
	if f.fail != nil {
		return f.fail
	}
	rec.ID = uint64(len(f.rows) + 1)
	f.rows = append(f.rows, *rec)
	return nil
}

func (f *fakeRecRepo) FindByUser(_ context.Context, userID uint) ([]domain.Recommendation, error) {
	var out []domain.Recommendation
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeSessionRepo struct {
	session   domain.QuizSession
	completed bool
	score     float64
}

func (f *fakeSessionRepo) FindByID(_ context.Context, id string) (domain.QuizSession, error) {
	if f.session.ID != id {
		return domain.QuizSession{}, errors.New("quiz session not found")
	}
	return f.session, nil
}

func (f *fakeSessionRepo) Complete(_ context.Context, id string, overallScore float64) error {
	f.completed = true
	f.score = overallScore
	return nil
}

type fakeGenerator struct {
	structuredJSON string
	text           string
	err            error
}

func (f *fakeGenerator) GenerateStructured(_ context.Context, _, _, _ string, _ map[string]any, out any) error {
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.structuredJSON), out)
}

func (f *fakeGenerator) GenerateText(_ context.Context, _, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeGenerator) Model() string { return "test-model" }

const sessionID = "6b4a9c1e-0000-0000-0000-000000000001"

func newService(gen Generator) (*Service, *fakeCareerRepo, *fakeRecRepo, *fakeSessionRepo) {
	careers := newFakeCareerRepo()
	recs := &fakeRecRepo{}
	sessions := &fakeSessionRepo{session: domain.QuizSession{ID: sessionID, UserID: 7}}
	return NewService(careers, recs, sessions, gen), careers, recs, sessions
}

func technicalResponses(n int) []domain.QuizResponse {
	out := make([]domain.QuizResponse, n)
	for i := range out {
		out[i] = domain.QuizResponse{SessionID: sessionID, Category: "technical", IsCorrect: true}
	}
	return out
}

func TestGenerateForSession(t *testing.T) {
	gen := &fakeGenerator{structuredJSON: `{"recommendations":[
		{"title":"Software Engineer","confidence":92,"justification":"strong technical scores"},
		{"title":"Data Analyst","confidence":74,"justification":"good quantitative fit"}
	]}`}
	svc, _, recs, sessions := newService(gen)

	scores, persisted, err := svc.GenerateForSession(context.Background(), 7, sessionID, technicalResponses(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(scores) != 1 || scores[0].Category != "technical" || scores[0].Score != 100 {
		t.Errorf("expected single technical=100 score, got %+v", scores)
	}

	if len(persisted) != 2 {
		t.Fatalf("expected 2 persisted recommendations, got %d", len(persisted))
	}
	for _, p := range persisted {
		if p.ConfidenceScore < 0 || p.ConfidenceScore > 100 {
			t.Errorf("confidence out of range: %d", p.ConfidenceScore)
		}
	}
	if persisted[0].Band != "High" || persisted[1].Band != "Medium" {
		t.Errorf("unexpected bands: %s, %s", persisted[0].Band, persisted[1].Band)
	}

	if len(recs.rows) != 2 {
		t.Errorf("expected 2 stored rows, got %d", len(recs.rows))
	}
	if !sessions.completed || sessions.score != 100 {
		t.Errorf("session should be completed with overall 100, got %v/%v", sessions.completed, sessions.score)
	}
}

func TestGenerateForSessionRateLimited(t *testing.T) {
	gen := &fakeGenerator{err: aigateway.ErrRateLimited}
	svc, _, recs, sessions := newService(gen)

	_, _, err := svc.GenerateForSession(context.Background(), 7, sessionID, technicalResponses(5))
	if !errors.Is(err, aigateway.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}

	if len(recs.rows) != 0 {
		t.Errorf("no recommendation rows may be written on a rate-limited call, got %d", len(recs.rows))
	}
	if sessions.completed {
		t.Errorf("session must not be completed on failure")
	}
}

func TestGenerateForSessionRejectsOutOfRangeConfidence(t *testing.T) {
	for _, bad := range []int{150, -5} {
		gen := &fakeGenerator{structuredJSON: `{"recommendations":[
			{"title":"Pilot","confidence":` + strconv.Itoa(bad) + `,"justification":"x"}
		]}`}
		svc, _, recs, _ := newService(gen)

		_, _, err := svc.GenerateForSession(context.Background(), 7, sessionID, technicalResponses(3))
		if !errors.Is(err, ErrInvalidGeneration) {
			t.Fatalf("confidence %d: expected ErrInvalidGeneration, got %v", bad, err)
		}
		if len(recs.rows) != 0 {
			t.Errorf("confidence %d: rejected result must not be persisted", bad)
		}
	}
}

func TestGenerateForSessionEmptyInput(t *testing.T) {
	svc, _, _, _ := newService(&fakeGenerator{})

	_, _, err := svc.GenerateForSession(context.Background(), 7, sessionID, nil)
	if !errors.Is(err, ErrNoResponses) {
		t.Fatalf("expected ErrNoResponses, got %v", err)
	}
}

func TestResolveCareerDuplicateRace(t *testing.T) {
	gen := &fakeGenerator{structuredJSON: `{"recommendations":[
		{"title":"Teacher","confidence":80,"justification":"verbal strength"}
	]}`}
	svc, careers, recs, _ := newService(gen)
	careers.raceOnce = true

	_, persisted, err := svc.GenerateForSession(context.Background(), 7, sessionID, technicalResponses(2))
	if err != nil {
		t.Fatalf("duplicate insert must resolve to the existing row, got %v", err)
	}
	if len(persisted) != 1 || len(recs.rows) != 1 {
		t.Fatalf("expected exactly one recommendation, got %d", len(recs.rows))
	}
	if len(careers.careers) != 1 {
		t.Errorf("expected one canonical career entity, got %d", len(careers.careers))
	}
}

func TestDescribeCareerSanitization(t *testing.T) {
	gen := &fakeGenerator{text: "A fine career."}
	svc, _, _, _ := newService(gen)

	got, err := svc.DescribeCareer(context.Background(), "Software Engineer", "technical")
	if err != nil || got != "A fine career." {
		t.Fatalf("expected description, got %q err %v", got, err)
	}

	if _, err := svc.DescribeCareer(context.Background(), "<script>!!", "technical"); !errors.Is(err, ErrInvalidTitle) {
		t.Errorf("expected ErrInvalidTitle for stripped-to-empty title, got %v", err)
	}

	if _, err := svc.DescribeCareer(context.Background(), strings.Repeat("a", 201), "technical"); !errors.Is(err, ErrInvalidTitle) {
		t.Errorf("expected ErrInvalidTitle for overlong title, got %v", err)
	}

	if _, err := svc.DescribeCareer(context.Background(), "Nurse", ""); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory for empty category, got %v", err)
	}
}

func TestSanitizeTitle(t *testing.T) {
	cases := map[string]string{
		"Software Engineer":   "Software Engineer",
		"UX/UI Designer":      "UXUI Designer",
		"  Front-end dev  ":   "Front-end dev",
		"drop table; --users": "drop table --users",
	}
	for in, want := range cases {
		if got := SanitizeTitle(in); got != want {
			t.Errorf("SanitizeTitle(%q) = %q, want %q", in, got, want)
		}
	}
}
