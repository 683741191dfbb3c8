package quiz

import (
	"context"
	"errors"
	"testing"

	"careerCompass/domain"
)

type fakeQuestionRepo struct {
	questions []domain.QuizQuestion
}

func (f *fakeQuestionRepo) FindActive(ctx context.Context) ([]domain.QuizQuestion, error) {
	return f.questions, nil
}

func (f *fakeQuestionRepo) FindByID(ctx context.Context, id uint64) (domain.QuizQuestion, error) {
	for _, q := range f.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return domain.QuizQuestion{}, errors.New("quiz question not found")
}

type fakeSessionRepo struct {
	sessions map[string]domain.QuizSession
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *domain.QuizSession) error {
	if f.sessions == nil {
		f.sessions = map[string]domain.QuizSession{}
	}
	f.sessions[session.ID] = *session
	return nil
}

func (f *fakeSessionRepo) FindByID(ctx context.Context, id string) (domain.QuizSession, error) {
	session, ok := f.sessions[id]
	if !ok {
		return domain.QuizSession{}, errors.New("quiz session not found")
	}
	return session, nil
}

type fakeResponseRepo struct {
	created []domain.QuizResponse
}

func (f *fakeResponseRepo) Create(ctx context.Context, response *domain.QuizResponse) error {
	f.created = append(f.created, *response)
	return nil
}

func (f *fakeResponseRepo) FindBySession(ctx context.Context, sessionID string) ([]domain.QuizResponse, error) {
	var out []domain.QuizResponse
	for _, r := range f.created {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestService(questions []domain.QuizQuestion, sessions map[string]domain.QuizSession) (*Service, *fakeResponseRepo) {
	responseRepo := &fakeResponseRepo{}
	svc := NewService(
		&fakeQuestionRepo{questions: questions},
		&fakeSessionRepo{sessions: sessions},
		responseRepo,
	)
	return svc, responseRepo
}

func TestStartSessionAssignsIDAndStatus(t *testing.T) {
	svc, _ := newTestService(nil, nil)

	session, err := svc.StartSession(context.Background(), 7)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if session.ID == "" {
		t.Error("expected a generated session id")
	}
	if session.UserID != 7 {
		t.Errorf("UserID = %d, want 7", session.UserID)
	}
	if session.Status != domain.SessionInProgress {
		t.Errorf("Status = %q, want %q", session.Status, domain.SessionInProgress)
	}
}

func TestRecordResponseGradesAnswer(t *testing.T) {
	questions := []domain.QuizQuestion{
		{ID: 1, Category: "logical", CorrectOption: "B"},
		{ID: 2, Category: "technical", CorrectOption: "A"},
	}
	sessions := map[string]domain.QuizSession{
		"s1": {ID: "s1", UserID: 3, Status: domain.SessionInProgress},
	}
	svc, responseRepo := newTestService(questions, sessions)

	correct, err := svc.RecordResponse(context.Background(), 3, "s1", 1, "B")
	if err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}
	if !correct.IsCorrect {
		t.Error("expected matching option to be graded correct")
	}
	if correct.Category != "logical" {
		t.Errorf("Category = %q, want logical", correct.Category)
	}

	wrong, err := svc.RecordResponse(context.Background(), 3, "s1", 2, "C")
	if err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}
	if wrong.IsCorrect {
		t.Error("expected mismatched option to be graded incorrect")
	}

	if len(responseRepo.created) != 2 {
		t.Errorf("stored %d responses, want 2", len(responseRepo.created))
	}
}

func TestRecordResponseRejectsCompletedSession(t *testing.T) {
	sessions := map[string]domain.QuizSession{
		"s1": {ID: "s1", UserID: 3, Status: domain.SessionCompleted},
	}
	svc, _ := newTestService([]domain.QuizQuestion{{ID: 1, CorrectOption: "A"}}, sessions)

	_, err := svc.RecordResponse(context.Background(), 3, "s1", 1, "A")
	if !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("err = %v, want ErrSessionCompleted", err)
	}
}

func TestRecordResponseRejectsForeignSession(t *testing.T) {
	sessions := map[string]domain.QuizSession{
		"s1": {ID: "s1", UserID: 3, Status: domain.SessionInProgress},
	}
	svc, _ := newTestService([]domain.QuizQuestion{{ID: 1, CorrectOption: "A"}}, sessions)

	_, err := svc.RecordResponse(context.Background(), 99, "s1", 1, "A")
	if !errors.Is(err, ErrSessionNotOwned) {
		t.Errorf("err = %v, want ErrSessionNotOwned", err)
	}
}

func TestQuestionsStableAcrossCalls(t *testing.T) {
	questions := []domain.QuizQuestion{
		{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5},
	}
	sessions := map[string]domain.QuizSession{
		"s1": {ID: "s1", UserID: 3, Status: domain.SessionInProgress},
	}
	svc, _ := newTestService(questions, sessions)

	first, err := svc.Questions(context.Background(), 3, "s1")
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	second, err := svc.Questions(context.Background(), 3, "s1")
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("order changed between calls at index %d: %d vs %d", i, first[i].ID, second[i].ID)
		}
	}
}
