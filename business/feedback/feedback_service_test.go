package feedback

import (
	"context"
	"errors"
	"testing"

	"careerCompass/domain"
)

type tuple struct {
	userID  uint
	recType string
	recID   uint64
}

type fakeFeedbackRepo struct {
	rows    map[tuple]domain.FeedbackRecord
	nextID  uint64
	updates int
	creates int
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{rows: make(map[tuple]domain.FeedbackRecord), nextID: 1}
}

func (f *fakeFeedbackRepo) FindByTuple(_ context.Context, userID uint, recType string, recID uint64) (domain.FeedbackRecord, bool, error) {
	r, ok := f.rows[tuple{userID, recType, recID}]
	return r, ok, nil
}

func (f *fakeFeedbackRepo) Create(_ context.Context, record *domain.FeedbackRecord) error {
	record.ID = f.nextID
	f.nextID++
	f.creates++
	f.rows[tuple{record.UserID, record.RecommendationType, record.RecommendationID}] = *record
	return nil
}

func (f *fakeFeedbackRepo) Update(_ context.Context, record *domain.FeedbackRecord) error {
	f.updates++
	f.rows[tuple{record.UserID, record.RecommendationType, record.RecommendationID}] = *record
	return nil
}

func TestSubmitLastWriteWins(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.Submit(ctx, 3, domain.TargetCareer, 12, domain.FeedbackLike, nil); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if err := svc.Submit(ctx, 3, domain.TargetCareer, 12, domain.FeedbackApplied, map[string]interface{}{"source": "detail_page"}); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if len(repo.rows) != 1 {
		t.Fatalf("expected exactly one row per tuple, got %d", len(repo.rows))
	}
	if repo.creates != 1 || repo.updates != 1 {
		t.Errorf("expected 1 create + 1 update, got %d/%d", repo.creates, repo.updates)
	}

	got, err := svc.Get(ctx, 3, domain.TargetCareer, 12)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != domain.FeedbackApplied {
		t.Errorf("expected applied after overwrite, got %s", got)
	}
}

func TestSubmitRejectsUnknownType(t *testing.T) {
	svc := NewService(newFakeFeedbackRepo())

	err := svc.Submit(context.Background(), 3, domain.TargetCareer, 12, "meh", nil)
	if !errors.Is(err, ErrUnknownFeedbackType) {
		t.Fatalf("expected ErrUnknownFeedbackType, got %v", err)
	}
}

func TestGetNoneWhenAbsent(t *testing.T) {
	svc := NewService(newFakeFeedbackRepo())

	got, err := svc.Get(context.Background(), 9, domain.TargetScholarship, 44)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != domain.FeedbackNone {
		t.Errorf("expected none, got %s", got)
	}
}

func TestSubmitSeparateTuplesSeparateRows(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_ = svc.Submit(ctx, 3, domain.TargetCareer, 12, domain.FeedbackLike, nil)
	_ = svc.Submit(ctx, 3, domain.TargetCollege, 12, domain.FeedbackDislike, nil)
	_ = svc.Submit(ctx, 4, domain.TargetCareer, 12, domain.FeedbackNotInterested, nil)

	if len(repo.rows) != 3 {
		t.Errorf("expected 3 distinct rows, got %d", len(repo.rows))
	}
}
