package maintenance

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeScholarshipRepo struct {
	closed int64
	err    error
	cutoff time.Time
}

func (f *fakeScholarshipRepo) CloseExpired(_ context.Context, now time.Time) (int64, error) {
	f.cutoff = now
	return f.closed, f.err
}

type fakeJobRepo struct {
	deactivated int64
	err         error
	cutoff      time.Time
}

func (f *fakeJobRepo) DeactivateStale(_ context.Context, postedBefore time.Time) (int64, error) {
	f.cutoff = postedBefore
	return f.deactivated, f.err
}

type fakeCollegeRepo struct {
	count    int64
	countErr error
	touchErr error
}

func (f *fakeCollegeRepo) Count(context.Context) (int64, error)       { return f.count, f.countErr }
func (f *fakeCollegeRepo) TouchAll(context.Context, time.Time) error { return f.touchErr }

func TestRefresh(t *testing.T) {
	scholarships := &fakeScholarshipRepo{closed: 4}
	jobs := &fakeJobRepo{deactivated: 2}
	colleges := &fakeCollegeRepo{count: 37}

	svc := NewService(scholarships, jobs, colleges)
	fixed := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	results, err := svc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if results.ScholarshipsUpdated != 4 || results.JobsDeactivated != 2 || results.CollegesChecked != 37 {
		t.Errorf("unexpected results: %+v", results)
	}
	if len(results.Errors) != 0 {
		t.Errorf("expected no errors, got %v", results.Errors)
	}

	wantCutoff := fixed.Add(-60 * 24 * time.Hour)
	if !jobs.cutoff.Equal(wantCutoff) {
		t.Errorf("stale job cutoff: expected %v, got %v", wantCutoff, jobs.cutoff)
	}
}

func TestRefreshCollectsErrorsAndContinues(t *testing.T) {
	scholarships := &fakeScholarshipRepo{err: errors.New("db down")}
	jobs := &fakeJobRepo{deactivated: 3}
	colleges := &fakeCollegeRepo{count: 5}

	svc := NewService(scholarships, jobs, colleges)

	results, err := svc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh must not fail on a single step error: %v", err)
	}

	if len(results.Errors) != 1 {
		t.Fatalf("expected 1 recorded error, got %v", results.Errors)
	}
	if results.JobsDeactivated != 3 || results.CollegesChecked != 5 {
		t.Errorf("later steps must still run: %+v", results)
	}
}
