package aigateway

import (
	"errors"
	"net/http"
	"testing"

	"careerCompass/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestClassifyStatus(t *testing.T) {
	base := errors.New("provider said no")

	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"quota", http.StatusPaymentRequired, ErrQuotaExceeded},
		{"server error", http.StatusInternalServerError, ErrGenerationFailed},
		{"bad request", http.StatusBadRequest, ErrGenerationFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyStatus(tc.status, base)
			if !errors.Is(got, tc.want) {
				t.Errorf("status %d: expected %v, got %v", tc.status, tc.want, got)
			}
		})
	}
}

func TestClassifyNonAPIError(t *testing.T) {
	got := classify(errors.New("connection refused"))
	if !errors.Is(got, ErrGenerationFailed) {
		t.Errorf("expected ErrGenerationFailed, got %v", got)
	}
}

func TestClassifyCountsErrors(t *testing.T) {
	base := errors.New("provider said no")

	cases := []struct {
		status int
		kind   string
	}{
		{http.StatusTooManyRequests, "rate_limited"},
		{http.StatusPaymentRequired, "quota"},
		{http.StatusInternalServerError, "failed"},
	}

	for _, tc := range cases {
		counter := metrics.AIGatewayErrors.WithLabelValues(tc.kind)
		before := testutil.ToFloat64(counter)
		_ = classifyStatus(tc.status, base)
		if got := testutil.ToFloat64(counter); got != before+1 {
			t.Errorf("status %d: expected %s counter to grow by 1, got %v -> %v", tc.status, tc.kind, before, got)
		}
	}
}
