package trainer

import "careerCompass/domain"

// Fixed base weights of the heuristic re-weighting. These are design
// constants, not fitted parameters.
const (
	baseApplicationWeight = 0.4
	baseLikeWeight        = 0.2
	baseEngagementWeight  = 0.25
	baseConversionWeight  = 0.15

	// threshold bumps
	conversionRateThreshold  = 10.0
	bumpedConversionWeight   = 0.25
	bumpedApplicationWeight  = 0.35
	engagementScoreThreshold = 5.0
	bumpedEngagementWeight   = 0.3
	bumpedLikeWeight         = 0.25

	// adjustments outside this band are clamped, inside the epsilon skipped
	adjustmentClamp   = 20.0
	adjustmentEpsilon = 1.0

	applicationMultiplier = 5.0
	likeMultiplier        = 2.0
)

// interaction matrix score contributions, accumulated by summation
const (
	scoreApplied       = 10.0
	scoreLike          = 5.0
	scoreDislike       = -3.0
	scoreNotInterested = -1.0
)

type ModelWeights struct {
	ApplicationWeight float64 `json:"application_weight"`
	LikeWeight        float64 `json:"like_weight"`
	EngagementWeight  float64 `json:"engagement_weight"`
	ConversionWeight  float64 `json:"conversion_weight"`
}

// GlobalAverages holds the mean engagement and conversion over all
// performance rows.
type GlobalAverages struct {
	EngagementScore float64
	ConversionRate  float64
}

// Averages computes the global means. Zero rows yield zero averages.
func Averages(rows []domain.PerformanceAggregate) GlobalAverages {
	if len(rows) == 0 {
		return GlobalAverages{}
	}

	var eng, conv float64
	for _, r := range rows {
		eng += r.EngagementScore
		conv += r.ConversionRate
	}

	n := float64(len(rows))
	return GlobalAverages{
		EngagementScore: eng / n,
		ConversionRate:  conv / n,
	}
}

// SelectWeights starts from the fixed base weights and applies the two
// threshold bumps. A pure function of the averages: identical input always
// yields identical weights.
func SelectWeights(avg GlobalAverages) ModelWeights {
	w := ModelWeights{
		ApplicationWeight: baseApplicationWeight,
		LikeWeight:        baseLikeWeight,
		EngagementWeight:  baseEngagementWeight,
		ConversionWeight:  baseConversionWeight,
	}

	if avg.ConversionRate > conversionRateThreshold {
		w.ConversionWeight = bumpedConversionWeight
		w.ApplicationWeight = bumpedApplicationWeight
	}

	if avg.EngagementScore > engagementScoreThreshold {
		w.EngagementWeight = bumpedEngagementWeight
		w.LikeWeight = bumpedLikeWeight
	}

	return w
}

// Adjustment blends one performance row into a bounded confidence delta.
// The result is clamped to [-20, 20]; callers skip |adjustment| < 1 as noise.
func Adjustment(row domain.PerformanceAggregate, w ModelWeights) float64 {
	adj := row.EngagementScore*w.EngagementWeight +
		row.ConversionRate*w.ConversionWeight +
		float64(row.Applications)*w.ApplicationWeight*applicationMultiplier +
		float64(row.Likes)*w.LikeWeight*likeMultiplier

	if adj > adjustmentClamp {
		return adjustmentClamp
	}
	if adj < -adjustmentClamp {
		return -adjustmentClamp
	}

	return adj
}

// Negligible reports whether an adjustment should be treated as a no-op.
func Negligible(adjustment float64) bool {
	return adjustment > -adjustmentEpsilon && adjustment < adjustmentEpsilon
}

// feedbackScore maps a feedback label to its additive matrix contribution.
func feedbackScore(feedbackType string) float64 {
	switch feedbackType {
	case domain.FeedbackApplied:
		return scoreApplied
	case domain.FeedbackLike:
		return scoreLike
	case domain.FeedbackDislike:
		return scoreDislike
	case domain.FeedbackNotInterested:
		return scoreNotInterested
	default:
		return 0
	}
}
