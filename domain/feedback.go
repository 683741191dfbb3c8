package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	FeedbackLike          = "like"
	FeedbackDislike       = "dislike"
	FeedbackApplied       = "applied"
	FeedbackNotInterested = "not_interested"
	FeedbackNone          = "none"
)

// CREATE TABLE public.feedback_records (
//     id                   BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id              BIGINT NOT NULL,
//     recommendation_type  TEXT NOT NULL,
//     recommendation_id    BIGINT NOT NULL,
//     feedback_type        TEXT NOT NULL,
//     feedback_data        JSONB,
//     created_at           TIMESTAMPTZ DEFAULT NOW(),
//     updated_at           TIMESTAMPTZ DEFAULT NOW(),
//     UNIQUE (user_id, recommendation_type, recommendation_id)
// );

type FeedbackRecord struct {
	ID                 uint64            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID             uint              `gorm:"column:user_id;not null;uniqueIndex:idx_feedback_tuple" json:"user_id"`
	RecommendationType string            `gorm:"column:recommendation_type;type:text;not null;uniqueIndex:idx_feedback_tuple" json:"recommendation_type"`
	RecommendationID   uint64            `gorm:"column:recommendation_id;not null;uniqueIndex:idx_feedback_tuple" json:"recommendation_id"`
	FeedbackType       string            `gorm:"column:feedback_type;type:text;not null" json:"feedback_type"`
	FeedbackData       datatypes.JSONMap `gorm:"column:feedback_data;type:jsonb" json:"feedback_data"`
	CreatedAt          time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (FeedbackRecord) TableName() string {
	return "feedback_records"
}

// PerformanceAggregate is a materialized view maintained outside this service.
// The trainer only reads it.
type PerformanceAggregate struct {
	RecommendationType string  `gorm:"column:recommendation_type" json:"recommendation_type"`
	RecommendationID   uint64  `gorm:"column:recommendation_id" json:"recommendation_id"`
	EngagementScore    float64 `gorm:"column:engagement_score" json:"engagement_score"`
	ConversionRate     float64 `gorm:"column:conversion_rate" json:"conversion_rate"`
	Applications       int     `gorm:"column:applications" json:"applications"`
	Likes              int     `gorm:"column:likes" json:"likes"`
}

func (PerformanceAggregate) TableName() string {
	return "recommendation_performance"
}
