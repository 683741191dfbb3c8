package domain

import "time"

const (
	TargetCareer      = "career"
	TargetCollege     = "college"
	TargetScholarship = "scholarship"
	TargetJob         = "job"
)

type Recommendation struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint      `gorm:"column:user_id;not null" json:"user_id"`
	SessionID       string    `gorm:"column:session_id;type:uuid" json:"session_id"`
	TargetType      string    `gorm:"column:target_type;type:text;not null" json:"target_type"`
	TargetID        uint64    `gorm:"column:target_id;not null" json:"target_id"`
	ConfidenceScore int       `gorm:"column:confidence_score;not null" json:"confidence_score"`
	Justification   string    `gorm:"column:justification;type:text" json:"justification"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}

// RecommendedItem is one entry of a validated AI generation result.
type RecommendedItem struct {
	Title         string `json:"title"`
	Confidence    int    `json:"confidence"`
	Justification string `json:"justification"`
}

// ConfidenceBand maps a confidence score to the coarse display label.
func ConfidenceBand(score int) string {
	switch {
	case score >= 75:
		return "High"
	case score >= 50:
		return "Medium"
	default:
		return "Low"
	}
}
