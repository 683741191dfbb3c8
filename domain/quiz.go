package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.quiz_questions (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     category        TEXT NOT NULL,
//     question_text   TEXT NOT NULL,
//     options         JSONB NOT NULL,
//     correct_option  TEXT NOT NULL,
//     is_active       BOOLEAN DEFAULT TRUE,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type QuizQuestion struct {
	ID            uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Category      string         `gorm:"column:category;type:text;not null" json:"category"`
	QuestionText  string         `gorm:"column:question_text;type:text;not null" json:"question_text"`
	Options       datatypes.JSON `gorm:"column:options;type:jsonb" json:"options"`
	CorrectOption string         `gorm:"column:correct_option;type:text;not null" json:"-"`
	IsActive      bool           `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt     time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

const (
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
)

type QuizSession struct {
	ID           string     `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	UserID       uint       `gorm:"column:user_id;not null" json:"user_id"`
	Status       string     `gorm:"column:status;default:in_progress" json:"status"`
	OverallScore float64    `gorm:"column:overall_score;type:numeric" json:"overall_score"`
	CompletedAt  *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (QuizSession) TableName() string {
	return "quiz_sessions"
}

type QuizResponse struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID      string    `gorm:"column:session_id;type:uuid;not null" json:"session_id"`
	QuestionID     uint64    `gorm:"column:question_id;not null" json:"question_id"`
	Category       string    `gorm:"column:category;type:text;not null" json:"category"`
	SelectedOption string    `gorm:"column:selected_option;type:text" json:"selected_option"`
	IsCorrect      bool      `gorm:"column:is_correct" json:"isCorrect"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (QuizResponse) TableName() string {
	return "quiz_responses"
}

// CategoryScore is derived from a session's responses, never persisted.
type CategoryScore struct {
	Category string `json:"category"`
	Correct  int    `json:"correct"`
	Total    int    `json:"total"`
	Score    int    `json:"score"`
}
