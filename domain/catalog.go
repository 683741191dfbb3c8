package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Career struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;type:text;not null;uniqueIndex:idx_careers_title" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Category    string    `gorm:"column:category;type:text" json:"category"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Career) TableName() string {
	return "careers"
}

type College struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"column:name;type:text;not null;uniqueIndex:idx_colleges_name" json:"name"`
	Location  string         `gorm:"column:location;type:text" json:"location"`
	Courses   datatypes.JSON `gorm:"column:courses;type:jsonb" json:"courses"`
	Website   string         `gorm:"column:website;type:text" json:"website"`
	IsActive  bool           `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (College) TableName() string {
	return "colleges"
}

type Scholarship struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"column:name;type:text;not null;uniqueIndex:idx_scholarships_name" json:"name"`
	Provider    string     `gorm:"column:provider;type:text" json:"provider"`
	Amount      float64    `gorm:"column:amount;type:numeric" json:"amount"`
	Eligibility string     `gorm:"column:eligibility;type:text" json:"eligibility"`
	Deadline    *time.Time `gorm:"column:deadline" json:"deadline,omitempty"`
	IsActive    bool       `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (Scholarship) TableName() string {
	return "scholarships"
}

type JobPosting struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;type:text;not null;uniqueIndex:idx_job_postings_title" json:"title"`
	Company     string    `gorm:"column:company;type:text" json:"company"`
	Location    string    `gorm:"column:location;type:text" json:"location"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	IsActive    bool      `gorm:"column:is_active;default:true" json:"is_active"`
	PostedAt    time.Time `gorm:"column:posted_at" json:"posted_at"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (JobPosting) TableName() string {
	return "job_postings"
}

type FAQ struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Question  string    `gorm:"column:question;type:text;not null" json:"question"`
	Answer    string    `gorm:"column:answer;type:text;not null" json:"answer"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (FAQ) TableName() string {
	return "faqs"
}

type NGO struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:text;not null" json:"name"`
	Focus       string    `gorm:"column:focus;type:text" json:"focus"`
	Location    string    `gorm:"column:location;type:text" json:"location"`
	ContactInfo string    `gorm:"column:contact_info;type:text" json:"contact_info"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (NGO) TableName() string {
	return "ngos"
}

type Favorite struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_favorites_item" json:"user_id"`
	ItemType  string    `gorm:"column:item_type;type:text;not null;uniqueIndex:idx_favorites_item" json:"item_type"`
	ItemID    uint64    `gorm:"column:item_id;not null;uniqueIndex:idx_favorites_item" json:"item_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
