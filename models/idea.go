package models

import (
	"time"
)

// Idea statuses form a fixed enumeration; an idea always holds one of them.
const (
	StatusSubmitted = "Submitted"
	StatusInReview  = "In Review"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
)

// ValidStatus reports whether s belongs to the status enumeration.
func ValidStatus(s string) bool {
	switch s {
	case StatusSubmitted, StatusInReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Idea struct {
	IdeaID      int       `gorm:"primaryKey;column:idea_id" json:"id"`
	Title       string    `gorm:"column:title;size:255;not null" json:"title"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	Status      string    `gorm:"column:status;size:20;default:Submitted" json:"status"`
	UserID      int       `gorm:"column:user_id;not null" json:"user_id"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`

	// Relations
	Owner User `gorm:"foreignKey:UserID" json:"-"`
}

// Decided reports whether the idea has received a final decision. Once
// decided, title/description are immutable and the owner cannot delete it.
func (i *Idea) Decided() bool {
	return i.Status == StatusApproved || i.Status == StatusRejected
}

// TableName overrides
func (Idea) TableName() string {
	return "ideas"
}
