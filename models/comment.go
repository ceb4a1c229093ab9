package models

import "time"

// Comment is append-only: never edited or deleted once created.
// Display order is ascending created_at.
type Comment struct {
	CommentID   int       `gorm:"primaryKey;column:comment_id" json:"id"`
	CommentText string    `gorm:"column:comment_text;type:text;not null" json:"comment_text"`
	IdeaID      int       `gorm:"column:idea_id;not null" json:"idea_id"`
	CommentedBy int       `gorm:"column:commented_by;not null" json:"commented_by"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName specifies the table for Comment.
func (Comment) TableName() string {
	return "comments"
}
