package models

import "time"

// Attachment is reserved: the table is migrated but no upload or download
// route exists yet.
type Attachment struct {
	AttachmentID int       `gorm:"primaryKey;column:attachment_id" json:"attachment_id"`
	IdeaID       int       `gorm:"column:idea_id;not null" json:"idea_id"`
	FileName     string    `gorm:"column:file_name;size:255;not null" json:"file_name"`
	FilePath     string    `gorm:"column:file_path;size:255;not null" json:"file_path"`
	UploadedAt   time.Time `gorm:"column:uploaded_at" json:"uploaded_at"`
}

// TableName specifies the table for Attachment.
func (Attachment) TableName() string {
	return "attachments"
}
