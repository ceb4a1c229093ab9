package models

import "time"

// IdeaStatusHistory tracks historical status changes for ideas.
// One row per transition, written in the same transaction as the status
// update; rows are never mutated afterwards.
type IdeaStatusHistory struct {
	HistoryID int       `gorm:"primaryKey;column:history_id" json:"history_id"`
	IdeaID    int       `gorm:"column:idea_id;not null" json:"idea_id"`
	OldStatus string    `gorm:"column:old_status;size:20" json:"old_status"`
	NewStatus string    `gorm:"column:new_status;size:20" json:"new_status"`
	ChangedBy int       `gorm:"column:changed_by;not null" json:"changed_by"`
	ChangedAt time.Time `gorm:"column:changed_at;autoCreateTime" json:"changed_at"`
}

// TableName specifies the table for IdeaStatusHistory.
func (IdeaStatusHistory) TableName() string {
	return "idea_status_history"
}
