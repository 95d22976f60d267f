package model

import "time"

// ActivityLog is an append-only record of a user action. Entries are written
// by the services on every create, update and delete and never modified.
type ActivityLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	UserName  string    `json:"user_name" gorm:"size:255"`
	Module    string    `json:"module" gorm:"size:50;not null;index"`
	Action    string    `json:"action" gorm:"size:50;not null"`
	Detail    string    `json:"detail" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
