package model

import "time"

// User represents a directory user of the system. The Role field holds the
// raw role code; it is normalized against the permission matrix on every
// authorization check.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null;index"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:50;not null;default:'agent'"`
	Department   string    `json:"department" gorm:"size:100"`
	Phone        string    `json:"phone" gorm:"size:50"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
