package model

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents a client of the business.
type Customer struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:255;not null;index"`
	Email     string         `json:"email" gorm:"size:255;index"`
	Phone     string         `json:"phone" gorm:"size:50"`
	Company   string         `json:"company" gorm:"size:255"`
	Address   string         `json:"address" gorm:"size:255"`
	City      string         `json:"city" gorm:"size:100"`
	Notes     string         `json:"notes" gorm:"type:text"`
	Active    bool           `json:"active" gorm:"default:true;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:CustomerID"`
}
