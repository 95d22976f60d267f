package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order status values.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order represents a customer order for a catalog service.
type Order struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Reference  string          `json:"reference" gorm:"uniqueIndex;size:40;not null"`
	CustomerID uint            `json:"customer_id" gorm:"not null;index"`
	ServiceID  *uint           `json:"service_id" gorm:"index"`
	Quantity   int             `json:"quantity" gorm:"default:1"`
	Total      decimal.Decimal `json:"total" gorm:"type:decimal(12,2);not null"`
	Status     string          `json:"status" gorm:"size:20;default:'pending';index"`
	Notes      string          `json:"notes" gorm:"type:text"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `json:"-" gorm:"index"`
}
