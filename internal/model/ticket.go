package model

import "time"

// Ticket status values.
const (
	TicketStatusOpen     = "open"
	TicketStatusPending  = "pending"
	TicketStatusResolved = "resolved"
	TicketStatusClosed   = "closed"
)

// Ticket priority values.
const (
	TicketPriorityLow    = "low"
	TicketPriorityMedium = "medium"
	TicketPriorityHigh   = "high"
)

// Ticket represents a customer support ticket.
type Ticket struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Reference  string    `json:"reference" gorm:"uniqueIndex;size:40;not null"`
	CustomerID *uint     `json:"customer_id" gorm:"index"`
	Subject    string    `json:"subject" gorm:"size:255;not null"`
	Body       string    `json:"body" gorm:"type:text"`
	Status     string    `json:"status" gorm:"size:20;default:'open';index"`
	Priority   string    `json:"priority" gorm:"size:20;default:'medium';index"`
	AssigneeID *uint     `json:"assignee_id" gorm:"index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:TicketID"`
}
