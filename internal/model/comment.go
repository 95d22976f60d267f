package model

import "time"

// Comment represents a comment on a ticket. A non-nil ParentID makes it a
// reply to another comment on the same ticket.
type Comment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	TicketID   uint      `json:"ticket_id" gorm:"not null;index"`
	ParentID   *uint     `json:"parent_id" gorm:"index"`
	AuthorID   uint      `json:"author_id" gorm:"not null;index"`
	AuthorName string    `json:"author_name" gorm:"size:255"`
	Body       string    `json:"body" gorm:"type:text;not null"`
	Upvotes    int       `json:"upvotes" gorm:"default:0"`
	Downvotes  int       `json:"downvotes" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
