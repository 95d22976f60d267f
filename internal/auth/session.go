package auth

import "time"

// Session is the record of the currently authenticated user. It mirrors the
// directory user minus credentials and is what gets persisted to the session
// store and attached to requests.
type Session struct {
	UserID     uint      `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"` // raw role code, normalized on every permission check
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
