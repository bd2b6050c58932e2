package model

import "time"

// Tamer is an account record owning a roster of creatures. Credentials are
// stored as a bcrypt hash, never in the clear.
type Tamer struct {
	ID           string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	LastLogin    time.Time
}
