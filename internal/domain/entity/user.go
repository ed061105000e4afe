package entity

import "time"

// User is a login identity. Both partners log in with their own account but
// share one OwnerID, so every record and report is scoped to the same
// administration. Which emails may hold an account is decided by the
// configured allow-list, not by this entity.
type User struct {
	ID           string
	OwnerID      string
	Email        string
	PasswordHash string // bcrypt hash, never the plain password
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
