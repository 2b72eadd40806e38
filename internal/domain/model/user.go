package model

import "time"

// User represents a registered zoo keeper account.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
