package auth

import "time"

// SessionCodec issues and verifies the session marker carried by the
// browser cookie.
type SessionCodec interface {
	Issue(userID int64) (string, error)
	Parse(token string) (int64, error)
}

// Options tune session token behaviour.
type Options struct {
	TTL time.Duration
}
