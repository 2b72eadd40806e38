package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidSession = errors.New("invalid session token")

// HMACCodec signs session tokens with an HMAC-SHA256 signature keyed by
// the server secret. Tokens are self-contained: user ID, expiry, signature.
type HMACCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACCodec builds HMACCodec with the provided secret and options.
func NewHMACCodec(secret string, opts Options) *HMACCodec {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &HMACCodec{secret: []byte(secret), ttl: ttl}
}

// Issue generates a signed session token for the user.
func (c *HMACCodec) Issue(userID int64) (string, error) {
	expires := time.Now().Add(c.ttl).Unix()
	payload := fmt.Sprintf("%d:%d", userID, expires)
	token := fmt.Sprintf("%s:%s", payload, c.sign(payload))
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// Parse validates signature and expiry and returns the encoded user ID.
func (c *HMACCodec) Parse(token string) (int64, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, ErrInvalidSession
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		return 0, ErrInvalidSession
	}

	payload := strings.Join(parts[:2], ":")
	if !hmac.Equal([]byte(c.sign(payload)), []byte(parts[2])) {
		return 0, ErrInvalidSession
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, ErrInvalidSession
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, ErrInvalidSession
	}

	if time.Unix(expires, 0).Before(time.Now()) {
		return 0, ErrInvalidSession
	}

	return userID, nil
}

func (c *HMACCodec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
