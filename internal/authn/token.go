package authn

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenBytes gives 256 bits of entropy per session token.
const tokenBytes = 32

// NewSessionTokenValue mints a cryptographically random, URL-safe token
// value.
func NewSessionTokenValue() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
