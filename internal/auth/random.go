package auth

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// GenerateRandString returns a url-safe base64 string built from the given number of random bytes.
func GenerateRandString(bytes int) (string, error) {
	if bytes <= 0 {
		bytes = csrfTokenBytes
	}

	b := make([]byte, bytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

func newCSRFToken() (string, error) {
	return GenerateRandString(csrfTokenBytes)
}

func newSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(b), nil
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
