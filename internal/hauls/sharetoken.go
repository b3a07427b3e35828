package hauls

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const shareTokenBytes = 32

// generateShareToken mints the capability token granting anonymous read
// access to one outfit. Treated as unguessable, never sequential.
func generateShareToken() (string, error) {
	bytes := make([]byte, shareTokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generating share token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
