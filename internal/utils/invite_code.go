package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateInviteCode returns a new organization join code in the form
// XXXX-XXXX-XXXX. Codes are random hex, unique-indexed on the organizations
// table, and the owner can rotate them at any time.
func GenerateInviteCode() (string, error) {
	raw := make([]byte, 6)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate invite code: %w", err)
	}

	code := hex.EncodeToString(raw)
	return code[0:4] + "-" + code[4:8] + "-" + code[8:12], nil
}
