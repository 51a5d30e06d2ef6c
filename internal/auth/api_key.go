package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/kethil/tempursarihubstore-sub000/internal/config"
)

// HashAPIKey creates a SHA-256 hash of the API key
func HashAPIKey(key string) string {
	hasher := sha256.New()
	hasher.Write([]byte(key))
	return hex.EncodeToString(hasher.Sum(nil))
}

// ValidateAPIKey validates an API key against the configuration
// Returns the user ID if valid, an empty string if invalid
func ValidateAPIKey(cfg *config.Configuration, key string) (string, bool) {
	hashedKey := HashAPIKey(key)
	if details, exists := cfg.Auth.APIKey.Keys[hashedKey]; exists {
		return details.UserID, true
	}
	return "", false
}
