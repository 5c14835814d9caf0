package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/a2sh3r/familyledger/internal/apperrors"
)

// CalculateHash returns the hex HMAC-SHA256 of data, or "" when no key is configured.
func CalculateHash(data, key string) string {
	if key == "" {
		return ""
	}
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyHash accepts anything when no key is configured.
func VerifyHash(data, key, hash string) error {
	if key == "" {
		return nil
	}
	expected := CalculateHash(data, key)
	if !hmac.Equal([]byte(expected), []byte(hash)) {
		return apperrors.ErrInvalidHash
	}
	return nil
}
