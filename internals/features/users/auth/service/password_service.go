package service

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// generateDummyPassword fills the NOT NULL password column for Google-only
// accounts. Random, never communicated, cannot be logged in with.
func generateDummyPassword() string {
	buf := make([]byte, 24)
	_, _ = rand.Read(buf)
	hashed, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(buf)), bcrypt.MinCost)
	if err != nil {
		return hex.EncodeToString(buf)
	}
	return string(hashed)
}
