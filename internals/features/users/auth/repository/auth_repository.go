package repository

import (
	"crypto/sha256"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "mengemudiku_backend/internals/features/users/auth/model"
	userModel "mengemudiku_backend/internals/features/users/user/model"
)

// ========== users ==========

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := db.Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := db.Where("google_id = ?", googleID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

// ========== token blacklist ==========

func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	row := authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: time.Now().Add(ttl),
	}
	// idempotent: token column is unique
	err := db.Create(&row).Error
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "duplicate") {
		return nil
	}
	return err
}

// ========== refresh tokens ==========

func HashRefreshToken(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}

func CreateRefreshToken(db *gorm.DB, rt *authModel.RefreshToken) error {
	return db.Create(rt).Error
}

func FindActiveRefreshToken(db *gorm.DB, token string) (*authModel.RefreshToken, error) {
	var rt authModel.RefreshToken
	err := db.Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?",
		HashRefreshToken(token), time.Now()).
		First(&rt).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func RevokeRefreshToken(db *gorm.DB, token string) error {
	now := time.Now()
	return db.Model(&authModel.RefreshToken{}).
		Where("token_hash = ? AND revoked_at IS NULL", HashRefreshToken(token)).
		Update("revoked_at", &now).Error
}

func RevokeAllRefreshTokensForUser(db *gorm.DB, userID uuid.UUID) error {
	now := time.Now()
	return db.Model(&authModel.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", &now).Error
}
