package service

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"mengemudiku_backend/internals/configs"
	authRepo "mengemudiku_backend/internals/features/users/auth/repository"
	authModel "mengemudiku_backend/internals/features/users/auth/model"
	userModel "mengemudiku_backend/internals/features/users/user/model"
)

const (
	accessTTLDefault  = 15 * time.Minute
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

// signAccessToken builds the short-lived HS256 access JWT.
func signAccessToken(user *userModel.UserModel, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// newOpaqueToken returns a 64-hex-char random string for refresh/CSRF tokens.
func newOpaqueToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// issueTokens signs the pair, persists the refresh token hash and sets cookies.
func issueTokens(c *fiber.Ctx, db *gorm.DB, user *userModel.UserModel) error {
	now := nowUTC()

	accessToken, err := signAccessToken(user, now)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign access token")
	}

	refreshToken, err := newOpaqueToken()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate refresh token")
	}

	ua := c.Get("User-Agent")
	ip := c.IP()
	rt := authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: authRepo.HashRefreshToken(refreshToken),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: &ua,
		IP:        &ip,
	}
	if err := authRepo.CreateRefreshToken(db, &rt); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to persist refresh token")
	}

	csrfToken, err := newOpaqueToken()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate CSRF token")
	}

	setAuthCookies(c, accessToken, refreshToken, csrfToken, now)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Login successful",
		"access_token": accessToken,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken, csrfToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
	// readable by JS: double-submit CSRF
	c.Cookie(&fiber.Cookie{
		Name:     "csrf_token",
		Value:    csrfToken,
		HTTPOnly: false,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token", "csrf_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: name != "csrf_token",
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
		})
	}
}

// resolveBlacklistTTL: blacklist until the token's own exp, fallback to the
// default access TTL when the token cannot be decoded.
func resolveBlacklistTTL(tokenString string) time.Duration {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return accessTTLDefault
	}
	expFloat, ok := claims["exp"].(float64)
	if !ok {
		return accessTTLDefault
	}
	ttl := time.Until(time.Unix(int64(expFloat), 0))
	if ttl < time.Minute {
		ttl = time.Minute
	}
	return ttl
}
