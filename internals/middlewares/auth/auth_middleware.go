// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mengemudiku_backend/internals/configs"
	authModel "mengemudiku_backend/internals/features/users/auth/model"
	helper "mengemudiku_backend/internals/helpers"
)

// Public paths skipped by auth (webhook etc.)
var skipPaths = map[string]struct{}{
	"/api/payments/notification": {},
}

func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Skip known public paths (webhook dsb.)
		if _, ok := skipPaths[c.Path()]; ok {
			return c.Next()
		}

		// 2) Take Authorization header or cookie
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing token")
		}
		helper.SetRawAccessToken(c, tokenString)

		// 3) Blacklist check (once per request)
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklist
			if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] DB error on blacklist check:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		// 4) Parse & verify JWT (claims validated manually below)
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 5) exp with small leeway
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 6) user_id + user still active
		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals("user_id", userID.String())

		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
		}

		// 7) Claims into Locals (role, user_name)
		storeBasicClaimsToLocals(c, claims)

		return c.Next()
	}
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	exp := time.Unix(int64(expFloat), 0)
	if time.Now().After(exp.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok || strings.TrimSpace(raw) == "" {
		// fallback: sub
		raw, ok = claims["sub"].(string)
		if !ok {
			return uuid.Nil, errors.New("user_id claim missing")
		}
	}
	return uuid.Parse(raw)
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var isActive bool
	err := db.Table("users").
		Select("is_active").
		Where("id = ? AND deleted_at IS NULL", userID).
		Take(&isActive).Error
	if err != nil {
		return err
	}
	if !isActive {
		return errors.New("user inactive")
	}
	return nil
}

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if role, ok := claims["role"].(string); ok {
		c.Locals("userRole", role)
	}
	if name, ok := claims["user_name"].(string); ok {
		c.Locals("userName", name)
	}
}
