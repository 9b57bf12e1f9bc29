package service

import (
	"errors"
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mengemudiku_backend/internals/configs"
	"mengemudiku_backend/internals/constants"
	authRepo "mengemudiku_backend/internals/features/users/auth/repository"
	userModel "mengemudiku_backend/internals/features/users/user/model"
	helper "mengemudiku_backend/internals/helpers"
)

var validate = validator.New()

/* ==========================
   REGISTER
========================== */

type registerRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
}

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	newUser := userModel.UserModel{
		UserName: req.UserName,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		Phone:    req.Phone,
		Role:     constants.RoleStudent,
		IsActive: true,
	}
	if err := authRepo.CreateUser(db, &newUser); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.Error(c, fiber.StatusBadRequest, "Email already registered")
		}
		log.Printf("[ERROR] Register failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registration successful", fiber.Map{
		"id":        newUser.ID,
		"user_name": newUser.UserName,
		"email":     newUser.Email,
		"role":      newUser.Role,
	})
}

/* ==========================
   LOGIN (email + password)
========================== */

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := authRepo.FindUserByEmail(db, req.Email)
	if err != nil {
		// same response as wrong password: do not leak which emails exist
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !CheckPassword(user.Password, req.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Your account has been deactivated. Contact admin.")
	}

	return issueTokens(c, db, user)
}

/* ==========================
   LOGIN GOOGLE (identity merge)
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	user, err := resolveGoogleUser(db, googleID, email, name)
	if err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.Error(c, fiber.StatusBadRequest, "Email already registered")
		}
		log.Printf("[ERROR] Google login failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve Google account")
	}

	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Your account has been deactivated. Contact admin.")
	}

	return issueTokens(c, db, user)
}

// resolveGoogleUser maps a verified Google identity onto a single user row:
// the google_id match wins, then an email match gets the google_id attached
// (same primary key, same role), otherwise a fresh student account is created.
func resolveGoogleUser(db *gorm.DB, googleID, email, name string) (*userModel.UserModel, error) {
	// 1) by google_id
	user, err := authRepo.FindUserByGoogleID(db, googleID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 2) by email: merge into the local-password account instead of
	// creating a duplicate
	user, err = authRepo.FindUserByEmail(db, email)
	if err == nil {
		if user.GoogleID == nil {
			if err := db.Model(user).Update("google_id", googleID).Error; err != nil {
				return nil, err
			}
			user.GoogleID = &googleID
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 3) first time: create a fresh student account
	newUser := userModel.UserModel{
		UserName: name,
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: generateDummyPassword(),
		GoogleID: &googleID,
		Role:     constants.RoleStudent,
		IsActive: true,
	}
	if err := authRepo.CreateUser(db, &newUser); err != nil {
		return nil, err
	}
	return &newUser, nil
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// CSRF required when auth rides on cookies (no Bearer header)
	cookieAT := strings.TrimSpace(c.Cookies("access_token"))
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	usesCookieAuth := cookieAT != "" && !strings.HasPrefix(authHeader, "Bearer ")

	if usesCookieAuth {
		if err := helper.CheckCSRFCookieHeader(c); err != nil {
			return helper.Error(c, fiber.StatusForbidden, err.Error())
		}
	}

	accessToken := helper.GetRawAccessToken(c)
	if accessToken != "" {
		ttl := resolveBlacklistTTL(accessToken)
		if err := authRepo.BlacklistToken(db, accessToken, ttl); err != nil {
			log.Printf("[WARN] Failed to blacklist token: %v", err)
		}
	}

	if rt := helper.GetRefreshTokenFromCookie(c); rt != "" {
		_ = authRepo.RevokeRefreshToken(db, rt)
	}

	clearAuthCookies(c)

	return helper.Success(c, "Logout successful", nil)
}

/* ==========================
   REFRESH TOKEN
========================== */

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshToken := helper.GetRefreshTokenFromCookie(c)
	if refreshToken == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.BodyParser(&body); err == nil {
			refreshToken = strings.TrimSpace(body.RefreshToken)
		}
	}
	if refreshToken == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	rt, err := authRepo.FindActiveRefreshToken(db, refreshToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid or expired refresh token")
	}

	user, err := authRepo.FindUserByID(db, rt.UserID)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Your account has been deactivated. Contact admin.")
	}

	// rotate: old refresh token dies with this request
	if err := authRepo.RevokeRefreshToken(db, refreshToken); err != nil {
		log.Printf("[WARN] Failed to revoke refresh token: %v", err)
	}

	return issueTokens(c, db, user)
}

/* ==========================
   CHANGE PASSWORD
========================== */

type changePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	if userID == uuid.Nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	if !CheckPassword(user.Password, req.OldPassword) {
		return helper.Error(c, fiber.StatusUnauthorized, "Old password is incorrect")
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := db.Model(user).Update("password", hashed).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	// other sessions must log in again
	_ = authRepo.RevokeAllRefreshTokensForUser(db, user.ID)

	return helper.Success(c, "Password updated", nil)
}
