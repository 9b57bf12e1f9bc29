package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mengemudiku_backend/internals/constants"
)

func appWithRole(role string, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("userRole", role)
		}
		return c.Next()
	})
	app.Get("/guarded", handler, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestOnlyRoles(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		allowed  []string
		wantCode int
	}{
		{"admin allowed", constants.RoleAdmin, []string{constants.RoleAdmin}, fiber.StatusOK},
		{"student blocked from admin", constants.RoleStudent, []string{constants.RoleAdmin}, fiber.StatusForbidden},
		{"instructor in staff group", constants.RoleInstructor, constants.StaffRoles, fiber.StatusOK},
		{"admin in staff group", constants.RoleAdmin, constants.StaffRoles, fiber.StatusOK},
		{"student blocked from staff group", constants.RoleStudent, constants.StaffRoles, fiber.StatusForbidden},
		{"missing role", "", []string{constants.RoleAdmin}, fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := appWithRole(tt.role, OnlyRoles("no access", tt.allowed...))
			resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
		})
	}
}
