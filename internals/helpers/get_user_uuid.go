package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserUUID reads the user id stored in Locals by the auth middleware.
// Returns uuid.Nil when missing/invalid; handlers behind the auth group can
// treat Nil as unauthorized.
func GetUserUUID(c *fiber.Ctx) uuid.UUID {
	idStr, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}
