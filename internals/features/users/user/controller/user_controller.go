package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "mengemudiku_backend/internals/features/audit/audit_logs/service"
	"mengemudiku_backend/internals/features/users/user/dto"
	"mengemudiku_backend/internals/features/users/user/model"
	helper "mengemudiku_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// 🟢 GET /api/a/users?search=&role=&page=&per_page=
func (ctrl *UserController) GetAllUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.UserModel{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("user_name ILIKE ? OR email ILIKE ?", like, like)
	}
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return helper.SuccessWithPagination(c, "Users fetched",
		dto.ToUserResponses(users), helper.BuildPagination(paging, total, len(users)))
}

// 🟢 GET /api/a/users/:id
func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	return helper.Success(c, "User fetched", dto.ToUserResponse(&user))
}

// 🟢 PUT /api/a/users/:id
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	updates := map[string]interface{}{}
	if req.UserName != nil {
		updates["user_name"] = *req.UserName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Failed to update user %s: %v", id, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	auditService.Record(ctrl.DB, c, "user.update", "users", user.ID.String(), updates)

	return helper.Success(c, "User updated", dto.ToUserResponse(&user))
}

// 🟢 DELETE /api/a/users/:id (soft delete)
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	res := ctrl.DB.Delete(&model.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}

	auditService.Record(ctrl.DB, c, "user.delete", "users", id.String(), nil)

	return helper.Success(c, "User deleted", nil)
}
