package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "mengemudiku_backend/internals/features/audit/audit_logs/service"
	"mengemudiku_backend/internals/features/courses/posts/dto"
	"mengemudiku_backend/internals/features/courses/posts/model"
	helper "mengemudiku_backend/internals/helpers"
)

var validate = validator.New()

type PostController struct {
	DB *gorm.DB
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{DB: db}
}

// 🟢 POST /api/a/posts
func (ctrl *PostController) CreatePost(c *fiber.Ctx) error {
	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	post := req.ToModel()
	if err := ctrl.DB.Create(post).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create post")
	}

	auditService.Record(ctrl.DB, c, "post.create", "posts", post.PostID.String(), req)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Post created", dto.ToPostResponse(post))
}

// 🟢 GET /api/u/topics/:topic_id/posts (students: published only)
func (ctrl *PostController) GetPublishedPostsByTopic(c *fiber.Ctx) error {
	topicID, err := uuid.Parse(c.Params("topic_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid topic id")
	}

	var posts []model.PostModel
	if err := ctrl.DB.
		Where("post_topic_id = ? AND post_is_published = true", topicID).
		Order("post_created_at ASC").
		Find(&posts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch posts")
	}

	return helper.Success(c, "Posts fetched", dto.ToPostResponses(posts))
}

// 🟢 GET /api/a/topics/:topic_id/posts (staff: all, incl. drafts)
func (ctrl *PostController) GetAllPostsByTopic(c *fiber.Ctx) error {
	topicID, err := uuid.Parse(c.Params("topic_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid topic id")
	}

	var posts []model.PostModel
	if err := ctrl.DB.
		Where("post_topic_id = ?", topicID).
		Order("post_created_at ASC").
		Find(&posts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch posts")
	}

	return helper.Success(c, "Posts fetched", dto.ToPostResponses(posts))
}

// 🟢 PUT /api/a/posts/:id
func (ctrl *PostController) UpdatePost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid post id")
	}

	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var post model.PostModel
	if err := ctrl.DB.First(&post, "post_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch post")
	}

	updates := map[string]interface{}{}
	if req.PostTitle != nil {
		updates["post_title"] = *req.PostTitle
	}
	if req.PostContent != nil {
		updates["post_content"] = *req.PostContent
	}
	if req.PostIsPublished != nil {
		updates["post_is_published"] = *req.PostIsPublished
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.Model(&post).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update post")
	}

	auditService.Record(ctrl.DB, c, "post.update", "posts", post.PostID.String(), updates)

	return helper.Success(c, "Post updated", dto.ToPostResponse(&post))
}

// 🟢 DELETE /api/a/posts/:id
func (ctrl *PostController) DeletePost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid post id")
	}

	res := ctrl.DB.Delete(&model.PostModel{}, "post_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete post")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Post not found")
	}

	auditService.Record(ctrl.DB, c, "post.delete", "posts", id.String(), nil)

	return helper.Success(c, "Post deleted", nil)
}
