package controllers

import (
	"strconv"

	"github.com/NipunThakuria02/Student-Sphere/config"
	"github.com/NipunThakuria02/Student-Sphere/models"
	"github.com/NipunThakuria02/Student-Sphere/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CommentsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCommentsController(db *gorm.DB, cfg *config.Config) *CommentsController {
	return &CommentsController{DB: db, Cfg: cfg}
}

// AddCommentRequest defines the request body for adding a comment
type AddCommentRequest struct {
	Content  string `json:"content" example:"Try integration by parts"`
	ParentID *uint  `json:"parentId,omitempty"`
}

// AddComment godoc
// @Summary Add comment to post
// @Description Adds a comment or a threaded reply to a post and notifies the post owner
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param input body AddCommentRequest true "Comment data"
// @Success 201 {object} models.Comment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /posts/{id}/comments [post]
func (cc *CommentsController) AddComment(c *fiber.Ctx) error {
	user, err := currentUser(c, cc.DB, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}
	if user.Status == models.UserStatusSuspended {
		return utils.Forbidden(c, "Suspended users cannot comment")
	}

	postID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid post ID")
	}

	var input AddCommentRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Content == "" {
		return utils.BadRequest(c, "Content is required")
	}

	var post models.Post
	if err := cc.DB.First(&post, postID).Error; err != nil {
		return utils.NotFound(c, "Post not found")
	}

	// Родительский комментарий должен принадлежать тому же посту
	if input.ParentID != nil {
		var parent models.Comment
		if err := cc.DB.First(&parent, *input.ParentID).Error; err != nil {
			return utils.NotFound(c, "Parent comment not found")
		}
		if parent.PostID != post.ID {
			return utils.BadRequest(c, "Parent comment belongs to another post")
		}
	}

	comment := models.Comment{
		Content:  input.Content,
		UserID:   user.ID,
		PostID:   post.ID,
		ParentID: input.ParentID,
	}

	if err := cc.DB.Create(&comment).Error; err != nil {
		return utils.InternalServerError(c, "Could not create comment")
	}

	// Уведомляем автора поста, на свои комментарии уведомление не нужно
	if post.UserID != user.ID {
		notification := models.Notification{
			Type:      models.NotificationNewComment,
			Title:     "New Comment",
			Message:   user.Name + " commented on your post.",
			PostTitle: post.Title,
			UserID:    post.UserID,
		}
		cc.DB.Create(&notification)
	}

	comment.User = *user
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
}

// GetComments godoc
// @Summary Get post comments
// @Description Returns all comments for a post, oldest first
// @Tags comments
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /posts/{id}/comments [get]
func (cc *CommentsController) GetComments(c *fiber.Ctx) error {
	postID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid post ID")
	}

	var post models.Post
	if err := cc.DB.First(&post, postID).Error; err != nil {
		return utils.NotFound(c, "Post not found")
	}

	var comments []models.Comment
	if err := cc.DB.Preload("User").
		Where("post_id = ?", post.ID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch comments")
	}
	for i := range comments {
		comments[i].VoteScore = commentVoteScore(cc.DB, comments[i].ID)
	}

	return c.JSON(fiber.Map{"comments": comments})
}
