package controllers

import (
	"errors"
	"strconv"

	"github.com/NipunThakuria02/Student-Sphere/config"
	"github.com/NipunThakuria02/Student-Sphere/models"
	"github.com/NipunThakuria02/Student-Sphere/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminController exposes the moderation operations. Every route it serves is
// behind middleware.AdminMiddleware, so a handler never runs for a caller that
// is not on the admin allow-list.
type AdminController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAdminController(db *gorm.DB, cfg *config.Config) *AdminController {
	return &AdminController{DB: db, Cfg: cfg}
}

const postDeletedMessage = "Your post has been deleted due to violating the privacy policy of the system."

// GetStats godoc
// @Summary Dashboard stats
// @Description Returns user/post/comment totals and the pending report count
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/stats [get]
func (ac *AdminController) GetStats(c *fiber.Ctx) error {
	var totalUsers, totalPosts, totalComments, pendingReports int64

	// Счетчики читаются в одной транзакции, чтобы цифры относились
	// к одному моменту времени
	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Post{}).Count(&totalPosts).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Comment{}).Count(&totalComments).Error; err != nil {
			return err
		}
		return tx.Model(&models.Report{}).
			Where("status = ?", models.ReportStatusPending).
			Count(&pendingReports).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch stats")
	}

	return c.JSON(fiber.Map{
		"totalUsers":     totalUsers,
		"totalPosts":     totalPosts,
		"totalComments":  totalComments,
		"pendingReports": pendingReports,
	})
}

// GetPosts godoc
// @Summary List all posts (admin view)
// @Description Returns every post with owner info, vote score and comment count
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/posts [get]
func (ac *AdminController) GetPosts(c *fiber.Ctx) error {
	var posts []models.Post
	if err := ac.DB.Preload("User").
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch posts")
	}

	for i := range posts {
		posts[i].VoteScore = postVoteScore(ac.DB, posts[i].ID)
		ac.DB.Model(&models.Comment{}).
			Where("post_id = ?", posts[i].ID).
			Count(&posts[i].CommentCount)
	}

	return c.JSON(fiber.Map{"posts": posts})
}

// DeletePost godoc
// @Summary Delete a post
// @Description Notifies the post owner, then deletes the post with its comments, votes and reports
// @Tags admin
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/posts/{id} [delete]
func (ac *AdminController) DeletePost(c *fiber.Ctx) error {
	postID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid post ID")
	}

	txErr := ac.DB.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			return err
		}

		// Уведомление создается до удаления: после каскада заголовок
		// поста прочитать уже негде
		notification := models.Notification{
			Type:      models.NotificationPostDeleted,
			Title:     "Post Deleted",
			Message:   postDeletedMessage,
			PostTitle: post.Title,
			UserID:    post.UserID,
		}
		if err := tx.Create(&notification).Error; err != nil {
			return err
		}

		return deletePostCascade(tx, post.ID)
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Post not found")
		}
		return utils.InternalServerError(c, "Failed to delete post")
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}

// deletePostCascade удаляет пост и все, что на него ссылается,
// внутри переданной транзакции
func deletePostCascade(tx *gorm.DB, postID uint) error {
	var commentIDs []uint
	if err := tx.Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Pluck("id", &commentIDs).Error; err != nil {
		return err
	}

	if len(commentIDs) > 0 {
		if err := tx.Where("comment_id IN ?", commentIDs).
			Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("target_type = ? AND target_id IN ?",
			models.ReportTargetComment, commentIDs).
			Delete(&models.Report{}).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("post_id = ?", postID).Delete(&models.Vote{}).Error; err != nil {
		return err
	}
	if err := tx.Where("target_type = ? AND target_id = ?",
		models.ReportTargetPost, postID).
		Delete(&models.Report{}).Error; err != nil {
		return err
	}
	if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Post{}, postID).Error
}

// GetUsers godoc
// @Summary List users
// @Description Returns all users with their post and report counts
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/users [get]
func (ac *AdminController) GetUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := ac.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch users")
	}

	result := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		var postCount, reportCount int64
		ac.DB.Model(&models.Post{}).Where("user_id = ?", user.ID).Count(&postCount)
		ac.DB.Model(&models.Report{}).Where("user_id = ?", user.ID).Count(&reportCount)

		result = append(result, fiber.Map{
			"id":          user.ID,
			"name":        user.Name,
			"email":       user.Email,
			"status":      user.Status,
			"createdAt":   user.CreatedAt,
			"postCount":   postCount,
			"reportCount": reportCount,
		})
	}

	return c.JSON(fiber.Map{"users": result})
}

// UpdateUserStatusRequest defines the request body for a status change
type UpdateUserStatusRequest struct {
	Status string `json:"status" enums:"active,warned,suspended"`
}

// UpdateUserStatus godoc
// @Summary Change a user's status
// @Description Sets the user's status to active, warned or suspended; existing content is untouched
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body UpdateUserStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/users/{id} [patch]
func (ac *AdminController) UpdateUserStatus(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	var input UpdateUserStatusRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// Валидация до любых обращений к базе
	if !models.ValidUserStatus(input.Status) {
		return utils.BadRequest(c, "Invalid status")
	}

	var user models.User
	if err := ac.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	if err := ac.DB.Model(&user).
		Update("status", models.UserStatus(input.Status)).Error; err != nil {
		return utils.InternalServerError(c, "Failed to update user")
	}

	return c.JSON(fiber.Map{"user": user})
}

// GetReports godoc
// @Summary List reports
// @Description Returns all reports with reporter and target content info
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/reports [get]
func (ac *AdminController) GetReports(c *fiber.Ctx) error {
	var reports []models.Report
	if err := ac.DB.Preload("User").
		Order("created_at DESC").
		Find(&reports).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch reports")
	}

	result := make([]fiber.Map, 0, len(reports))
	for _, report := range reports {
		entry := fiber.Map{
			"id":         report.ID,
			"targetType": report.TargetType,
			"targetId":   report.TargetID,
			"reason":     report.Reason,
			"details":    report.Details,
			"status":     report.Status,
			"priority":   report.Priority,
			"createdAt":  report.CreatedAt,
			"user": fiber.Map{
				"id":    report.User.ID,
				"name":  report.User.Name,
				"email": report.User.Email,
			},
		}

		// Цель могла быть удалена каскадом, тогда поля цели пустые
		switch report.TargetType {
		case models.ReportTargetPost:
			var post models.Post
			if err := ac.DB.First(&post, report.TargetID).Error; err == nil {
				entry["post"] = fiber.Map{"id": post.ID, "title": post.Title}
			}
		case models.ReportTargetComment:
			var comment models.Comment
			if err := ac.DB.First(&comment, report.TargetID).Error; err == nil {
				entry["comment"] = fiber.Map{"id": comment.ID, "content": comment.Content}
			}
		}

		result = append(result, entry)
	}

	return c.JSON(fiber.Map{"reports": result})
}

// UpdateReportStatusRequest defines the request body for resolving a report
type UpdateReportStatusRequest struct {
	Status string `json:"status" enums:"pending,reviewed,resolved"`
}

// UpdateReportStatus godoc
// @Summary Change a report's status
// @Description Moves a report through pending/reviewed/resolved
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param input body UpdateReportStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/reports/{id} [patch]
func (ac *AdminController) UpdateReportStatus(c *fiber.Ctx) error {
	reportID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid report ID")
	}

	var input UpdateReportStatusRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if !models.ValidReportStatus(input.Status) {
		return utils.BadRequest(c, "Invalid status")
	}

	var report models.Report
	if err := ac.DB.First(&report, reportID).Error; err != nil {
		return utils.NotFound(c, "Report not found")
	}

	if err := ac.DB.Model(&report).
		Update("status", models.ReportStatus(input.Status)).Error; err != nil {
		return utils.InternalServerError(c, "Failed to update report")
	}

	return c.JSON(fiber.Map{"report": report})
}
