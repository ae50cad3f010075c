package controllers

import (
	"github.com/NipunThakuria02/Student-Sphere/config"
	"github.com/NipunThakuria02/Student-Sphere/models"
	"github.com/NipunThakuria02/Student-Sphere/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReportsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewReportsController(db *gorm.DB, cfg *config.Config) *ReportsController {
	return &ReportsController{DB: db, Cfg: cfg}
}

// SubmitReportRequest defines the request body for filing a report
type SubmitReportRequest struct {
	PostID    *uint  `json:"postId,omitempty"`
	CommentID *uint  `json:"commentId,omitempty"`
	Reason    string `json:"reason" example:"off-topic"`
	Details   string `json:"details,omitempty"`
	Priority  string `json:"priority,omitempty" enums:"low,medium,high"`
}

// SubmitReport godoc
// @Summary Report a post or comment
// @Description Files a report against exactly one post or comment; status starts as pending
// @Tags reports
// @Accept json
// @Produce json
// @Param input body SubmitReportRequest true "Report data"
// @Success 201 {object} models.Report
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /reports [post]
func (rc *ReportsController) SubmitReport(c *fiber.Ctx) error {
	user, err := currentUser(c, rc.DB, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}
	if user.Status == models.UserStatusSuspended {
		return utils.Forbidden(c, "Suspended users cannot report content")
	}

	var input SubmitReportRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Reason == "" {
		return utils.BadRequest(c, "Reason is required")
	}
	if (input.PostID == nil) == (input.CommentID == nil) {
		return utils.BadRequest(c, "Exactly one of postId or commentId is required")
	}

	var targetType models.ReportTargetType
	var targetID uint
	if input.PostID != nil {
		var post models.Post
		if err := rc.DB.First(&post, *input.PostID).Error; err != nil {
			return utils.NotFound(c, "Post not found")
		}
		targetType, targetID = models.ReportTargetPost, post.ID
	} else {
		var comment models.Comment
		if err := rc.DB.First(&comment, *input.CommentID).Error; err != nil {
			return utils.NotFound(c, "Comment not found")
		}
		targetType, targetID = models.ReportTargetComment, comment.ID
	}

	priority := models.PriorityLow
	if input.Priority != "" {
		if !models.ValidReportPriority(input.Priority) {
			return utils.BadRequest(c, "Invalid priority")
		}
		priority = models.ReportPriority(input.Priority)
	}

	report := models.Report{
		TargetType: targetType,
		TargetID:   targetID,
		Reason:     input.Reason,
		Details:    input.Details,
		Status:     models.ReportStatusPending,
		Priority:   priority,
		UserID:     user.ID,
	}

	if err := rc.DB.Create(&report).Error; err != nil {
		return utils.InternalServerError(c, "Could not create report")
	}

	report.User = *user
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"report": report})
}
