package controllers

import (
	"github.com/NipunThakuria02/Student-Sphere/config"
	"github.com/NipunThakuria02/Student-Sphere/models"
	"github.com/NipunThakuria02/Student-Sphere/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type NotificationsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewNotificationsController(db *gorm.DB, cfg *config.Config) *NotificationsController {
	return &NotificationsController{DB: db, Cfg: cfg}
}

// GetNotifications godoc
// @Summary List notifications
// @Description Returns the caller's notifications, newest first, with the unread count
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notifications [get]
func (nc *NotificationsController) GetNotifications(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, nc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var notifications []models.Notification
	if err := nc.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch notifications")
	}

	var unreadCount int64
	nc.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&unreadCount)

	return c.JSON(fiber.Map{
		"notifications": notifications,
		"unreadCount":   unreadCount,
	})
}

// MarkReadRequest defines the request body for marking one notification read
type MarkReadRequest struct {
	NotificationID uint `json:"notificationId"`
}

// MarkRead godoc
// @Summary Mark a notification read
// @Description Sets read=true on one of the caller's notifications
// @Tags notifications
// @Accept json
// @Produce json
// @Param input body MarkReadRequest true "Notification ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notifications [patch]
func (nc *NotificationsController) MarkRead(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, nc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input MarkReadRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.NotificationID == 0 {
		return utils.BadRequest(c, "notificationId is required")
	}

	var notification models.Notification
	if err := nc.DB.First(&notification, input.NotificationID).Error; err != nil {
		return utils.NotFound(c, "Notification not found")
	}

	// Чужое уведомление пометить нельзя
	if notification.UserID != userID {
		return utils.Forbidden(c, "Notification belongs to another user")
	}

	if !notification.Read {
		notification.Read = true
		if err := nc.DB.Save(&notification).Error; err != nil {
			return utils.InternalServerError(c, "Could not update notification")
		}
	}

	return c.JSON(fiber.Map{"notification": notification})
}

// MarkAllRead godoc
// @Summary Mark all notifications read
// @Description Sets read=true for every notification owned by the caller
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notifications [post]
func (nc *NotificationsController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, nc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	result := nc.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	if result.Error != nil {
		return utils.InternalServerError(c, "Could not update notifications")
	}

	return c.JSON(fiber.Map{"updated": result.RowsAffected})
}
