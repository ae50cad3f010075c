package controllers_test

import (
	"testing"

	"github.com/NipunThakuria02/Student-Sphere/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func createNotification(t *testing.T, user models.User, title string) models.Notification {
	t.Helper()
	notification := models.Notification{
		Type:    models.NotificationPostDeleted,
		Title:   title,
		Message: "message",
		UserID:  user.ID,
	}
	if err := db.Create(&notification).Error; err != nil {
		t.Fatalf("create notification: %v", err)
	}
	return notification
}

func TestGetNotifications(t *testing.T) {
	user := createUser(t, "Trent", "trent.notif@example.com")
	createNotification(t, user, "first")
	createNotification(t, user, "second")

	resp := doRequest(t, "GET", "/api/notifications", tokenFor(t, user), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	notifications := result["notifications"].([]interface{})
	assert.Len(t, notifications, 2)
	assert.Equal(t, float64(2), result["unreadCount"])
}

func TestMarkRead(t *testing.T) {
	user := createUser(t, "Uma", "uma.notif@example.com")
	notification := createNotification(t, user, "to read")
	token := tokenFor(t, user)

	resp := doRequest(t, "PATCH", "/api/notifications", token,
		map[string]interface{}{"notificationId": notification.ID})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fromDB models.Notification
	db.First(&fromDB, notification.ID)
	assert.True(t, fromDB.Read)

	// Повторная пометка идемпотентна
	resp = doRequest(t, "PATCH", "/api/notifications", token,
		map[string]interface{}{"notificationId": notification.ID})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, "GET", "/api/notifications", token, nil)
	result := decodeBody(t, resp)
	assert.Equal(t, float64(0), result["unreadCount"])
}

func TestMarkReadForeignNotification(t *testing.T) {
	owner := createUser(t, "Victor", "victor.notif@example.com")
	other := createUser(t, "Wendy", "wendy.notif@example.com")
	notification := createNotification(t, owner, "private")

	resp := doRequest(t, "PATCH", "/api/notifications", tokenFor(t, other),
		map[string]interface{}{"notificationId": notification.ID})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Чужая попытка не меняет состояние
	var fromDB models.Notification
	db.First(&fromDB, notification.ID)
	assert.False(t, fromDB.Read)
}

func TestMarkAllRead(t *testing.T) {
	user := createUser(t, "Xavier", "xavier.notif@example.com")
	createNotification(t, user, "one")
	createNotification(t, user, "two")
	createNotification(t, user, "three")
	token := tokenFor(t, user)

	resp := doRequest(t, "POST", "/api/notifications", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decodeBody(t, resp)
	assert.Equal(t, float64(3), result["updated"])

	var unread int64
	db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", user.ID, false).
		Count(&unread)
	assert.Equal(t, int64(0), unread)
}
