package controllers_test

import (
	"testing"

	"github.com/NipunThakuria02/Student-Sphere/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestSubmitReportDefaults(t *testing.T) {
	owner := createUser(t, "Kara", "kara.reports@example.com")
	reporter := createUser(t, "Liam", "liam.reports@example.com")
	post := createPost(t, owner, "Reportable post")

	resp := doRequest(t, "POST", "/api/reports", tokenFor(t, reporter),
		map[string]interface{}{"postId": post.ID, "reason": "off-topic"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var report models.Report
	db.Where("user_id = ?", reporter.ID).First(&report)
	assert.Equal(t, models.ReportStatusPending, report.Status)
	assert.Equal(t, models.PriorityLow, report.Priority)
	assert.Equal(t, models.ReportTargetPost, report.TargetType)
	assert.Equal(t, post.ID, report.TargetID)
}

func TestSubmitReportValidation(t *testing.T) {
	owner := createUser(t, "Mia", "mia.reports@example.com")
	reporter := createUser(t, "Noah", "noah.reports@example.com")
	post := createPost(t, owner, "Validation target")
	comment := models.Comment{Content: "c", UserID: owner.ID, PostID: post.ID}
	assert.NoError(t, db.Create(&comment).Error)
	token := tokenFor(t, reporter)

	// Причина обязательна
	resp := doRequest(t, "POST", "/api/reports", token,
		map[string]interface{}{"postId": post.ID})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Ровно одна цель: ни одной
	resp = doRequest(t, "POST", "/api/reports", token,
		map[string]interface{}{"reason": "spam"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Ровно одна цель: обе сразу
	resp = doRequest(t, "POST", "/api/reports", token,
		map[string]interface{}{"postId": post.ID, "commentId": comment.ID, "reason": "spam"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Цель должна существовать
	resp = doRequest(t, "POST", "/api/reports", token,
		map[string]interface{}{"postId": 999999, "reason": "spam"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Неизвестный приоритет
	resp = doRequest(t, "POST", "/api/reports", token,
		map[string]interface{}{"postId": post.ID, "reason": "spam", "priority": "urgent"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmitReportOnComment(t *testing.T) {
	owner := createUser(t, "Olga", "olga.reports@example.com")
	reporter := createUser(t, "Pete", "pete.reports@example.com")
	post := createPost(t, owner, "Comment report post")
	comment := models.Comment{Content: "rude", UserID: owner.ID, PostID: post.ID}
	assert.NoError(t, db.Create(&comment).Error)

	resp := doRequest(t, "POST", "/api/reports", tokenFor(t, reporter),
		map[string]interface{}{"commentId": comment.ID, "reason": "harassment", "priority": "high"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var report models.Report
	db.Where("user_id = ?", reporter.ID).First(&report)
	assert.Equal(t, models.ReportTargetComment, report.TargetType)
	assert.Equal(t, comment.ID, report.TargetID)
	assert.Equal(t, models.PriorityHigh, report.Priority)
}
