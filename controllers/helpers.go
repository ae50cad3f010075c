package controllers

import (
	"github.com/NipunThakuria02/Student-Sphere/config"
	"github.com/NipunThakuria02/Student-Sphere/models"
	"github.com/NipunThakuria02/Student-Sphere/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// currentUser разбирает токен и загружает пользователя из базы
func currentUser(c *fiber.Ctx, db *gorm.DB, cfg *config.Config) (*models.User, error) {
	userID, err := utils.ExtractUserIDFromToken(c, cfg)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return &user, nil
}

// postVoteScore суммирует голоса поста по сохраненным записям (кэша нет)
func postVoteScore(db *gorm.DB, postID uint) int {
	var score int
	db.Model(&models.Vote{}).
		Where("post_id = ?", postID).
		Select("COALESCE(SUM(value), 0)").
		Scan(&score)
	return score
}

// commentVoteScore суммирует голоса комментария
func commentVoteScore(db *gorm.DB, commentID uint) int {
	var score int
	db.Model(&models.Vote{}).
		Where("comment_id = ?", commentID).
		Select("COALESCE(SUM(value), 0)").
		Scan(&score)
	return score
}
