package controllers

import (
	"encoding/json"
	"errors"

	"github.com/NipunThakuria02/Student-Sphere/config"
	"github.com/NipunThakuria02/Student-Sphere/models"
	"github.com/NipunThakuria02/Student-Sphere/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

type AuthController struct {
	DB    *gorm.DB
	Cfg   *config.Config
	OAuth *oauth2.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{
		DB:  db,
		Cfg: cfg,
		OAuth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// GoogleUserInfo is the identity assertion returned by Google's userinfo
// endpoint. The backend trusts it without re-verification.
type GoogleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleLogin godoc
// @Summary Start Google sign-in
// @Description Returns the Google OAuth consent URL
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/google [get]
func (ac *AuthController) GoogleLogin(c *fiber.Ctx) error {
	if ac.Cfg.GoogleClientID == "" {
		return utils.InternalServerError(c, "Google OAuth is not configured")
	}

	url := ac.OAuth.AuthCodeURL("state", oauth2.AccessTypeOffline)
	return c.JSON(fiber.Map{"url": url})
}

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Exchanges the authorization code, upserts the user and returns a session token
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/google/callback [get]
func (ac *AuthController) GoogleCallback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return utils.BadRequest(c, "Authorization code missing")
	}

	token, err := ac.OAuth.Exchange(c.Context(), code)
	if err != nil {
		return utils.Unauthorized(c, "Failed to exchange authorization code")
	}

	// Получаем данные пользователя от Google
	client := ac.OAuth.Client(c.Context(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return utils.InternalServerError(c, "Failed to get user information")
	}
	defer resp.Body.Close()

	var googleUser GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return utils.InternalServerError(c, "Failed to decode user information")
	}
	if googleUser.Email == "" {
		return utils.Unauthorized(c, "Google account has no verified email")
	}

	user, err := ac.upsertUser(googleUser)
	if err != nil {
		return utils.InternalServerError(c, "Could not create user")
	}

	jwtToken, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	// isAdmin вычисляется один раз на сессию и возвращается клиенту,
	// чтобы интерфейс не выводил права повторными запросами
	return c.JSON(fiber.Map{
		"token":   jwtToken,
		"isAdmin": utils.IsAdminEmail(ac.Cfg.AdminEmails, user.Email),
		"user": fiber.Map{
			"id":     user.ID,
			"name":   user.Name,
			"email":  user.Email,
			"image":  user.Image,
			"status": user.Status,
		},
	})
}

func (ac *AuthController) upsertUser(googleUser GoogleUserInfo) (*models.User, error) {
	var user models.User
	err := ac.DB.Where("google_id = ?", googleUser.ID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			GoogleID: googleUser.ID,
			Name:     googleUser.Name,
			Email:    googleUser.Email,
			Image:    googleUser.Picture,
			Status:   models.UserStatusActive,
		}
		if err := ac.DB.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	// Обновляем профиль из свежего ответа Google, статус не трогаем
	user.Name = googleUser.Name
	user.Email = googleUser.Email
	user.Image = googleUser.Picture
	if err := ac.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile godoc
// @Summary Get current user profile
// @Description Returns the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (ac *AuthController) GetProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var user models.User
	if err := ac.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	var postCount, commentCount int64
	ac.DB.Model(&models.Post{}).Where("user_id = ?", userID).Count(&postCount)
	ac.DB.Model(&models.Comment{}).Where("user_id = ?", userID).Count(&commentCount)

	return c.JSON(fiber.Map{
		"id":           user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"image":        user.Image,
		"status":       user.Status,
		"createdAt":    user.CreatedAt,
		"postCount":    postCount,
		"commentCount": commentCount,
		"isAdmin":      utils.IsAdminEmail(ac.Cfg.AdminEmails, user.Email),
	})
}
