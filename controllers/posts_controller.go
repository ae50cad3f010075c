package controllers

import (
	"sort"
	"strconv"

	"github.com/NipunThakuria02/Student-Sphere/config"
	"github.com/NipunThakuria02/Student-Sphere/models"
	"github.com/NipunThakuria02/Student-Sphere/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PostsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewPostsController(db *gorm.DB, cfg *config.Config) *PostsController {
	return &PostsController{DB: db, Cfg: cfg}
}

// CreatePostRequest defines the request body for creating a post
type CreatePostRequest struct {
	Title       string `json:"title" example:"Help with calculus"`
	Description string `json:"description" example:"How do I integrate by parts?"`
	Category    string `json:"category" enums:"ACADEMIC,NON_ACADEMIC"`
	Subject     string `json:"subject,omitempty" example:"Mathematics"`
}

// CreatePost godoc
// @Summary Create a post
// @Description Creates a new forum post owned by the authenticated user
// @Tags posts
// @Accept json
// @Produce json
// @Param input body CreatePostRequest true "Post data"
// @Success 201 {object} models.Post
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /posts [post]
func (pc *PostsController) CreatePost(c *fiber.Ctx) error {
	user, err := currentUser(c, pc.DB, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}
	if user.Status == models.UserStatusSuspended {
		return utils.Forbidden(c, "Suspended users cannot create posts")
	}

	var input CreatePostRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}
	if !models.ValidPostCategory(input.Category) {
		return utils.BadRequest(c, "Invalid category")
	}

	// Предмет имеет смысл только для учебных постов
	subject := ""
	if models.PostCategory(input.Category) == models.CategoryAcademic {
		subject = input.Subject
	}

	post := models.Post{
		Title:       input.Title,
		Description: input.Description,
		Category:    models.PostCategory(input.Category),
		Subject:     subject,
		UserID:      user.ID,
	}

	if err := pc.DB.Create(&post).Error; err != nil {
		return utils.InternalServerError(c, "Could not create post")
	}

	post.User = *user
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": post})
}

// GetPosts godoc
// @Summary List posts
// @Description Returns posts with vote scores and comment counts
// @Tags posts
// @Produce json
// @Param category query string false "Filter by category"
// @Param sort query string false "new or top" default(new)
// @Param limit query int false "Max number of posts"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /posts [get]
func (pc *PostsController) GetPosts(c *fiber.Ctx) error {
	query := pc.DB.Preload("User").Order("created_at DESC")

	if category := c.Query("category"); category != "" {
		if !models.ValidPostCategory(category) {
			return utils.BadRequest(c, "Invalid category")
		}
		query = query.Where("category = ?", category)
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch posts")
	}

	for i := range posts {
		posts[i].VoteScore = postVoteScore(pc.DB, posts[i].ID)
		pc.DB.Model(&models.Comment{}).
			Where("post_id = ?", posts[i].ID).
			Count(&posts[i].CommentCount)
	}

	if c.Query("sort") == "top" {
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].VoteScore > posts[j].VoteScore
		})
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return utils.BadRequest(c, "Invalid limit")
		}
		if limit < len(posts) {
			posts = posts[:limit]
		}
	}

	return c.JSON(fiber.Map{"posts": posts})
}

// GetPost godoc
// @Summary Get a post
// @Description Returns a single post with its comment thread
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /posts/{id} [get]
func (pc *PostsController) GetPost(c *fiber.Ctx) error {
	postID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid post ID")
	}

	var post models.Post
	if err := pc.DB.Preload("User").First(&post, postID).Error; err != nil {
		return utils.NotFound(c, "Post not found")
	}

	var comments []models.Comment
	if err := pc.DB.Preload("User").
		Where("post_id = ?", post.ID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch comments")
	}
	for i := range comments {
		comments[i].VoteScore = commentVoteScore(pc.DB, comments[i].ID)
	}

	post.VoteScore = postVoteScore(pc.DB, post.ID)
	post.CommentCount = int64(len(comments))
	post.Comments = comments

	return c.JSON(fiber.Map{"post": post})
}
