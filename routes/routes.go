package routes

import (
	"github.com/NipunThakuria02/Student-Sphere/config"
	"github.com/NipunThakuria02/Student-Sphere/controllers"
	"github.com/NipunThakuria02/Student-Sphere/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Get("/api/auth/google", authController.GoogleLogin)
	app.Get("/api/auth/google/callback", authController.GoogleCallback)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// User routes
	app.Get("/api/user/profile", authMiddleware, authController.GetProfile)

	// Posts routes
	postsController := controllers.NewPostsController(db, cfg)
	posts := app.Group("/api/posts", authMiddleware)
	posts.Post("/", postsController.CreatePost)
	posts.Get("/", postsController.GetPosts)
	posts.Get("/:id", postsController.GetPost)

	// Comments routes
	commentsController := controllers.NewCommentsController(db, cfg)
	posts.Post("/:id/comments", commentsController.AddComment)
	posts.Get("/:id/comments", commentsController.GetComments)

	// Votes routes
	votesController := controllers.NewVotesController(db, cfg)
	app.Post("/api/votes", authMiddleware, votesController.Vote)

	// Reports routes
	reportsController := controllers.NewReportsController(db, cfg)
	app.Post("/api/reports", authMiddleware, reportsController.SubmitReport)

	// Notifications routes
	notificationsController := controllers.NewNotificationsController(db, cfg)
	notifications := app.Group("/api/notifications", authMiddleware)
	notifications.Get("/", notificationsController.GetNotifications)
	notifications.Patch("/", notificationsController.MarkRead)
	notifications.Post("/", notificationsController.MarkAllRead)

	// Admin routes
	adminController := controllers.NewAdminController(db, cfg)
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Get("/stats", adminController.GetStats)
	admin.Get("/posts", adminController.GetPosts)
	admin.Delete("/posts/:id", adminController.DeletePost)
	admin.Get("/users", adminController.GetUsers)
	admin.Patch("/users/:id", adminController.UpdateUserStatus)
	admin.Get("/reports", adminController.GetReports)
	admin.Patch("/reports/:id", adminController.UpdateReportStatus)
}
