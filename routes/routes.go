package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"idea-management-api/config"
	"idea-management-api/controllers"
	"idea-management-api/middleware"
	"idea-management-api/services"
)

// SetupRoutes wires services, controllers and middleware onto the engine.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, mailer services.MailSender) {
	ideaSvc := services.NewIdeaService(db)
	commentSvc := services.NewCommentService(db, ideaSvc)
	metricsSvc := services.NewMetricsService(db)

	var notifier *services.DecisionNotifier
	if mailer != nil {
		notifier = services.NewDecisionNotifier(db, mailer)
	}

	authCtl := &controllers.AuthController{DB: db, Cfg: cfg}
	ideaCtl := &controllers.IdeaController{Ideas: ideaSvc, Notifier: notifier}
	commentCtl := &controllers.CommentController{Comments: commentSvc}
	metricsCtl := &controllers.MetricsController{Metrics: metricsSvc}

	authRequired := middleware.AuthMiddleware(db, []byte(cfg.JWTSecret))

	// Public routes
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Idea Management API is running",
		})
	})

	auth := router.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.GET("/me", authRequired, authCtl.Me)
	}

	// Protected routes (require authentication)
	ideas := router.Group("/ideas")
	ideas.Use(authRequired)
	{
		// Only team members submit ideas
		ideas.POST("/", middleware.RequirePermission(services.OpCreateIdea), ideaCtl.Create)

		ideas.GET("/my", ideaCtl.ListMine)
		ideas.GET("/all", middleware.RequirePermission(services.OpListAllIdeas), ideaCtl.ListAll)
		ideas.GET("/metrics/summary", middleware.RequirePermission(services.OpViewMetrics), metricsCtl.Summary)

		ideas.GET("/:id", ideaCtl.Get)
		ideas.PUT("/:id", ideaCtl.Update)
		ideas.DELETE("/:id", ideaCtl.Delete)

		// Only leads decide; history is appended in the same transaction
		ideas.PATCH("/:id/status", middleware.RequirePermission(services.OpChangeStatus), ideaCtl.SetStatus)

		// Lead-initiated comment channel; same thread rule as /comments
		ideas.POST("/:id/comments", middleware.RequirePermission(services.OpCommentAnyIdea), commentCtl.Add)
	}

	comments := router.Group("/comments")
	comments.Use(authRequired)
	{
		comments.GET("/idea/:id", commentCtl.List)
		comments.POST("/idea/:id", commentCtl.Add)
	}
}
