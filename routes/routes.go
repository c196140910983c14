package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joveey/sistem-bk-online/configs"
	"github.com/joveey/sistem-bk-online/controllers"
	"github.com/joveey/sistem-bk-online/middlewares"
	"github.com/joveey/sistem-bk-online/repository"
	"github.com/joveey/sistem-bk-online/services"
	"github.com/joveey/sistem-bk-online/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	studentRepo := repository.NewStudentRepository(db)
	counselorRepo := repository.NewCounselorRepository(db)
	reportRepo := repository.NewReportRepository(db)
	chatRepo := repository.NewChatRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	// Services
	authSvc := services.NewAuthService(studentRepo, counselorRepo, tokenRepo, cfg.JWTSecret, cfg.JWTTTL)
	reportSvc := services.NewReportService(db, reportRepo)
	chatSvc := services.NewChatService(reportRepo, chatRepo)
	studentSvc := services.NewStudentService(studentRepo)

	// Live chat hub
	hub := ws.NewReportChatHub(chatSvc)
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	reportCtrl := controllers.NewReportController(reportSvc)
	chatCtrl := controllers.NewChatController(chatSvc, hub)
	studentCtrl := controllers.NewStudentController(studentSvc)

	// Auth (public)
	r.POST("/student-login", authCtrl.StudentLogin)
	r.POST("/guru/login", authCtrl.CounselorLogin)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret, tokenRepo)
	counselorOnly := middlewares.AuthMiddleware(cfg.JWTSecret, tokenRepo, "counselor")

	// Protected (any principal)
	protected := r.Group("", auth)
	{
		protected.GET("/user", authCtrl.Me)
		protected.POST("/logout", authCtrl.Logout)

		protected.GET("/reports", reportCtrl.List)
		protected.POST("/reports", reportCtrl.Create)
		protected.GET("/reports/:id", reportCtrl.Detail)
		protected.PUT("/reports/:id/accept", reportCtrl.Accept)
		protected.PUT("/reports/:id/schedule", reportCtrl.Schedule)
		protected.PUT("/reports/:id/complete", reportCtrl.Complete)

		protected.GET("/reports/:id/chats", chatCtrl.List)
		protected.POST("/reports/:id/chats", chatCtrl.Create)
	}

	// Student administration (counselor only); the SPA talks to both paths
	for _, prefix := range []string{"/students", "/guru/students"} {
		g := r.Group(prefix, counselorOnly)
		{
			g.GET("", studentCtrl.List)
			g.POST("", studentCtrl.Create)
			g.GET("/:id", studentCtrl.Detail)
			g.PUT("/:id", studentCtrl.Update)
			g.DELETE("/:id", studentCtrl.Delete)
		}
	}

	// Live chat
	r.GET("/ws/reports/:id/chats", middlewares.WSAuthMiddleware(cfg.JWTSecret, tokenRepo), hub.HandleWebSocket)
}
