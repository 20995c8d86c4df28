package router

import (
	"blog-api/internal/config"
	"blog-api/internal/handler"
	"blog-api/internal/middleware"
	"blog-api/internal/models"
	"blog-api/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup configures the Gin engine and all API routes.
// db 只用于请求审计日志，内存后端下传 nil 即可（跳过审计）。
func Setup(cfg *config.Config, db *gorm.DB,
	auth *service.AuthService, users *service.UserService, posts *service.PostService) *gin.Engine {

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	if db != nil {
		r.Use(middleware.AuditMiddleware(db))
	}

	guard := middleware.AuthRequired(cfg.JWT.Secret, users)

	authHandler := handler.NewAuthHandler(auth)
	userHandler := handler.NewUserHandler(users)
	postHandler := handler.NewPostHandler(posts)
	exportHandler := handler.NewExportHandler(posts)

	// 注册/登录不需要鉴权，/auth/profile 始终需要
	authGroup := r.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/profile", guard, authHandler.Profile)

	// Users/Posts 是否需要登录由配置决定（两种部署形态）
	userGroup := r.Group("/users")
	if cfg.Auth.GuardUsers {
		userGroup.Use(guard)
	}
	userGroup.POST("", userHandler.Create)
	userGroup.GET("", userHandler.List)
	userGroup.GET("/:id", userHandler.Get)
	userGroup.PATCH("/:id", userHandler.Update)
	if cfg.Auth.GuardUsers {
		// 开启鉴权时删除用户只允许管理员
		userGroup.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), userHandler.Delete)
	} else {
		userGroup.DELETE("/:id", userHandler.Delete)
	}

	postGroup := r.Group("/posts")
	if cfg.Auth.GuardPosts {
		postGroup.Use(guard)
	}
	postGroup.POST("", postHandler.Create)
	postGroup.GET("", postHandler.List)
	postGroup.GET("/:id", postHandler.Get)
	postGroup.PATCH("/:id", postHandler.Update)
	postGroup.DELETE("/:id", postHandler.Delete)

	exportGroup := r.Group("/export")
	if cfg.Auth.GuardPosts {
		exportGroup.Use(guard)
	}
	exportGroup.GET("/posts.csv", exportHandler.ExportCSV)
	exportGroup.GET("/posts.xlsx", exportHandler.ExportXLSX)

	return r
}
