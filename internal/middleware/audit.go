package middleware

import (
	"blog-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditMiddleware 给每个请求生成 request id，并把请求记录写入 request_logs。
// 写日志失败不影响请求本身。
func AuditMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		c.Next()

		var userID *uint
		if v, ok := c.Get(CurrentUserKey); ok {
			if user, ok := v.(*models.User); ok && user != nil {
				userID = &user.ID
			}
		}

		entry := models.RequestLog{
			RequestID: requestID,
			UserID:    userID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		_ = db.Create(&entry).Error
	}
}
