package middleware

import (
	"errors"
	"net/http"
	"strings"

	"blog-api/internal/service"
	"blog-api/internal/util"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey context 里存放当前用户的键
const CurrentUserKey = "currentUser"

// AuthRequired 校验 Bearer token，并在 context 里放入当前用户（脱敏）。
// token 只从 Authorization 头取，签名或有效期校验失败都算未登录。
// 签发后被删除的用户，其旧 token 同样会被拒绝。
func AuthRequired(jwtSecret string, users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			util.Error(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// token 有效 ≠ 用户还在，按 ID 再查一次
		user, err := users.FindOne(claims.UserID)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				util.Error(c, http.StatusUnauthorized, "Invalid token or user not found")
			} else {
				util.Error(c, http.StatusInternalServerError, "Internal server error")
			}
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}
