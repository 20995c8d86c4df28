package middleware

import (
	"net/http"

	"blog-api/internal/models"
	"blog-api/internal/util"

	"github.com/gin-gonic/gin"
)

// RequireRoles 限制接口只允许指定角色访问，必须挂在 AuthRequired 之后。
// 不传角色时等于不限制。
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		if len(allowed) == 0 {
			c.Next()
			return
		}

		v, ok := c.Get(CurrentUserKey)
		if !ok {
			util.Error(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		user, ok := v.(*models.User)
		if !ok || user == nil {
			util.Error(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		if !allowed[user.Role] {
			util.Error(c, http.StatusForbidden, "Insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
