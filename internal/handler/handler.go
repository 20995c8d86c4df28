// Package handler gin 处理器：绑定/校验请求，调用 service，写统一响应。
package handler

import (
	"errors"
	"log"
	"net/http"

	"blog-api/internal/middleware"
	"blog-api/internal/models"
	"blog-api/internal/service"
	"blog-api/internal/util"

	"github.com/gin-gonic/gin"
)

// respondServiceError 把 service 层错误映射到状态码。
// notFoundMsg 用于 ErrNotFound（处理器知道具体是哪个实体、哪个 ID）。
// 未识别的错误记日志，只对外返回通用 500 信息。
func respondServiceError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		util.Error(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, service.ErrEmailTaken):
		util.Error(c, http.StatusConflict, "Email is already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		util.Error(c, http.StatusUnauthorized, "Invalid credentials")
	default:
		log.Printf("internal error: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		util.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}

// currentUser 取 AuthRequired 放进 context 的用户
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(middleware.CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
