package handler

import (
	"net/http"
	"strings"

	"blog-api/internal/service"
	"blog-api/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler 负责注册/登录/当前用户接口
type AuthHandler struct {
	Auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// ---------- 注册 ----------

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "name, email and password are required")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err := util.ValidateName(req.Name); err != nil {
		util.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := util.ValidateEmail(req.Email); err != nil {
		util.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := util.ValidatePassword(req.Password); err != nil {
		util.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.Auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}

	util.Success(c, http.StatusCreated, "Registration successful", gin.H{
		"user":         user,
		"access_token": token,
	})
}

// ---------- 登录 ----------

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "email and password are required")
		return
	}

	user, token, err := h.Auth.Login(strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}

	util.Success(c, http.StatusOK, "Login successful", gin.H{
		"user":         user,
		"access_token": token,
	})
}

// Profile 返回当前登录用户（需要经过 AuthRequired）
func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	util.Success(c, http.StatusOK, "Profile retrieved successfully", user)
}
