package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"blog-api/internal/models"
	"blog-api/internal/service"
	"blog-api/internal/util"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户 CRUD 接口
type UserHandler struct {
	Users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

// parseIDParam 解析 :id 路径参数
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

type createUserReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserReq
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

	user, err := h.Users.Create(req.Name, req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}
	util.Success(c, http.StatusCreated, "User created successfully", user)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.FindAll()
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}
	util.Success(c, http.StatusOK, "Users retrieved successfully", users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	user, err := h.Users.FindOne(id)
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("User with ID %d not found", id))
		return
	}
	util.Success(c, http.StatusOK, "User retrieved successfully", user)
}

type updateUserReq struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
		if err := util.ValidateName(trimmed); err != nil {
			util.Error(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		req.Email = &trimmed
		if err := util.ValidateEmail(trimmed); err != nil {
			util.Error(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Password != nil {
		if err := util.ValidatePassword(*req.Password); err != nil {
			util.Error(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Role != nil && *req.Role != models.RoleUser && *req.Role != models.RoleAdmin {
		util.Error(c, http.StatusBadRequest, "role must be user or admin")
		return
	}

	user, err := h.Users.Update(id, service.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("User with ID %d not found", id))
		return
	}
	util.Success(c, http.StatusOK, "User updated successfully", user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.Users.Remove(id); err != nil {
		respondServiceError(c, err, fmt.Sprintf("User with ID %d not found", id))
		return
	}
	util.Success(c, http.StatusOK, "User deleted successfully", nil)
}
