package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"blog-api/internal/service"
	"blog-api/internal/util"

	"github.com/gin-gonic/gin"
)

// PostHandler 文章 CRUD 接口
type PostHandler struct {
	Posts *service.PostService
}

func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{Posts: posts}
}

type createPostReq struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	UserID    uint   `json:"user_id" binding:"required"`
	Published bool   `json:"published"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "title, content and user_id are required")
		return
	}

	if err := util.ValidateTitle(req.Title); err != nil {
		util.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := util.ValidateContent(req.Content); err != nil {
		util.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.Posts.Create(req.Title, req.Content, req.UserID, req.Published)
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("User with ID %d not found", req.UserID))
		return
	}
	util.Success(c, http.StatusCreated, "Post created successfully", post)
}

// List 返回所有文章；带 ?userId= 时只返回该用户的文章
func (h *PostHandler) List(c *gin.Context) {
	if q := c.Query("userId"); q != "" {
		userID, err := strconv.ParseUint(q, 10, 32)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "userId must be a positive integer")
			return
		}
		posts, err := h.Posts.FindByUser(uint(userID))
		if err != nil {
			respondServiceError(c, err, fmt.Sprintf("User with ID %d not found", userID))
			return
		}
		util.Success(c, http.StatusOK, "Posts retrieved successfully", posts)
		return
	}

	posts, err := h.Posts.FindAll()
	if err != nil {
		respondServiceError(c, err, "Post not found")
		return
	}
	util.Success(c, http.StatusOK, "Posts retrieved successfully", posts)
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	post, err := h.Posts.FindOne(id)
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("Post with ID %d not found", id))
		return
	}
	util.Success(c, http.StatusOK, "Post retrieved successfully", post)
}

type updatePostReq struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req updatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title != nil {
		if err := util.ValidateTitle(*req.Title); err != nil {
			util.Error(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Content != nil {
		if err := util.ValidateContent(*req.Content); err != nil {
			util.Error(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	post, err := h.Posts.Update(id, service.UpdatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("Post with ID %d not found", id))
		return
	}
	util.Success(c, http.StatusOK, "Post updated successfully", post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.Posts.Remove(id); err != nil {
		respondServiceError(c, err, fmt.Sprintf("Post with ID %d not found", id))
		return
	}
	util.Success(c, http.StatusOK, "Post deleted successfully", nil)
}
