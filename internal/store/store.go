// Package store 定义用户/文章的持久化接口，并提供两种实现：
// gorm + SQLite（默认）和内存实现（测试、开发用）。
package store

import (
	"errors"

	"blog-api/internal/models"
)

// ErrNotFound 查询不到对应记录时返回。
var ErrNotFound = errors.New("record not found")

// UserStore 用户持久化接口
type UserStore interface {
	CreateUser(u *models.User) error
	// GetUserByID 返回用户及其文章；不存在时返回 ErrNotFound。
	GetUserByID(id uint) (*models.User, error)
	// GetUserByEmail 精确匹配邮箱（区分大小写）；不存在时返回 ErrNotFound。
	GetUserByEmail(email string) (*models.User, error)
	// ListUsers 返回所有用户，按创建时间倒序。
	ListUsers() ([]models.User, error)
	UpdateUser(u *models.User) error
	// DeleteUser 删除用户，并级联删除其所有文章。
	DeleteUser(id uint) error
}

// PostStore 文章持久化接口
type PostStore interface {
	CreatePost(p *models.Post) error
	// GetPostByID 返回文章及其作者；不存在时返回 ErrNotFound。
	GetPostByID(id uint) (*models.Post, error)
	// ListPosts 返回所有文章（带作者），按创建时间倒序。
	ListPosts() ([]models.Post, error)
	// ListPostsByUser 返回某个用户的文章，按创建时间倒序。
	ListPostsByUser(userID uint) ([]models.Post, error)
	UpdatePost(p *models.Post) error
	DeletePost(id uint) error
}
