package store

import (
	"errors"
	"fmt"

	"blog-api/internal/models"

	"gorm.io/gorm"
)

// GormStore 基于 gorm 的持久化实现，同时实现 UserStore 和 PostStore。
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// ---------- users ----------

func (s *GormStore) CreateUser(u *models.User) error {
	if err := s.db.Create(u).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *GormStore) GetUserByID(id uint) (*models.User, error) {
	var u models.User
	err := s.db.Preload("Posts").First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user %d: %w", id, err)
	}
	return &u, nil
}

func (s *GormStore) GetUserByEmail(email string) (*models.User, error) {
	var u models.User
	err := s.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return &u, nil
}

func (s *GormStore) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC, id DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *GormStore) UpdateUser(u *models.User) error {
	// Omit 关联，避免 Save 顺带写 posts
	if err := s.db.Omit("Posts").Save(u).Error; err != nil {
		return fmt.Errorf("update user %d: %w", u.ID, err)
	}
	return nil
}

func (s *GormStore) DeleteUser(id uint) error {
	// 先删文章再删用户，级联不依赖数据库外键配置
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return fmt.Errorf("delete posts of user %d: %w", id, err)
		}
		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete user %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ---------- posts ----------

func (s *GormStore) CreatePost(p *models.Post) error {
	if err := s.db.Create(p).Error; err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (s *GormStore) GetPostByID(id uint) (*models.Post, error) {
	var p models.Post
	err := s.db.Preload("User").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query post %d: %w", id, err)
	}
	return &p, nil
}

func (s *GormStore) ListPosts() ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Preload("User").Order("created_at DESC, id DESC").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *GormStore) ListPostsByUser(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts of user %d: %w", userID, err)
	}
	return posts, nil
}

func (s *GormStore) UpdatePost(p *models.Post) error {
	if err := s.db.Omit("User").Save(p).Error; err != nil {
		return fmt.Errorf("update post %d: %w", p.ID, err)
	}
	return nil
}

func (s *GormStore) DeletePost(id uint) error {
	res := s.db.Delete(&models.Post{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete post %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
