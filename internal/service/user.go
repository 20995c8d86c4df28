package service

import (
	"errors"
	"fmt"

	"blog-api/internal/models"
	"blog-api/internal/store"
	"blog-api/internal/util"
)

// UserService 用户 CRUD + 邮箱唯一性。对外只返回去掉密码哈希的用户。
type UserService struct {
	store      store.UserStore
	bcryptCost int
}

func NewUserService(s store.UserStore, bcryptCost int) *UserService {
	return &UserService{store: s, bcryptCost: bcryptCost}
}

// UpdateUserInput PATCH 的部分字段，nil 表示不修改
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}

// Create 创建用户：邮箱查重 → bcrypt 哈希 → 入库，返回脱敏用户。
func (s *UserService) Create(name, email, password string) (*models.User, error) {
	_, err := s.store.GetUserByEmail(email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := util.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// FindByEmail 按邮箱查找，返回值包含密码哈希，仅供认证流程内部使用。
// 查不到时返回 (nil, nil)，调用方据此区分「不存在」和「查询失败」。
func (s *UserService) FindByEmail(email string) (*models.User, error) {
	u, err := s.store.GetUserByEmail(email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// FindAll 返回所有用户（脱敏），按创建时间倒序。
func (s *UserService) FindAll() ([]models.User, error) {
	users, err := s.store.ListUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// FindOne 按 ID 查找，返回脱敏用户（带文章），不存在时返回 ErrNotFound。
func (s *UserService) FindOne(id uint) (*models.User, error) {
	u, err := s.store.GetUserByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u.Sanitized(), nil
}

// Update 部分更新。修改邮箱时重新查重（排除自己），冲突返回 ErrEmailTaken。
func (s *UserService) Update(id uint, in UpdateUserInput) (*models.User, error) {
	u, err := s.store.GetUserByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != u.Email {
		other, err := s.store.GetUserByEmail(*in.Email)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if other != nil && other.ID != id {
			return nil, ErrEmailTaken
		}
		u.Email = *in.Email
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Password != nil {
		hash, err := util.HashPassword(*in.Password, s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.Password = hash
	}

	if err := s.store.UpdateUser(u); err != nil {
		return nil, err
	}
	return u.Sanitized(), nil
}

// Remove 删除用户，级联删除其文章。
func (s *UserService) Remove(id uint) error {
	err := s.store.DeleteUser(id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
