package service

import (
	"errors"
	"fmt"
	"time"

	"blog-api/internal/models"
	"blog-api/internal/util"
)

// AuthService 注册/登录，签发 JWT。
type AuthService struct {
	users     *UserService
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users *UserService, jwtSecret string, ttlHours int) *AuthService {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

// Register 创建用户并签发 token。邮箱冲突原样返回 ErrEmailTaken，
// 其它存储错误包一层，处理器只对外暴露通用 500 信息。
func (s *AuthService) Register(name, email, password string) (*models.User, string, error) {
	user, err := s.users.Create(name, email, password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("register user: %w", err)
	}

	token, err := util.GenerateToken(s.jwtSecret, user.ID, user.Email, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return user, token, nil
}

// Login 校验邮箱和密码并签发 token。
// 未知邮箱和密码错误都返回 ErrInvalidCredentials，不区分。
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if !util.CheckPassword(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := util.GenerateToken(s.jwtSecret, user.ID, user.Email, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return user.Sanitized(), token, nil
}

// Validate 校验凭据，成功返回脱敏用户（不发 token），失败返回 (nil, nil)。
// 给其它验证流程复用，和 Login 区分开。
func (s *AuthService) Validate(email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil || !util.CheckPassword(password, user.Password) {
		return nil, nil
	}
	return user.Sanitized(), nil
}
