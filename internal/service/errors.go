// Package service 实现用户、文章和认证的业务规则，
// 处理器层通过 errors.Is 判断哨兵错误并映射到 HTTP 状态码。
package service

import "errors"

var (
	// ErrNotFound 目标实体不存在（404）
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken 邮箱已被注册（409）
	ErrEmailTaken = errors.New("email is already registered")
	// ErrInvalidCredentials 登录凭据错误（401）。
	// 未知邮箱和密码错误共用这一个错误，避免泄露哪些邮箱已注册。
	ErrInvalidCredentials = errors.New("invalid email or password")
)
