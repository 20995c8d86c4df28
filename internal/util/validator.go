package util

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail 验证邮箱格式
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > 100 {
		return fmt.Errorf("email too long, max 100 characters")
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("email must be a valid email address")
	}
	return nil
}

// ValidateName 验证用户名（至少 3 个字符）
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(name) < 3 {
		return fmt.Errorf("name must be at least 3 characters")
	}
	if utf8.RuneCountInString(name) > 100 {
		return fmt.Errorf("name too long, max 100 characters")
	}
	return nil
}

// ValidatePassword 验证密码（至少 6 个字符）
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	if len(password) > 72 { // bcrypt 上限
		return fmt.Errorf("password too long, max 72 characters")
	}
	return nil
}

// ValidateTitle 验证文章标题（3-200 个字符）
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	n := utf8.RuneCountInString(title)
	if n < 3 {
		return fmt.Errorf("title must be at least 3 characters")
	}
	if n > 200 {
		return fmt.Errorf("title too long, max 200 characters")
	}
	return nil
}

// ValidateContent 验证文章内容（至少 10 个字符）
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	if utf8.RuneCountInString(content) < 10 {
		return fmt.Errorf("content must be at least 10 characters")
	}
	return nil
}
