package models

import "time"

// 用户角色
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents application user.
// Password 存 bcrypt 哈希，json:"-" 保证永远不会序列化到响应里。
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:16;not null;default:user" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Posts []Post `gorm:"constraint:OnDelete:CASCADE" json:"posts,omitempty"`
}

// Sanitized 返回去掉密码哈希的副本，服务层对外只返回这种形式。
func (u User) Sanitized() *User {
	u.Password = ""
	return &u
}
