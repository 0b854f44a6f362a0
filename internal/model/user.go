package model

import (
	"strings"
	"time"
)

// User 用户，Friends 为该用户主动添加的好友（有向边）
type User struct {
	ID       int64     `json:"id" db:"id"`
	Email    string    `json:"email" db:"email"`
	Login    string    `json:"login" db:"login"`
	Name     string    `json:"name" db:"name"`
	Birthday time.Time `json:"birthday" db:"birthday"`
	Friends  []int64   `json:"friends"`
}

// DisplayName 名称为空或仅含空白时使用登录名
func (u *User) DisplayName() string {
	if strings.TrimSpace(u.Name) == "" {
		return u.Login
	}
	return u.Name
}

// LikeOverlap 与目标用户共同点赞的电影数量
type LikeOverlap struct {
	UserID int64 `json:"user_id" db:"user_id"`
	Common int   `json:"common" db:"common"`
}
