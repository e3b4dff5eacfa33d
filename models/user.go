package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID          uint      `json:"user_id" gorm:"primaryKey"`
	Username    string    `json:"username" gorm:"uniqueIndex;size:50;not null"` // 注册时取邮箱 @ 前的部分
	Name        string    `json:"name" gorm:"size:100"`
	Password    string    `json:"-" gorm:"size:255;not null"`
	Email       string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	GlobalLimit Cents     `json:"global_limit" gorm:"type:bigint;not null;default:0"` // 全局消费上限（分），0 表示未设置
	CurrencyID  uint      `json:"currency_id" gorm:"not null;default:1"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}
