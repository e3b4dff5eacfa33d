package models

import "time"

// MonthlyLimit 每用户每月消费限额
// 自然键 (user_id, month_id, year_id) 由数据库唯一索引保证
type MonthlyLimit struct {
	ID        uint      `json:"monthly_limit_id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_limit_user_month_year"`
	MonthID   uint      `json:"month_id" gorm:"not null;uniqueIndex:idx_limit_user_month_year"`
	YearID    uint      `json:"year_id" gorm:"not null;uniqueIndex:idx_limit_user_month_year"`
	Amount    Cents     `json:"monthly_limit_amount" gorm:"type:bigint;not null"` // 限额（分）
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MonthlyLimit) TableName() string {
	return "monthly_limits"
}
