package models

import "time"

// Month 月份参考表，month_id 恒等于日历月份 1..12
type Month struct {
	ID   uint   `json:"month_id" gorm:"primaryKey"`
	Name string `json:"month_name" gorm:"size:20;not null;uniqueIndex"`
}

func (Month) TableName() string {
	return "months"
}

// DefaultMonths 初始化用的 12 个月份，ID 固定为日历月份
func DefaultMonths() []Month {
	months := make([]Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, Month{ID: uint(m), Name: m.String()})
	}
	return months
}
