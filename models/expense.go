package models

import "time"

// Expense 消费记录，硬删除，无编辑
type Expense struct {
	ID          uint      `json:"expense_id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	Name        string    `json:"expense_name" gorm:"size:200"`
	Price       Cents     `json:"expense_item_price" gorm:"type:bigint;not null;column:expense_item_price"` // 单价（分）
	CategoryID  uint      `json:"expense_category_id" gorm:"index;not null;column:expense_category_id"`
	Description string    `json:"expense_description" gorm:"size:255"`
	Count       int       `json:"expense_item_count" gorm:"not null;default:1;column:expense_item_count"` // 件数
	SpentOn     time.Time `json:"-" gorm:"type:date;not null;index;column:expenditure_date"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// Total 小计 = 单价 × 件数
func (e *Expense) Total() Cents {
	return e.Price.Mul(e.Count)
}

// MonthRange 返回 (year, month) 对应的左闭右开日期区间
// [当月第一天, 次月第一天)，不依赖数据库日期函数
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0)
}
