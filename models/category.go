package models

import (
	"strings"
	"time"
)

// ExpenseCategory 消费类别
// user_id 为 NULL 表示全局类别，对所有用户可见
// 删除为软删除（is_deleted 置位），同名重建时复活原行而不是新插入
// 唯一索引 (user_id, name) 覆盖软删除行，保证同一自然键只有一行
type ExpenseCategory struct {
	ID        uint      `json:"category_id" gorm:"primaryKey"`
	Name      string    `json:"-" gorm:"size:100;not null;uniqueIndex:idx_cat_owner_name"` // 存储为去空格小写
	UserID    *uint     `json:"user_id" gorm:"uniqueIndex:idx_cat_owner_name"`
	IsDeleted bool      `json:"-" gorm:"not null;default:false;index"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (ExpenseCategory) TableName() string {
	return "expense_categories"
}

// IsGlobal 是否全局类别
func (c *ExpenseCategory) IsGlobal() bool {
	return c.UserID == nil
}

// DisplayName 返回给前端展示的名称（每个单词首字母大写）
func (c *ExpenseCategory) DisplayName() string {
	return TitleCategoryName(c.Name)
}

// NormalizeCategoryName 类别名称归一化：去空格、小写
// 保证删除后同名重建命中同一自然键
func NormalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TitleCategoryName 每个单词首字母大写，用于展示
func TitleCategoryName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// DefaultCategories 初始化用的全局类别
func DefaultCategories() []string {
	return []string{
		"餐饮",
		"交通",
		"购物",
		"娱乐",
		"水电缴费",
		"医疗",
		"教育",
		"旅行",
		"其他",
	}
}
