package models

// Currency 币种（静态参考表）
type Currency struct {
	ID     uint   `json:"currency_id" gorm:"primaryKey"`
	Name   string `json:"currency_name" gorm:"size:50;not null"`
	Symbol string `json:"currency_symbol" gorm:"size:10;not null"`
}

func (Currency) TableName() string {
	return "currencies"
}

// DefaultCurrencies 初始化用的默认币种，ID 固定，1 为默认币种
func DefaultCurrencies() []Currency {
	return []Currency{
		{ID: 1, Name: "人民币", Symbol: "¥"},
		{ID: 2, Name: "美元", Symbol: "$"},
		{ID: 3, Name: "欧元", Symbol: "€"},
		{ID: 4, Name: "英镑", Symbol: "£"},
		{ID: 5, Name: "日元", Symbol: "JP¥"},
	}
}
