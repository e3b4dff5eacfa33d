package models

// Year 年份参考表，首次为某年设置限额时懒创建
type Year struct {
	ID     uint `json:"year_id" gorm:"primaryKey"`
	Number int  `json:"year_number" gorm:"uniqueIndex;not null;column:year_number"`
}

func (Year) TableName() string {
	return "years"
}
