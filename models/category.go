package models

type Category struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	CategoryName string    `json:"category_name" gorm:"not null"`
	Products     []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}

func (Category) TableName() string {
	return "categories"
}
