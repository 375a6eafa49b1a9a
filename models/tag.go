package models

type Tag struct {
	ID       uint      `json:"id" gorm:"primarykey"`
	TagName  string    `json:"tag_name"`
	Products []Product `json:"products,omitempty" gorm:"many2many:product_tags;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Tag) TableName() string {
	return "tags"
}
