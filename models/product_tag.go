package models

// ProductTag is the join row between a product and a tag. The composite
// primary key keeps at most one row per (product_id, tag_id).
type ProductTag struct {
	ProductID uint `json:"product_id" gorm:"primaryKey;autoIncrement:false"`
	TagID     uint `json:"tag_id" gorm:"primaryKey;autoIncrement:false;index"`
}

func (ProductTag) TableName() string {
	return "product_tags"
}
