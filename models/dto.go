package models

import "github.com/shopspring/decimal"

const DefaultStock = 10

type CreateProductRequest struct {
	ProductName string           `json:"product_name" binding:"required,min=1,max=255"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Stock       *int             `json:"stock" binding:"omitempty,min=0"`
	CategoryID  *uint            `json:"category_id" binding:"omitempty,min=1"`
	TagIDs      []uint           `json:"tagIds"`
}

// UpdateProductRequest carries a partial update. A nil TagIDs means the
// caller did not send tagIds; a non-nil empty slice clears every tag.
type UpdateProductRequest struct {
	ProductName *string          `json:"product_name" binding:"omitempty,min=1,max=255"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" binding:"omitempty,min=0"`
	CategoryID  *uint            `json:"category_id" binding:"omitempty,min=1"`
	TagIDs      *[]uint          `json:"tagIds"`
}

// Fields returns the column updates carried by the request.
func (r UpdateProductRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.ProductName != nil {
		fields["product_name"] = *r.ProductName
	}
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	if r.Stock != nil {
		fields["stock"] = *r.Stock
	}
	if r.CategoryID != nil {
		fields["category_id"] = *r.CategoryID
	}
	return fields
}

type MessageResponse struct {
	Message string `json:"message"`
}
