package seeds

import (
	"context"
	"fmt"

	"ecommerce-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var Categories = []models.Category{
	{ID: 1, CategoryName: "Shirts"},
	{ID: 2, CategoryName: "Shorts"},
	{ID: 3, CategoryName: "Music"},
	{ID: 4, CategoryName: "Hats"},
	{ID: 5, CategoryName: "Shoes"},
}

var Tags = []models.Tag{
	{ID: 1, TagName: "rock music"},
	{ID: 2, TagName: "pop music"},
	{ID: 3, TagName: "blue"},
	{ID: 4, TagName: "red"},
	{ID: 5, TagName: "green"},
	{ID: 6, TagName: "white"},
	{ID: 7, TagName: "gold"},
	{ID: 8, TagName: "pop culture"},
}

var Products = []models.Product{
	{ID: 1, ProductName: "Plain T-Shirt", Price: decimal.RequireFromString("14.99"), Stock: 14, CategoryID: uintPtr(1)},
	{ID: 2, ProductName: "Running Sneakers", Price: decimal.RequireFromString("90.00"), Stock: 25, CategoryID: uintPtr(5)},
	{ID: 3, ProductName: "Branded Baseball Hat", Price: decimal.RequireFromString("22.99"), Stock: 12, CategoryID: uintPtr(4)},
	{ID: 4, ProductName: "Top 40 Music Compilation Vinyl Record", Price: decimal.RequireFromString("12.99"), Stock: 50, CategoryID: uintPtr(3)},
	{ID: 5, ProductName: "Cargo Shorts", Price: decimal.RequireFromString("29.99"), Stock: 22, CategoryID: uintPtr(2)},
}

var ProductTags = []models.ProductTag{
	{ProductID: 1, TagID: 6},
	{ProductID: 1, TagID: 7},
	{ProductID: 1, TagID: 8},
	{ProductID: 2, TagID: 6},
	{ProductID: 3, TagID: 1},
	{ProductID: 3, TagID: 3},
	{ProductID: 3, TagID: 4},
	{ProductID: 3, TagID: 5},
	{ProductID: 4, TagID: 1},
	{ProductID: 4, TagID: 2},
	{ProductID: 4, TagID: 8},
	{ProductID: 5, TagID: 3},
}

// sequences are moved past the explicit ids above so later inserts do not
// collide with seeded rows.
var sequences = []string{"categories", "tags", "products"}

// Run inserts the sample catalog in one transaction. Rows that already
// exist are skipped, so Run can be repeated.
func Run(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := skipExisting(tx).Create(&Categories).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		if err := skipExisting(tx).Create(&Tags).Error; err != nil {
			return fmt.Errorf("seed tags: %w", err)
		}
		if err := skipExisting(tx).Omit(clause.Associations).Create(&Products).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		if err := skipExisting(tx).Create(&ProductTags).Error; err != nil {
			return fmt.Errorf("seed product tags: %w", err)
		}
		for _, table := range sequences {
			stmt := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))", table, table)
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("reset %s sequence: %w", table, err)
			}
		}
		return nil
	})
}

func skipExisting(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.OnConflict{DoNothing: true})
}

func uintPtr(v uint) *uint {
	return &v
}
