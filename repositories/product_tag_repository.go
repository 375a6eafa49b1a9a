package repositories

import (
	"context"

	"ecommerce-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductTagRepository interface {
	GetTagIDs(ctx context.Context, productID uint) ([]uint, error)
	BulkCreate(ctx context.Context, productID uint, tagIDs []uint) error
	DeleteByTagIDs(ctx context.Context, productID uint, tagIDs []uint) error
}

type productTagRepository struct {
	db *gorm.DB
}

func NewProductTagRepository(db *gorm.DB) ProductTagRepository {
	return &productTagRepository{db: db}
}

func (r *productTagRepository) GetTagIDs(ctx context.Context, productID uint) ([]uint, error) {
	var tagIDs []uint
	err := r.db.WithContext(ctx).Model(&models.ProductTag{}).
		Where("product_id = ?", productID).
		Order("tag_id").
		Pluck("tag_id", &tagIDs).Error
	return tagIDs, err
}

// BulkCreate inserts one join row per tag id. Rows that already exist are
// left alone.
func (r *productTagRepository) BulkCreate(ctx context.Context, productID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]models.ProductTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, models.ProductTag{ProductID: productID, TagID: tagID})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func (r *productTagRepository) DeleteByTagIDs(ctx context.Context, productID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("product_id = ? AND tag_id IN ?", productID, tagIDs).
		Delete(&models.ProductTag{}).Error
}
