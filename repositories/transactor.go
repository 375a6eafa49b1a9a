package repositories

import (
	"context"

	"gorm.io/gorm"
)

// TxRepositories are the repositories bound to one transaction.
type TxRepositories struct {
	Products    ProductRepository
	ProductTags ProductTagRepository
}

// Transactor runs fn inside a database transaction. Returning an error from
// fn rolls the transaction back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(repos TxRepositories) error) error
}

type gormTransactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) Transactor {
	return &gormTransactor{db: db}
}

func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(repos TxRepositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(TxRepositories{
			Products:    NewProductRepository(tx),
			ProductTags: NewProductTagRepository(tx),
		})
	})
}
