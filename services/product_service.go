package services

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-api/models"
	"ecommerce-api/repositories"

	"gorm.io/gorm"
)

type ProductService interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uint, req models.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, id uint) error
}

type productService struct {
	productRepo    repositories.ProductRepository
	productTagRepo repositories.ProductTagRepository
	tagRepo        repositories.TagRepository
	categoryRepo   repositories.CategoryRepository
	transactor     repositories.Transactor
}

func NewProductService(
	productRepo repositories.ProductRepository,
	productTagRepo repositories.ProductTagRepository,
	tagRepo repositories.TagRepository,
	categoryRepo repositories.CategoryRepository,
	transactor repositories.Transactor,
) ProductService {
	return &productService{
		productRepo:    productRepo,
		productTagRepo: productTagRepo,
		tagRepo:        tagRepo,
		categoryRepo:   categoryRepo,
		transactor:     transactor,
	}
}

func (s *productService) GetProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		normalizeTags(&products[i])
	}
	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	normalizeTags(product)
	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	if req.Price != nil && req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	}
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	tagIDs := uniqueTagIDs(req.TagIDs)
	tags, err := s.resolveTags(ctx, tagIDs)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		ProductName: req.ProductName,
		Stock:       models.DefaultStock,
		CategoryID:  req.CategoryID,
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	err = s.transactor.WithinTransaction(ctx, func(repos repositories.TxRepositories) error {
		if err := repos.Products.Create(ctx, product); err != nil {
			return err
		}
		return repos.ProductTags.BulkCreate(ctx, product.ID, tagIDs)
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	product.Tags = tags
	return product, nil
}

// UpdateProduct applies the scalar fields of req and, only when req carries
// a tag list, reconciles the product's tags against it. Everything runs in
// one transaction.
func (s *productService) UpdateProduct(ctx context.Context, id uint, req models.UpdateProductRequest) error {
	if req.Price != nil && req.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	}
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return err
	}
	if req.TagIDs != nil {
		if _, err := s.resolveTags(ctx, uniqueTagIDs(*req.TagIDs)); err != nil {
			return err
		}
	}

	err := s.transactor.WithinTransaction(ctx, func(repos repositories.TxRepositories) error {
		if fields := req.Fields(); len(fields) > 0 {
			updated, err := repos.Products.Update(ctx, id, fields)
			if err != nil {
				return err
			}
			if updated == 0 {
				return models.ErrNotFound
			}
		} else {
			exists, err := repos.Products.Exists(ctx, id)
			if err != nil {
				return err
			}
			if !exists {
				return models.ErrNotFound
			}
		}

		if req.TagIDs == nil {
			return nil
		}

		current, err := repos.ProductTags.GetTagIDs(ctx, id)
		if err != nil {
			return err
		}
		diff := ReconcileTags(current, *req.TagIDs)
		if diff.Empty() {
			return nil
		}
		if err := repos.ProductTags.DeleteByTagIDs(ctx, id, diff.ToRemove); err != nil {
			return err
		}
		return repos.ProductTags.BulkCreate(ctx, id, diff.ToAdd)
	})
	return translateStoreError(err)
}

func (s *productService) DeleteProduct(ctx context.Context, id uint) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (s *productService) checkCategory(ctx context.Context, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	exists, err := s.categoryRepo.Exists(ctx, *categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: category %d does not exist", models.ErrValidation, *categoryID)
	}
	return nil
}

// resolveTags loads the tags for ids and fails when any of them is unknown.
// Tags are never created implicitly.
func (s *productService) resolveTags(ctx context.Context, ids []uint) ([]models.Tag, error) {
	tags, err := s.tagRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(tags) == len(ids) {
		if tags == nil {
			tags = []models.Tag{}
		}
		return tags, nil
	}

	found := make(map[uint]struct{}, len(tags))
	for _, t := range tags {
		found[t.ID] = struct{}{}
	}
	var missing []uint
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return nil, fmt.Errorf("%w: unknown tag ids %v", models.ErrValidation, missing)
}

func normalizeTags(p *models.Product) {
	if p.Tags == nil {
		p.Tags = []models.Tag{}
	}
}

func translateStoreError(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return err
}
