package repository

import (
	"context"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

type ProductListQuery struct {
	Pagination
	Name       string
	Status     string
	StoreID    *int64
	CategoryID *int64
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	// store / category / reviews / product_imagesを連れて取得
	FindByIDWithRelations(ctx context.Context, id int64) (model.Product, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error
	ListByStoreID(ctx context.Context, storeID int64) ([]model.Product, error)
}

type ProductImageListQuery struct {
	Pagination
	ProductID *int64
}

type ProductImageRepository interface {
	List(ctx context.Context, q ProductImageListQuery) ([]model.ProductImage, int64, error)
	FindByID(ctx context.Context, id int64) (model.ProductImage, error)
	Create(ctx context.Context, image *model.ProductImage) error
	Update(ctx context.Context, image *model.ProductImage) error
	Delete(ctx context.Context, id int64) error
	ListByProductID(ctx context.Context, productID int64) ([]model.ProductImage, error)
}
