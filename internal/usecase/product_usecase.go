package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type CreateProductInput struct {
	Name           string          `json:"name" validate:"required,max=255"`
	ThumbnailImage *string         `json:"thumbnail_image" validate:"omitempty,max=2048"`
	Stock          int64           `json:"stock" validate:"gte=0"`
	Status         *string         `json:"status" validate:"omitempty,oneof=active inactive"`
	Description    *string         `json:"description" validate:"omitempty,max=5000"`
	Price          decimal.Decimal `json:"price" validate:"required"`
	StoreID        int64           `json:"store_id" validate:"required,gt=0"`
	CategoryID     int64           `json:"category_id" validate:"required,gt=0"`
}

type UpdateProductInput struct {
	Name           *string          `json:"name" validate:"omitempty,max=255"`
	ThumbnailImage *string          `json:"thumbnail_image" validate:"omitempty,max=2048"`
	Stock          *int64           `json:"stock" validate:"omitempty,gte=0"`
	Status         *string          `json:"status" validate:"omitempty,oneof=active inactive"`
	Description    *string          `json:"description" validate:"omitempty,max=5000"`
	Price          *decimal.Decimal `json:"price"`
	StoreID        *int64           `json:"store_id" validate:"omitempty,gt=0"`
	CategoryID     *int64           `json:"category_id" validate:"omitempty,gt=0"`
}

// GET /products/:id/reviews はmetaに加えてaverage_ratingを返す。
type ProductReviewsResponse struct {
	Data          interface{} `json:"data"`
	AverageRating float64     `json:"average_rating"`
	Meta          ListMeta    `json:"meta"`
}

type ProductUsecase struct {
	products   repo.ProductRepository
	stores     repo.StoreRepository
	categories repo.CategoryRepository
	images     repo.ProductImageRepository
	reviews    repo.ReviewRepository
	validator  StructValidator
}

func NewProductUsecase(
	products repo.ProductRepository,
	stores repo.StoreRepository,
	categories repo.CategoryRepository,
	images repo.ProductImageRepository,
	reviews repo.ReviewRepository,
	validator StructValidator,
) *ProductUsecase {
	return &ProductUsecase{
		products:   products,
		stores:     stores,
		categories: categories,
		images:     images,
		reviews:    reviews,
		validator:  validator,
	}
}

func (u *ProductUsecase) List(ctx context.Context, q repo.ProductListQuery) (PageResponse, error) {
	normalizePagination(&q.Pagination, defaultPerPage)
	products, total, err := u.products.List(ctx, q)
	if err != nil {
		return PageResponse{}, err
	}
	return PageResponse{Data: products, Meta: newListMeta(q.Pagination, total)}, nil
}

func (u *ProductUsecase) Get(ctx context.Context, id int64) (model.Product, error) {
	product, err := u.products.FindByIDWithRelations(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	return product, err
}

func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (model.Product, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.Product{}, NewValidationError(errs)
	}
	if in.Price.IsNegative() {
		return model.Product{}, NewValidationError(map[string]string{
			"price": "The price must be at least 0.",
		})
	}
	if errs, err := u.checkForeignKeys(ctx, &in.StoreID, &in.CategoryID); err != nil {
		return model.Product{}, err
	} else if errs != nil {
		return model.Product{}, NewValidationError(errs)
	}

	status := model.ProductStatusActive
	if in.Status != nil {
		status = model.ProductStatus(*in.Status)
	}

	product := model.Product{
		Name:           in.Name,
		ThumbnailImage: in.ThumbnailImage,
		Stock:          in.Stock,
		Status:         status,
		Description:    in.Description,
		Price:          in.Price,
		StoreID:        in.StoreID,
		CategoryID:     in.CategoryID,
	}
	if err := u.products.Create(ctx, &product); err != nil {
		return model.Product{}, err
	}
	return product, nil
}

func (u *ProductUsecase) Update(ctx context.Context, id int64, in UpdateProductInput) (model.Product, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.Product{}, NewValidationError(errs)
	}
	if in.Price != nil && in.Price.IsNegative() {
		return model.Product{}, NewValidationError(map[string]string{
			"price": "The price must be at least 0.",
		})
	}

	product, err := u.products.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return model.Product{}, err
	}

	if errs, err := u.checkForeignKeys(ctx, in.StoreID, in.CategoryID); err != nil {
		return model.Product{}, err
	} else if errs != nil {
		return model.Product{}, NewValidationError(errs)
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.ThumbnailImage != nil {
		product.ThumbnailImage = in.ThumbnailImage
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Status != nil {
		product.Status = model.ProductStatus(*in.Status)
	}
	if in.Description != nil {
		product.Description = in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.StoreID != nil {
		product.StoreID = *in.StoreID
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}

	if err := u.products.Update(ctx, &product); err != nil {
		return model.Product{}, err
	}
	return product, nil
}

func (u *ProductUsecase) Delete(ctx context.Context, id int64) error {
	err := u.products.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Product not found")
	}
	return err
}

func (u *ProductUsecase) ListImages(ctx context.Context, id int64) ([]model.ProductImage, error) {
	if err := u.mustExist(ctx, id); err != nil {
		return nil, err
	}
	return u.images.ListByProductID(ctx, id)
}

func (u *ProductUsecase) ListReviews(ctx context.Context, id int64, q repo.ReviewListQuery) (ProductReviewsResponse, error) {
	if err := u.mustExist(ctx, id); err != nil {
		return ProductReviewsResponse{}, err
	}

	normalizePagination(&q.Pagination, defaultNestedPerPage)
	reviews, total, err := u.reviews.ListByProductID(ctx, id, q)
	if err != nil {
		return ProductReviewsResponse{}, err
	}

	avg, err := u.reviews.AverageRatingForProduct(ctx, id)
	if err != nil {
		return ProductReviewsResponse{}, err
	}

	return ProductReviewsResponse{
		Data:          reviews,
		AverageRating: avg,
		Meta:          newListMeta(q.Pagination, total),
	}, nil
}

func (u *ProductUsecase) mustExist(ctx context.Context, id int64) error {
	ok, err := u.products.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return NewHTTPError(http.StatusNotFound, "Product not found")
	}
	return nil
}

// 参照先が無いときはフィールドエラー扱いで422にする
func (u *ProductUsecase) checkForeignKeys(ctx context.Context, storeID *int64, categoryID *int64) (map[string]string, error) {
	errs := map[string]string{}

	if storeID != nil {
		ok, err := u.stores.Exists(ctx, *storeID)
		if err != nil {
			return nil, err
		}
		if !ok {
			errs["store_id"] = "The selected store_id is invalid."
		}
	}
	if categoryID != nil {
		ok, err := u.categories.Exists(ctx, *categoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			errs["category_id"] = "The selected category_id is invalid."
		}
	}

	if len(errs) == 0 {
		return nil, nil
	}
	return errs, nil
}
