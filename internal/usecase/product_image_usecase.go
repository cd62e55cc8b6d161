package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CreateProductImageInput struct {
	Name      string `json:"name" validate:"required,max=255"`
	Path      string `json:"path" validate:"required,max=2048"`
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
}

type UpdateProductImageInput struct {
	Name      *string `json:"name" validate:"omitempty,max=255"`
	Path      *string `json:"path" validate:"omitempty,max=2048"`
	ProductID *int64  `json:"product_id" validate:"omitempty,gt=0"`
}

type ProductImageUsecase struct {
	images    repo.ProductImageRepository
	products  repo.ProductRepository
	validator StructValidator
}

func NewProductImageUsecase(images repo.ProductImageRepository, products repo.ProductRepository, validator StructValidator) *ProductImageUsecase {
	return &ProductImageUsecase{
		images:    images,
		products:  products,
		validator: validator,
	}
}

func (u *ProductImageUsecase) List(ctx context.Context, q repo.ProductImageListQuery) (PageResponse, error) {
	normalizePagination(&q.Pagination, defaultPerPage)
	images, total, err := u.images.List(ctx, q)
	if err != nil {
		return PageResponse{}, err
	}
	return PageResponse{Data: images, Meta: newListMeta(q.Pagination, total)}, nil
}

func (u *ProductImageUsecase) Get(ctx context.Context, id int64) (model.ProductImage, error) {
	image, err := u.images.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.ProductImage{}, NewHTTPError(http.StatusNotFound, "Product image not found")
	}
	return image, err
}

func (u *ProductImageUsecase) Create(ctx context.Context, in CreateProductImageInput) (model.ProductImage, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.ProductImage{}, NewValidationError(errs)
	}

	ok, err := u.products.Exists(ctx, in.ProductID)
	if err != nil {
		return model.ProductImage{}, err
	}
	if !ok {
		return model.ProductImage{}, NewValidationError(map[string]string{
			"product_id": "The selected product_id is invalid.",
		})
	}

	image := model.ProductImage{
		Name:      in.Name,
		Path:      in.Path,
		ProductID: in.ProductID,
	}
	if err := u.images.Create(ctx, &image); err != nil {
		return model.ProductImage{}, err
	}
	return image, nil
}

func (u *ProductImageUsecase) Update(ctx context.Context, id int64, in UpdateProductImageInput) (model.ProductImage, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.ProductImage{}, NewValidationError(errs)
	}

	image, err := u.images.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.ProductImage{}, NewHTTPError(http.StatusNotFound, "Product image not found")
	}
	if err != nil {
		return model.ProductImage{}, err
	}

	if in.ProductID != nil {
		ok, err := u.products.Exists(ctx, *in.ProductID)
		if err != nil {
			return model.ProductImage{}, err
		}
		if !ok {
			return model.ProductImage{}, NewValidationError(map[string]string{
				"product_id": "The selected product_id is invalid.",
			})
		}
		image.ProductID = *in.ProductID
	}
	if in.Name != nil {
		image.Name = *in.Name
	}
	if in.Path != nil {
		image.Path = *in.Path
	}

	if err := u.images.Update(ctx, &image); err != nil {
		return model.ProductImage{}, err
	}
	return image, nil
}

func (u *ProductImageUsecase) Delete(ctx context.Context, id int64) error {
	err := u.images.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Product image not found")
	}
	return err
}
