package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CreateStoreInput struct {
	Name         string  `json:"name" validate:"required,max=255"`
	City         string  `json:"city" validate:"required,max=255"`
	ProfileImage *string `json:"profile_image" validate:"omitempty,max=2048"`
}

type UpdateStoreInput struct {
	Name         *string `json:"name" validate:"omitempty,max=255"`
	City         *string `json:"city" validate:"omitempty,max=255"`
	ProfileImage *string `json:"profile_image" validate:"omitempty,max=2048"`
}

type StoreUsecase struct {
	stores    repo.StoreRepository
	products  repo.ProductRepository
	validator StructValidator
}

func NewStoreUsecase(stores repo.StoreRepository, products repo.ProductRepository, validator StructValidator) *StoreUsecase {
	return &StoreUsecase{
		stores:    stores,
		products:  products,
		validator: validator,
	}
}

func (u *StoreUsecase) List(ctx context.Context, q repo.StoreListQuery) (PageResponse, error) {
	normalizePagination(&q.Pagination, defaultPerPage)
	stores, total, err := u.stores.List(ctx, q)
	if err != nil {
		return PageResponse{}, err
	}
	return PageResponse{Data: stores, Meta: newListMeta(q.Pagination, total)}, nil
}

func (u *StoreUsecase) ListAll(ctx context.Context) ([]model.Store, error) {
	return u.stores.ListAll(ctx)
}

func (u *StoreUsecase) Get(ctx context.Context, id int64) (model.Store, error) {
	store, err := u.stores.FindByIDWithProducts(ctx, id)
	if err == repo.ErrNotFound {
		return model.Store{}, NewHTTPError(http.StatusNotFound, "Store not found")
	}
	return store, err
}

func (u *StoreUsecase) Create(ctx context.Context, in CreateStoreInput) (model.Store, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.Store{}, NewValidationError(errs)
	}

	store := model.Store{
		Name:         in.Name,
		City:         in.City,
		ProfileImage: in.ProfileImage,
	}
	if err := u.stores.Create(ctx, &store); err != nil {
		return model.Store{}, err
	}
	return store, nil
}

func (u *StoreUsecase) Update(ctx context.Context, id int64, in UpdateStoreInput) (model.Store, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.Store{}, NewValidationError(errs)
	}

	store, err := u.stores.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Store{}, NewHTTPError(http.StatusNotFound, "Store not found")
	}
	if err != nil {
		return model.Store{}, err
	}

	if in.Name != nil {
		store.Name = *in.Name
	}
	if in.City != nil {
		store.City = *in.City
	}
	if in.ProfileImage != nil {
		store.ProfileImage = in.ProfileImage
	}

	if err := u.stores.Update(ctx, &store); err != nil {
		return model.Store{}, err
	}
	return store, nil
}

func (u *StoreUsecase) Delete(ctx context.Context, id int64) error {
	err := u.stores.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Store not found")
	}
	return err
}

// ListProducts はGET /stores/:id/products。
func (u *StoreUsecase) ListProducts(ctx context.Context, id int64) ([]model.Product, error) {
	ok, err := u.stores.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewHTTPError(http.StatusNotFound, "Store not found")
	}
	return u.products.ListByStoreID(ctx, id)
}

func (u *StoreUsecase) SearchByName(ctx context.Context, name string, p repo.Pagination) (PageResponse, error) {
	normalizePagination(&p, defaultNestedPerPage)
	stores, total, err := u.stores.SearchByName(ctx, name, p)
	if err != nil {
		return PageResponse{}, err
	}
	return PageResponse{Data: stores, Meta: newListMeta(p, total)}, nil
}

func (u *StoreUsecase) ListByCity(ctx context.Context, city string, p repo.Pagination) (PageResponse, error) {
	normalizePagination(&p, defaultNestedPerPage)
	stores, total, err := u.stores.ListByCity(ctx, city, p)
	if err != nil {
		return PageResponse{}, err
	}
	return PageResponse{Data: stores, Meta: newListMeta(p, total)}, nil
}
