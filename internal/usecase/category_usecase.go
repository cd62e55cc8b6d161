package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CreateCategoryInput struct {
	Name string `json:"name" validate:"required,max=255"`
}

type UpdateCategoryInput struct {
	Name *string `json:"name" validate:"omitempty,max=255"`
}

type CategoryUsecase struct {
	categories repo.CategoryRepository
	validator  StructValidator
}

func NewCategoryUsecase(categories repo.CategoryRepository, validator StructValidator) *CategoryUsecase {
	return &CategoryUsecase{
		categories: categories,
		validator:  validator,
	}
}

func (u *CategoryUsecase) List(ctx context.Context, q repo.CategoryListQuery) (PageResponse, error) {
	normalizePagination(&q.Pagination, defaultPerPage)
	categories, total, err := u.categories.List(ctx, q)
	if err != nil {
		return PageResponse{}, err
	}
	return PageResponse{Data: categories, Meta: newListMeta(q.Pagination, total)}, nil
}

func (u *CategoryUsecase) Get(ctx context.Context, id int64) (model.Category, error) {
	category, err := u.categories.FindByIDWithProducts(ctx, id)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "Category not found")
	}
	return category, err
}

func (u *CategoryUsecase) Create(ctx context.Context, in CreateCategoryInput) (model.Category, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.Category{}, NewValidationError(errs)
	}

	taken, err := u.categories.NameExists(ctx, in.Name, 0)
	if err != nil {
		return model.Category{}, err
	}
	if taken {
		return model.Category{}, NewValidationError(map[string]string{
			"name": "The name has already been taken.",
		})
	}

	category := model.Category{Name: in.Name}
	if err := u.categories.Create(ctx, &category); err != nil {
		return model.Category{}, err
	}
	return category, nil
}

func (u *CategoryUsecase) Update(ctx context.Context, id int64, in UpdateCategoryInput) (model.Category, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.Category{}, NewValidationError(errs)
	}

	category, err := u.categories.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "Category not found")
	}
	if err != nil {
		return model.Category{}, err
	}

	if in.Name != nil && *in.Name != category.Name {
		taken, err := u.categories.NameExists(ctx, *in.Name, id)
		if err != nil {
			return model.Category{}, err
		}
		if taken {
			return model.Category{}, NewValidationError(map[string]string{
				"name": "The name has already been taken.",
			})
		}
		category.Name = *in.Name
	}

	if err := u.categories.Update(ctx, &category); err != nil {
		return model.Category{}, err
	}
	return category, nil
}

// Delete は商品が1件でも残っていれば409で止める。
func (u *CategoryUsecase) Delete(ctx context.Context, id int64) error {
	ok, err := u.categories.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return NewHTTPError(http.StatusNotFound, "Category not found")
	}

	has, err := u.categories.HasProducts(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return NewHTTPError(http.StatusConflict, "Cannot delete category that has products. Remove products first or reassign them.")
	}

	return u.categories.Delete(ctx, id)
}

func (u *CategoryUsecase) ListProducts(ctx context.Context, id int64) ([]model.Product, error) {
	ok, err := u.categories.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewHTTPError(http.StatusNotFound, "Category not found")
	}
	return u.categories.ListProducts(ctx, id)
}
