package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/usecase"
	"app/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCategoryDelete_BlockedWhileProductsRemain(t *testing.T) {
	categories := new(MockCategoryRepository)
	uc := usecase.NewCategoryUsecase(categories, validator.New())

	categories.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	categories.On("HasProducts", mock.Anything, int64(1)).Return(true, nil)

	err := uc.Delete(context.Background(), 1)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
	assert.Equal(t, "Cannot delete category that has products. Remove products first or reassign them.", he.Message)
	categories.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryDelete_SucceedsWhenEmpty(t *testing.T) {
	categories := new(MockCategoryRepository)
	uc := usecase.NewCategoryUsecase(categories, validator.New())

	categories.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	categories.On("HasProducts", mock.Anything, int64(1)).Return(false, nil)
	categories.On("Delete", mock.Anything, int64(1)).Return(nil)

	assert.NoError(t, uc.Delete(context.Background(), 1))
	categories.AssertExpectations(t)
}

func TestCategoryCreate_DuplicateNameIsFieldError(t *testing.T) {
	categories := new(MockCategoryRepository)
	uc := usecase.NewCategoryUsecase(categories, validator.New())

	categories.On("NameExists", mock.Anything, "Electronics", int64(0)).Return(true, nil)

	_, err := uc.Create(context.Background(), usecase.CreateCategoryInput{Name: "Electronics"})

	ve, ok := usecase.AsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "The name has already been taken.", ve.Errors["name"])
}

func TestPaymentDelete_BlockedWhileOrdersRemain(t *testing.T) {
	payments := new(MockPaymentRepository)
	uc := usecase.NewPaymentUsecase(payments, validator.New())

	payments.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	payments.On("HasOrders", mock.Anything, int64(1)).Return(true, nil)

	err := uc.Delete(context.Background(), 1)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
	assert.Equal(t, "Cannot delete payment with associated orders", he.Message)
	payments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
