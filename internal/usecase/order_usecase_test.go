package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/usecase"
	"app/internal/validator"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderUsecase(orders *MockOrderRepository, carts *MockCartRepository, payments *MockPaymentRepository) *usecase.OrderUsecase {
	tx := &fakeTxManager{repos: fakeTxRepos{
		carts:    carts,
		orders:   orders,
		payments: payments,
	}}
	return usecase.NewOrderUsecase(orders, carts, payments, tx, validator.New())
}

func TestOrderCreate_Succeeds(t *testing.T) {
	orders := new(MockOrderRepository)
	carts := new(MockCartRepository)
	payments := new(MockPaymentRepository)
	uc := newOrderUsecase(orders, carts, payments)

	carts.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	payments.On("Exists", mock.Anything, int64(2)).Return(true, nil)
	orders.On("CartHasOrder", mock.Anything, int64(1), int64(0)).Return(false, nil)
	orders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

	order, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		FinalPrice: decimal.RequireFromString("4501.50"),
		CartID:     1,
		PaymentID:  2,
		OrderDate:  "2026-08-28",
	})

	assert.NoError(t, err)
	assert.Equal(t, "2026-08-28", order.OrderDate.Format("2006-01-02"))
	orders.AssertExpectations(t)
}

func TestOrderCreate_CartAlreadyOrderedIsConflict(t *testing.T) {
	orders := new(MockOrderRepository)
	carts := new(MockCartRepository)
	payments := new(MockPaymentRepository)
	uc := newOrderUsecase(orders, carts, payments)

	carts.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	payments.On("Exists", mock.Anything, int64(2)).Return(true, nil)
	orders.On("CartHasOrder", mock.Anything, int64(1), int64(0)).Return(true, nil)

	_, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		FinalPrice: decimal.RequireFromString("100.00"),
		CartID:     1,
		PaymentID:  2,
		OrderDate:  "2026-08-28",
	})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
	assert.Equal(t, "This cart already has an associated order", he.Message)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderCreate_BadDateIsFieldError(t *testing.T) {
	orders := new(MockOrderRepository)
	carts := new(MockCartRepository)
	payments := new(MockPaymentRepository)
	uc := newOrderUsecase(orders, carts, payments)

	_, err := uc.Create(context.Background(), usecase.CreateOrderInput{
		FinalPrice: decimal.RequireFromString("100.00"),
		CartID:     1,
		PaymentID:  2,
		OrderDate:  "28-08-2026",
	})

	ve, ok := usecase.AsValidationError(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Errors, "order_date")
}

func TestOrderUpdate_MovingToOrderedCartIsConflict(t *testing.T) {
	orders := new(MockOrderRepository)
	carts := new(MockCartRepository)
	payments := new(MockPaymentRepository)
	uc := newOrderUsecase(orders, carts, payments)

	orders.On("FindByID", mock.Anything, int64(10)).Return(model.Order{
		ID:     10,
		CartID: 1,
	}, nil)
	carts.On("Exists", mock.Anything, int64(2)).Return(true, nil)
	orders.On("CartHasOrder", mock.Anything, int64(2), int64(10)).Return(true, nil)

	newCart := int64(2)
	_, err := uc.Update(context.Background(), 10, usecase.UpdateOrderInput{CartID: &newCart})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
}

func TestOrderUpdate_KeepingOwnCartIsAllowed(t *testing.T) {
	orders := new(MockOrderRepository)
	carts := new(MockCartRepository)
	payments := new(MockPaymentRepository)
	uc := newOrderUsecase(orders, carts, payments)

	orders.On("FindByID", mock.Anything, int64(10)).Return(model.Order{
		ID:     10,
		CartID: 1,
	}, nil)
	orders.On("Update", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

	//cart_idが自分のままなら競合チェック不要
	sameCart := int64(1)
	price := decimal.RequireFromString("99.99")
	_, err := uc.Update(context.Background(), 10, usecase.UpdateOrderInput{
		CartID:     &sameCart,
		FinalPrice: &price,
	})

	assert.NoError(t, err)
	orders.AssertNotCalled(t, "CartHasOrder", mock.Anything, mock.Anything, mock.Anything)
}
