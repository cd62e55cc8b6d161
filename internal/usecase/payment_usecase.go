package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CreatePaymentInput struct {
	PaymentMethod string  `json:"payment_method" validate:"required,max=100"`
	Status        *string `json:"status" validate:"omitempty,oneof=pending paid failed"`
}

type UpdatePaymentInput struct {
	PaymentMethod *string `json:"payment_method" validate:"omitempty,max=100"`
	Status        *string `json:"status" validate:"omitempty,oneof=pending paid failed"`
}

type PaymentUsecase struct {
	payments  repo.PaymentRepository
	validator StructValidator
}

func NewPaymentUsecase(payments repo.PaymentRepository, validator StructValidator) *PaymentUsecase {
	return &PaymentUsecase{
		payments:  payments,
		validator: validator,
	}
}

func (u *PaymentUsecase) List(ctx context.Context, q repo.PaymentListQuery) (PageResponse, error) {
	normalizePagination(&q.Pagination, defaultPerPage)
	payments, total, err := u.payments.List(ctx, q)
	if err != nil {
		return PageResponse{}, err
	}
	return PageResponse{Data: payments, Meta: newListMeta(q.Pagination, total)}, nil
}

func (u *PaymentUsecase) Get(ctx context.Context, id int64) (model.Payment, error) {
	payment, err := u.payments.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Payment{}, NewHTTPError(http.StatusNotFound, "Payment not found")
	}
	return payment, err
}

func (u *PaymentUsecase) Create(ctx context.Context, in CreatePaymentInput) (model.Payment, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.Payment{}, NewValidationError(errs)
	}

	status := model.PaymentStatusPending
	if in.Status != nil {
		status = model.PaymentStatus(*in.Status)
	}

	payment := model.Payment{
		PaymentMethod: in.PaymentMethod,
		Status:        status,
	}
	if err := u.payments.Create(ctx, &payment); err != nil {
		return model.Payment{}, err
	}
	return payment, nil
}

func (u *PaymentUsecase) Update(ctx context.Context, id int64, in UpdatePaymentInput) (model.Payment, error) {
	if errs := u.validator.Struct(in); errs != nil {
		return model.Payment{}, NewValidationError(errs)
	}

	payment, err := u.payments.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Payment{}, NewHTTPError(http.StatusNotFound, "Payment not found")
	}
	if err != nil {
		return model.Payment{}, err
	}

	if in.PaymentMethod != nil {
		payment.PaymentMethod = *in.PaymentMethod
	}
	if in.Status != nil {
		payment.Status = model.PaymentStatus(*in.Status)
	}

	payment.Order = nil

	if err := u.payments.Update(ctx, &payment); err != nil {
		return model.Payment{}, err
	}
	return payment, nil
}

// Delete は注文が紐付いている支払いを409で守る。
func (u *PaymentUsecase) Delete(ctx context.Context, id int64) error {
	ok, err := u.payments.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return NewHTTPError(http.StatusNotFound, "Payment not found")
	}

	has, err := u.payments.HasOrders(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return NewHTTPError(http.StatusConflict, "Cannot delete payment with associated orders")
	}

	return u.payments.Delete(ctx, id)
}
