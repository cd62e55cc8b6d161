package handler

import (
	"net/http"

	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /paymentsのHTTP
type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

// DI
func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/payments", auth)

	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *PaymentHandler) list(c echo.Context) error {
	q := repo.PaymentListQuery{
		Pagination: pageQuery(c),
		Status:     c.QueryParam("status"),
	}
	out, err := h.uc.List(c.Request().Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) detail(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Payment not found"})
	}

	payment, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) create(c echo.Context) error {
	var in usecase.CreatePaymentInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	payment, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) update(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Payment not found"})
	}

	var in usecase.UpdatePaymentInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	payment, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) delete(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Payment not found"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Payment deleted successfully"})
}
