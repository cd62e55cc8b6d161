package handler

import (
	"net/http"

	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /ordersのHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/orders", auth)

	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *OrderHandler) list(c echo.Context) error {
	q := repo.OrderListQuery{
		Pagination: pageQuery(c),
		PaymentID:  queryInt64Ptr(c, "payment_id"),
		CartID:     queryInt64Ptr(c, "cart_id"),
		FromDate:   c.QueryParam("from_date"),
		ToDate:     c.QueryParam("to_date"),
	}
	out, err := h.uc.List(c.Request().Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Order not found"})
	}

	order, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) create(c echo.Context) error {
	var in usecase.CreateOrderInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	order, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) update(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Order not found"})
	}

	var in usecase.UpdateOrderInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	order, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) delete(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Order not found"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Order deleted successfully"})
}
