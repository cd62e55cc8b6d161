package handler

import (
	"net/http"

	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartsのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/carts", auth)

	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *CartHandler) list(c echo.Context) error {
	q := repo.CartListQuery{
		Pagination: pageQuery(c),
		UserID:     queryInt64Ptr(c, "user_id"),
	}
	out, err := h.uc.List(c.Request().Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) detail(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Cart not found"})
	}

	cart, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) create(c echo.Context) error {
	var in usecase.CreateCartInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	cart, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, cart)
}

func (h *CartHandler) update(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Cart not found"})
	}

	var in usecase.UpdateCartInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	cart, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) delete(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Cart not found"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Cart deleted successfully"})
}
