package handler

import (
	"net/http"

	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /categoriesのHTTP
type CategoryHandler struct {
	uc *usecase.CategoryUsecase
}

// DI
func NewCategoryHandler(uc *usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/categories", auth)

	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.GET("/:id/products", h.products)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *CategoryHandler) list(c echo.Context) error {
	q := repo.CategoryListQuery{
		Pagination: pageQuery(c),
		Name:       c.QueryParam("name"),
	}
	out, err := h.uc.List(c.Request().Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CategoryHandler) detail(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Category not found"})
	}

	category, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) create(c echo.Context) error {
	var in usecase.CreateCategoryInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	category, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) update(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Category not found"})
	}

	var in usecase.UpdateCategoryInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	category, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) delete(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Category not found"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Category deleted successfully"})
}

func (h *CategoryHandler) products(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Category not found"})
	}

	products, err := h.uc.ListProducts(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}
