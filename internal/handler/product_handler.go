package handler

import (
	"net/http"

	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /productsのHTTP
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/products", auth)

	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.GET("/:id/images", h.images)
	g.GET("/:id/reviews", h.reviews)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *ProductHandler) list(c echo.Context) error {
	q := repo.ProductListQuery{
		Pagination: pageQuery(c),
		Name:       c.QueryParam("name"),
		Status:     c.QueryParam("status"),
		StoreID:    queryInt64Ptr(c, "store_id"),
		CategoryID: queryInt64Ptr(c, "category_id"),
		MinPrice:   queryDecimalPtr(c, "min_price"),
		MaxPrice:   queryDecimalPtr(c, "max_price"),
	}
	out, err := h.uc.List(c.Request().Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Product not found"})
	}

	product, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) create(c echo.Context) error {
	var in usecase.CreateProductInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	product, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Product not found"})
	}

	var in usecase.UpdateProductInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	product, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) delete(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Product not found"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}

func (h *ProductHandler) images(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Product not found"})
	}

	images, err := h.uc.ListImages(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, images)
}

func (h *ProductHandler) reviews(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Product not found"})
	}

	q := repo.ReviewListQuery{
		Pagination: pageQuery(c),
		Rating:     queryIntPtr(c, "rating"),
		FromDate:   c.QueryParam("from_date"),
		ToDate:     c.QueryParam("to_date"),
	}
	out, err := h.uc.ListReviews(c.Request().Context(), id, q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func queryDecimalPtr(c echo.Context, key string) *decimal.Decimal {
	v := c.QueryParam(key)
	if v == "" {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil
	}
	return &d
}
