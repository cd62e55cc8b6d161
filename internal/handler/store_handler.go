package handler

import (
	"net/http"

	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /storesのHTTP
type StoreHandler struct {
	uc *usecase.StoreUsecase
}

// DI
func NewStoreHandler(uc *usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

func (h *StoreHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/stores", auth)

	g.GET("", h.list)
	g.GET("/search", h.search)
	g.GET("/city/:city", h.byCity)
	g.GET("/:id", h.detail)
	g.GET("/:id/products", h.products)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *StoreHandler) list(c echo.Context) error {
	ctx := c.Request().Context()

	if !hasListParams(c, "name", "city") {
		stores, err := h.uc.ListAll(ctx)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, stores)
	}

	q := repo.StoreListQuery{
		Pagination: pageQuery(c),
		Name:       c.QueryParam("name"),
		City:       c.QueryParam("city"),
	}
	out, err := h.uc.List(ctx, q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StoreHandler) detail(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Store not found"})
	}

	store, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) create(c echo.Context) error {
	var in usecase.CreateStoreInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	store, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, store)
}

func (h *StoreHandler) update(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Store not found"})
	}

	var in usecase.UpdateStoreInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	store, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) delete(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Store not found"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Store deleted successfully"})
}

func (h *StoreHandler) products(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Store not found"})
	}

	products, err := h.uc.ListProducts(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *StoreHandler) search(c echo.Context) error {
	out, err := h.uc.SearchByName(c.Request().Context(), c.QueryParam("name"), pageQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StoreHandler) byCity(c echo.Context) error {
	out, err := h.uc.ListByCity(c.Request().Context(), c.Param("city"), pageQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
