package handler

import (
	"net/http"

	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /usersのHTTP
type UserHandler struct {
	uc *usecase.UserUsecase
}

// DI
func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// roles差し替えだけadmin専用
func (h *UserHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	g := e.Group("/users", auth)

	g.GET("", h.list)
	g.GET("/search/name/:name", h.searchByName)
	g.GET("/search/email/:email", h.searchByEmail)
	g.GET("/:id", h.detail)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.PUT("/:id/roles", h.updateRoles, adminOnly)
	g.GET("/:id/with-reviews", h.withReviews)
	g.GET("/:id/with-carts", h.withCarts)
	g.GET("/:id/carts", h.carts)
	g.GET("/:id/orders", h.orders)
	g.GET("/:id/reviews", h.reviews)
}

func (h *UserHandler) list(c echo.Context) error {
	ctx := c.Request().Context()

	//クエリが無いときは従来どおり素の配列
	if !hasListParams(c, "name", "email", "address", "from_date", "to_date") {
		users, err := h.uc.ListAll(ctx)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, users)
	}

	q := repo.UserListQuery{
		Pagination: pageQuery(c),
		Name:       c.QueryParam("name"),
		Email:      c.QueryParam("email"),
		Address:    c.QueryParam("address"),
		FromDate:   c.QueryParam("from_date"),
		ToDate:     c.QueryParam("to_date"),
	}
	out, err := h.uc.List(ctx, q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) detail(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "User not found"})
	}

	user, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) create(c echo.Context) error {
	var in usecase.CreateUserInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	user, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) update(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "User not found"})
	}

	var in usecase.UpdateUserInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	user, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) delete(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "User not found"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "User deleted successfully"})
}

func (h *UserHandler) updateRoles(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "User not found"})
	}

	var in usecase.UpdateUserRolesInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	user, err := h.uc.UpdateRoles(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) withReviews(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "User not found"})
	}

	user, err := h.uc.GetWithReviews(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) withCarts(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "User not found"})
	}

	user, err := h.uc.GetWithCarts(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) carts(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "User not found"})
	}

	carts, err := h.uc.ListCarts(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, carts)
}

func (h *UserHandler) orders(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "User not found"})
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *UserHandler) reviews(c echo.Context) error {
	id, ok := bindID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "User not found"})
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

func (h *UserHandler) searchByName(c echo.Context) error {
	out, err := h.uc.SearchByName(c.Request().Context(), c.Param("name"), pageQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) searchByEmail(c echo.Context) error {
	out, err := h.uc.SearchByEmail(c.Request().Context(), c.Param("email"), pageQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
