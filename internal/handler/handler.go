package handler

import (
	"net/http"
	"strconv"

	"app/internal/middleware"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ValidationResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// usecaseのエラーをHTTPへ変換する共通出口。
// 想定外のエラーは詳細を返さない（ログにだけ出す）。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := usecase.AsValidationError(err); ok {
		return c.JSON(http.StatusUnprocessableEntity, ValidationResponse{
			Message: "Validation failed",
			Errors:  ve.Errors,
		})
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, MessageResponse{Message: he.Message})
	}

	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Internal server error"})
}

func bindID(c echo.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// page / per_page / sort_by / sort_order をクエリから拾う。
// 数値でない・範囲外の値は無視してデフォルトに落とす。
func pageQuery(c echo.Context) repo.Pagination {
	p := repo.Pagination{
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: c.QueryParam("sort_order"),
	}
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("per_page")); err == nil && v > 0 {
		p.PerPage = v
	}
	return p
}

// 従来互換: クエリが何も無いGET /users・GET /storesは素の配列を返すため、
// 一覧系パラメータの有無を見る。
func hasListParams(c echo.Context, filters ...string) bool {
	keys := append([]string{"page", "per_page", "sort_by", "sort_order"}, filters...)
	for _, k := range keys {
		if c.QueryParam(k) != "" {
			return true
		}
	}
	return false
}

// AuthTokenミドルウェアが積んだuser_idを取り出す
func currentUserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(middleware.CtxUserIDKey).(int64)
	return id, ok
}

func queryInt64Ptr(c echo.Context, key string) *int64 {
	v := c.QueryParam(key)
	if v == "" {
		return nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

func queryIntPtr(c echo.Context, key string) *int {
	v := c.QueryParam(key)
	if v == "" {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &i
}
