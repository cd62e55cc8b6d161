package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"app/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func invokeGuard(userID interface{}, roles []string, required ...string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set(middleware.CtxUserIDKey, userID)
	}
	if roles != nil {
		c.Set(middleware.CtxUserRolesKey, roles)
	}

	guard := middleware.RequireRoles(required...)
	_ = guard(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	return rec
}

func TestRequireRoles_NoPrincipalIs401(t *testing.T) {
	rec := invokeGuard(nil, nil, "admin")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoles_MismatchIs403(t *testing.T) {
	rec := invokeGuard(int64(7), []string{"customer"}, "admin")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoles_AnyMatchPasses(t *testing.T) {
	rec := invokeGuard(int64(7), []string{"customer", "seller"}, "admin", "seller")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoles_EmptyRequirementOnlyNeedsAuth(t *testing.T) {
	rec := invokeGuard(int64(7), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
