package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRoles はcontextのrolesとの積集合が空なら403を返す。
// 要求側が空ならrole条件なし（認証だけ）で素通しする。
func RequireRoles(required ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawID := c.Get(CtxUserIDKey)
			if _, ok := rawID.(int64); !ok {
				return c.JSON(http.StatusUnauthorized, unauthenticatedJSON())
			}

			if len(required) == 0 {
				return next(c)
			}

			roles, _ := c.Get(CtxUserRolesKey).([]string)
			for _, have := range roles {
				for _, want := range required {
					if have == want {
						return next(c)
					}
				}
			}

			return c.JSON(http.StatusForbidden, map[string]string{"message": "Forbidden."})
		}
	}
}
