package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"app/internal/config"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey    = "user_id"    // int64
	CtxUserRolesKey = "user_roles" // []string
)

// bearer token検証ミドルウェア。署名が正しくてもDBに行が無ければ401
// （logout / refreshで行を消せば即失効する）。
func AuthToken(cfg config.Config, tokens repo.AccessTokenRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, unauthenticatedJSON())
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, unauthenticatedJSON())
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, unauthenticatedJSON())
			}

			//JWTをパースして検証する
			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, unauthenticatedJSON())
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, unauthenticatedJSON())
			}

			userID, err := parseUserID(claims["sub"])
			if err != nil || userID <= 0 {
				return c.JSON(http.StatusUnauthorized, unauthenticatedJSON())
			}

			jti, ok := claims["jti"].(string)
			if !ok || jti == "" {
				return c.JSON(http.StatusUnauthorized, unauthenticatedJSON())
			}

			//失効済みかどうかはDB側の行で決まる
			record, err := tokens.FindByTokenHash(c.Request().Context(), model.HashAccessTokenID(jti))
			if err == repo.ErrNotFound || (err == nil && record.UserID != userID) {
				return c.JSON(http.StatusUnauthorized, unauthenticatedJSON())
			}
			if err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
			}

			roles := parseRoles(claims["roles"])

			c.Set(CtxUserIDKey, userID)
			c.Set(CtxUserRolesKey, roles)

			return next(c)
		}
	}
}

func unauthenticatedJSON() map[string]string {
	return map[string]string{"message": "Unauthenticated."}
}

// subはエンコーダ次第でfloat64にも文字列にもなる
func parseUserID(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errors.New("invalid sub")
	}
}

func parseRoles(v interface{}) []string {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok && s != "" {
			roles = append(roles, s)
		}
	}
	return roles
}
