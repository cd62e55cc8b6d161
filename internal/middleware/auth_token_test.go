package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	repo "app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAccessTokenRepository struct {
	mock.Mock
}

func (m *MockAccessTokenRepository) Create(ctx context.Context, token *model.AccessToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAccessTokenRepository) FindByTokenHash(ctx context.Context, hash string) (model.AccessToken, error) {
	args := m.Called(ctx, hash)
	t, _ := args.Get(0).(model.AccessToken)
	return t, args.Error(1)
}

func (m *MockAccessTokenRepository) DeleteAllByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

const testSecret = "test-secret"

func signToken(t *testing.T, userID int64, jti string, roles []string, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   userID,
		"jti":   jti,
		"roles": roles,
		"iat":   time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func invoke(token string, tokens repo.AccessTokenRepository, next echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := middleware.AuthToken(config.Config{JWTSecret: testSecret}, tokens)
	_ = mw(next)(c)
	return rec
}

func TestAuthToken_ValidTokenSetsContext(t *testing.T) {
	tokens := new(MockAccessTokenRepository)
	jti := "11111111-2222-3333-4444-555555555555"
	tokens.On("FindByTokenHash", mock.Anything, model.HashAccessTokenID(jti)).Return(model.AccessToken{
		ID:     jti,
		UserID: 7,
	}, nil)

	var gotID int64
	var gotRoles []string
	rec := invoke(signToken(t, 7, jti, []string{"admin"}, testSecret), tokens, func(c echo.Context) error {
		gotID, _ = c.Get(middleware.CtxUserIDKey).(int64)
		gotRoles, _ = c.Get(middleware.CtxUserRolesKey).([]string)
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), gotID)
	assert.Equal(t, []string{"admin"}, gotRoles)
}

func TestAuthToken_MissingHeaderIs401(t *testing.T) {
	tokens := new(MockAccessTokenRepository)

	rec := invoke("", tokens, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthToken_RevokedTokenIs401(t *testing.T) {
	tokens := new(MockAccessTokenRepository)
	jti := "11111111-2222-3333-4444-555555555555"
	//署名は正しいがDBの行はもう無い
	tokens.On("FindByTokenHash", mock.Anything, model.HashAccessTokenID(jti)).Return(model.AccessToken{}, repo.ErrNotFound)

	rec := invoke(signToken(t, 7, jti, nil, testSecret), tokens, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthToken_WrongSignatureIs401(t *testing.T) {
	tokens := new(MockAccessTokenRepository)

	rec := invoke(signToken(t, 7, "x", nil, "other-secret"), tokens, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	tokens.AssertNotCalled(t, "FindByTokenHash", mock.Anything, mock.Anything)
}
