package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	appmw "app/internal/middleware"
	repo "app/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// 各リソースのハンドラをまとめてDIする
type Handlers struct {
	Auth          *handler.AuthHandler
	Users         *handler.UserHandler
	Stores        *handler.StoreHandler
	Categories    *handler.CategoryHandler
	Products      *handler.ProductHandler
	ProductImages *handler.ProductImageHandler
	Carts         *handler.CartHandler
	Orders        *handler.OrderHandler
	Payments      *handler.PaymentHandler
	Reviews       *handler.ReviewHandler
}

// New はechoを組み立ててルートを張る。
func New(cfg config.Config, tokens repo.AccessTokenRepository, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	auth := appmw.AuthToken(cfg, tokens)
	adminOnly := appmw.RequireRoles(model.RoleAdmin)

	h.Auth.RegisterRoutes(e, auth)
	h.Users.RegisterRoutes(e, auth, adminOnly)
	h.Stores.RegisterRoutes(e, auth)
	h.Categories.RegisterRoutes(e, auth)
	h.Products.RegisterRoutes(e, auth)
	h.ProductImages.RegisterRoutes(e, auth)
	h.Carts.RegisterRoutes(e, auth)
	h.Orders.RegisterRoutes(e, auth)
	h.Payments.RegisterRoutes(e, auth)
	h.Reviews.RegisterRoutes(e, auth)

	return e
}

// Start はブロックする。
func Start(e *echo.Echo, cfg config.Config) error {
	return e.Start(":" + cfg.Port)
}
