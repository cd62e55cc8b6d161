package main

import (
	"context"
	"log"
	"os"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"
)

func main() {
	//.envは無くても動く（本番は環境変数で渡す）
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:  "api",
		Usage: "E-commerce catalog API",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, gormDB, err := setup()
					if err != nil {
						return err
					}
					return serve(cfg, gormDB)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					_, gormDB, err := setup()
					if err != nil {
						return err
					}
					if err := db.AutoMigrate(gormDB); err != nil {
						return err
					}
					log.Println("migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed roles and demo catalog data",
				Action: func(ctx context.Context, c *cli.Command) error {
					_, gormDB, err := setup()
					if err != nil {
						return err
					}
					if err := db.Seed(gormDB); err != nil {
						return err
					}
					log.Println("seed complete")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func setup() (config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	gormDB, err := db.Connect(cfg)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, gormDB, nil
}

// serve は依存を手で組み立てる。service locatorは使わない。
func serve(cfg config.Config, gormDB *gorm.DB) error {
	//repository
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	roleRepo := infraRepo.NewRoleGormRepository(gormDB)
	tokenRepo := infraRepo.NewAccessTokenGormRepository(gormDB)
	storeRepo := infraRepo.NewStoreGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	imageRepo := infraRepo.NewProductImageGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	paymentRepo := infraRepo.NewPaymentGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//validator
	rv := validator.New()

	//usecase
	authUC := usecase.NewAuthUsecase(cfg, userRepo, roleRepo, tokenRepo, txManager, rv)
	userUC := usecase.NewUserUsecase(userRepo, roleRepo, cartRepo, orderRepo, reviewRepo, txManager, rv)
	storeUC := usecase.NewStoreUsecase(storeRepo, productRepo, rv)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, rv)
	productUC := usecase.NewProductUsecase(productRepo, storeRepo, categoryRepo, imageRepo, reviewRepo, rv)
	imageUC := usecase.NewProductImageUsecase(imageRepo, productRepo, rv)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo, userRepo, rv)
	orderUC := usecase.NewOrderUsecase(orderRepo, cartRepo, paymentRepo, txManager, rv)
	paymentUC := usecase.NewPaymentUsecase(paymentRepo, rv)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, userRepo, productRepo, rv)

	//handler
	handlers := server.Handlers{
		Auth:          handler.NewAuthHandler(authUC),
		Users:         handler.NewUserHandler(userUC),
		Stores:        handler.NewStoreHandler(storeUC),
		Categories:    handler.NewCategoryHandler(categoryUC),
		Products:      handler.NewProductHandler(productUC),
		ProductImages: handler.NewProductImageHandler(imageUC),
		Carts:         handler.NewCartHandler(cartUC),
		Orders:        handler.NewOrderHandler(orderUC),
		Payments:      handler.NewPaymentHandler(paymentUC),
		Reviews:       handler.NewReviewHandler(reviewUC),
	}

	e := server.New(cfg, tokenRepo, handlers)
	return server.Start(e, cfg)
}
