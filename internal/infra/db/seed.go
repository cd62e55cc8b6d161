package db

import (
	"app/internal/domain/model"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed は参照データとデモデータを投入する。何度実行しても増殖しない。
func Seed(gormDB *gorm.DB) error {
	if err := seedRoles(gormDB); err != nil {
		return err
	}
	return seedCatalog(gormDB)
}

func seedRoles(gormDB *gorm.DB) error {
	roles := []model.Role{
		{Name: model.RoleAdmin, Description: "Administrator with full access"},
		{Name: model.RoleCustomer, Description: "Regular customer"},
		{Name: model.RoleSeller, Description: "Store owner selling products"},
	}

	for i := range roles {
		err := gormDB.Where("name = ?", roles[i].Name).FirstOrCreate(&roles[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func seedCatalog(gormDB *gorm.DB) error {
	pwHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var admin model.User
	err = gormDB.Where("email = ?", "admin@example.com").
		FirstOrCreate(&admin, model.User{
			Name:     "Admin",
			Email:    "admin@example.com",
			Password: string(pwHash),
		}).Error
	if err != nil {
		return err
	}

	var adminRole model.Role
	if err := gormDB.Where("name = ?", model.RoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}
	if err := gormDB.Model(&admin).Association("Roles").Replace(&adminRole); err != nil {
		return err
	}

	var store model.Store
	err = gormDB.Where("name = ?", "Demo Store").
		FirstOrCreate(&store, model.Store{Name: "Demo Store", City: "Jakarta"}).Error
	if err != nil {
		return err
	}

	var category model.Category
	err = gormDB.Where("name = ?", "Electronics").
		FirstOrCreate(&category, model.Category{Name: "Electronics"}).Error
	if err != nil {
		return err
	}

	products := []model.Product{
		{
			Name:       "Wireless Mouse",
			Stock:      120,
			Status:     model.ProductStatusActive,
			Price:      decimal.NewFromFloat(19.99),
			StoreID:    store.ID,
			CategoryID: category.ID,
		},
		{
			Name:       "Mechanical Keyboard",
			Stock:      45,
			Status:     model.ProductStatusActive,
			Price:      decimal.NewFromFloat(89.90),
			StoreID:    store.ID,
			CategoryID: category.ID,
		},
	}
	for i := range products {
		err := gormDB.Where("name = ? AND store_id = ?", products[i].Name, store.ID).
			FirstOrCreate(&products[i]).Error
		if err != nil {
			return err
		}
	}

	payment := model.Payment{
		PaymentMethod: "bank_transfer",
		Status:        model.PaymentStatusPending,
	}
	return gormDB.Where("payment_method = ?", payment.PaymentMethod).FirstOrCreate(&payment).Error
}
