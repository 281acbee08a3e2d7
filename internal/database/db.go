package database

import (
	"pos-backend/internal/config"
	"pos-backend/internal/logging"
	"pos-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logging.Log.Fatalf("cannot connect to database: %v", err)
	}

	// general_settings gains a unique index on singleton_key. Installations
	// that predate the index may hold duplicate rows; keep the newest one so
	// AutoMigrate can create the index.
	if DB.Migrator().HasTable(&models.GeneralSetting{}) {
		var count int64
		DB.Raw("SELECT COUNT(*) FROM general_settings").Scan(&count)
		if count > 1 {
			logging.Log.Warnf("general_settings holds %d rows, keeping the newest", count)
			DB.Exec(`DELETE FROM general_settings WHERE id NOT IN (SELECT id FROM general_settings ORDER BY updated_at DESC LIMIT 1)`)
		}
		DB.Exec(`UPDATE general_settings SET singleton_key = 'global' WHERE singleton_key IS NULL OR singleton_key = ''`)
	}

	err = DB.AutoMigrate(
		&models.Branch{},
		&models.User{},
		&models.Member{},
		&models.CategoryProduct{},
		&models.Product{},
		&models.Supplier{},
		&models.Sale{},
		&models.SaleDetail{},
		&models.Purchase{},
		&models.PurchaseDetail{},
		&models.ReturnOfGoods{},
		&models.StockMutation{},
		&models.Shift{},
		&models.ShiftActivityLog{},
		&models.AuditLog{},
		&models.Promo{},
		&models.LoyaltyPoint{},
		&models.GeneralSetting{},
		&models.UserAccessRight{},
	)
	if err != nil {
		logging.Log.Fatalf("AutoMigrate failed: %v", err)
	}

	logging.Log.Info("database connected, migration complete")
}
