package migrations

import (
	"log"

	"gorm.io/gorm"

	"tailor_shop/internal/models"
)

// RunMigrations brings the schema up to date. The service path never
// drops tables; scripts/init-db.go does destructive resets.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migrations completed successfully!")
	return nil
}
