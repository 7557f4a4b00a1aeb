package main

import (
	"fmt"
	"log"

	"tailor_shop/internal/config"
	"tailor_shop/internal/database"
	"tailor_shop/internal/models"
	"tailor_shop/internal/repository"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Create a sample customer so a fresh install is not empty
	fmt.Println("Creating sample customer...")
	customerRepo := repository.NewCustomerRepository(db)

	shirt := "40,28,15/16,32"
	pants := "38,30,40"
	sample := &models.Customer{
		Name:              "Sample Customer",
		Phone:             "9999999999",
		ShirtMeasurements: &shirt,
		PantsMeasurements: &pants,
	}
	if err := customerRepo.Create(sample); err != nil {
		log.Printf("Warning: Failed to create sample customer: %v", err)
	} else {
		fmt.Println("Sample customer created successfully")
	}

	fmt.Println("Database initialization completed successfully!")
}
