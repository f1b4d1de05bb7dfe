// Command migrate creates or updates the schema and seeds the initial admin
// account from ADMIN_EMAIL/ADMIN_PASSWORD.
package main

import (
	"log"
	"os"

	"rating-platform-api/config"
	"rating-platform-api/controllers"
	"rating-platform-api/models"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer config.CloseDB(db)

	err = db.AutoMigrate(
		&models.User{},
		&models.UserToken{},
		&models.Department{},
		&models.ImpactArea{},
		&models.District{},
		&models.Position{},
		&models.Institution{},
		&models.Nominee{},
		&models.RatingCategory{},
		&models.InstitutionRatingCategory{},
		&models.Rating{},
		&models.Comment{},
	)
	if err != nil {
		log.Fatal("Migration failed: ", err)
	}
	log.Println("Schema migrated")

	if err := seedAdmin(db); err != nil {
		log.Fatal("Admin seed failed: ", err)
	}
}

func seedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin account already exists")
		return nil
	}

	hashed, err := controllers.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("Admin account %s created", email)
	return nil
}
