package database

import (
	"fmt"
	"log"
	"os"

	"gallery-app/internal/domain/inquiries"
	"gallery-app/internal/domain/sales"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/domain/works"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate creates or updates the schema for every domain model. Tests
// run it against their own in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&users.VerificationToken{},

		&works.Artist{},
		&works.Category{},
		&works.Technique{},
		&works.Artwork{},

		&inquiries.Inquiry{},
		&sales.Sale{},
	)
}
