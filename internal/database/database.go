package database

import (
	"log"

	"github.com/Raphaon/LoveLanguage/internal/config"
	"github.com/Raphaon/LoveLanguage/internal/storage"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the on-device sqlite database.
func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(&storage.Entry{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}
