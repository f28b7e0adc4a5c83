package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"santara/internal/models/db_models"
)

// InitPostgresql opens the connection pool. TranslateError is on so a
// unique-constraint violation surfaces as gorm.ErrDuplicatedKey instead
// of a driver-specific code.
func InitPostgresql(dsn string) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

// Migrate creates or updates the four content tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Province{},
		&db_models.Tenun{},
		&db_models.Article{},
		&db_models.OutfitInspo{},
	)
}
