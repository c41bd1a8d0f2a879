package configs

import (
	"fmt"

	"engagement-service/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var PGDB *gorm.DB

func ConnectPSQLDatabase() error {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		EnvDBHost(),
		EnvDBUser(),
		EnvDBPassword(),
		EnvDBName(),
		EnvDBPort(),
	)
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.AutoMigrate(&models.Comment{}, &models.CommentLike{}); err != nil {
		return fmt.Errorf("failed to migrate engagement tables: %w", err)
	}

	PGDB = database
	return nil
}
