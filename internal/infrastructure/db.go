package infrastructure

import (
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/config"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/budget"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/goal"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/logs"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/report"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/transaction"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/user"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("Failed to connect to database")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to obtain database handle")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("Database connection established")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("Running migrations")

	entities := []interface{}{
		&user.User{},
		&transaction.Transaction{},
		&report.Report{},
		&budget.Budget{},
		&goal.Goal{},
		&logs.Entry{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().Err(err).Msg("Failed to migrate entity")
			return err
		}
	}

	logger.Info().Msg("Migrations completed")
	return nil
}
