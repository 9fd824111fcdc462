package fx

import (
	"log"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/config"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
	),
	fx.Invoke(
		loadEnvFiles,
		initLogger,
	),
)

func loadEnvFiles() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env from the current directory: %v", err)
	}
	return nil
}

func initLogger(cfg *config.Config) {
	logger.Init(cfg)
}
