package fx

import (
	"context"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/config"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/auth"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/logs"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/logger"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/middleware"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.App.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.New()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	authSvc *auth.Service,
	logsSvc *logs.Service,
) {
	router.Use(gin.Recovery())

	routes.Register(router, handler,
		middleware.OptionalAuth(authSvc),
		middleware.RequestLogger(logsSvc),
	)

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Server starting")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Server stopping...")
			return nil
		},
	})
}
