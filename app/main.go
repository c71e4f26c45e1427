package main

import (
	"context"
	"net/http"

	"servicos-dashboard/internal/routes"
	"servicos-dashboard/migrations"
	"servicos-dashboard/pkg/config"
	"servicos-dashboard/pkg/database/postgresql"
	apperrors "servicos-dashboard/pkg/errors"
	applogger "servicos-dashboard/pkg/logger"
	appmiddleware "servicos-dashboard/pkg/middleware"
	"servicos-dashboard/pkg/utils"
	"servicos-dashboard/web"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! PÂNICO DETECTADO !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Erro interno do servidor", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(appmiddleware.RequestLogger(logger))

	e.Validator = utils.NewValidator(validator.New())
	e.Renderer = web.NewRenderer()
	e.StaticFS("/static", web.StaticFS())

	if err := migrations.Up(cfg.Postgres.DSN); err != nil {
		logger.Fatal("erro ao aplicar migrações", zap.Error(err))
	}

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("não foi possível conectar ao Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	routes.InitRouter(e, dbConn, redisClient, logger, cfg)

	logger.Info("🚀 Servidor iniciado", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("erro ao iniciar o servidor", zap.Error(err))
	}
}
