package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"servicos-dashboard/internal/controllers"
	"servicos-dashboard/internal/repositories"
	"servicos-dashboard/internal/services"
	"servicos-dashboard/pkg/config"
	"servicos-dashboard/pkg/middleware"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger, cfg *config.Config) {
	// --- 1. REPOSITÓRIOS ---
	serviceRepo := repositories.NewServiceRepository(dbConn, logger)
	credentialRepo := repositories.NewCredentialRepository(dbConn)
	sessionRepo := repositories.NewRedisSessionRepository(redisClient, cfg.Session.TTL)

	// --- 2. SERVIÇOS ---
	servicesService := services.NewServicesService(serviceRepo, logger)
	authService := services.NewAuthService(credentialRepo, sessionRepo, logger)
	reportService := services.NewReportService(serviceRepo, logger)

	// --- 3. CONTROLLERS ---
	serviceController := controllers.NewServiceController(servicesService, logger)
	authController := controllers.NewAuthController(authService, cfg.Session, logger)
	reportController := controllers.NewReportController(reportService, logger)

	// --- 4. ROTAS ---
	sessionMW := middleware.NewSessionMiddleware(sessionRepo, cfg.Session.CookieName, logger)

	e.GET("/", authController.LoginPage)
	e.POST("/", authController.Login)
	e.GET("/logout", authController.Logout)

	e.GET("/dashboard", authController.Dashboard, sessionMW.Auth)
	e.GET("/imprimir_relatorio", reportController.Imprimir, sessionMW.Auth)

	api := e.Group("/api", sessionMW.Auth)
	api.GET("/services", serviceController.GetServices)
	api.PUT("/services/update", serviceController.UpdateServices)
	api.GET("/totais", serviceController.GetTotals)
}
