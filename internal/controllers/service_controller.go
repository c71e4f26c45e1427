package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"servicos-dashboard/internal/dto"
	"servicos-dashboard/internal/entities"
	"servicos-dashboard/internal/services"
	"servicos-dashboard/pkg/utils"
)

type ServiceController struct {
	servicesService services.ServicesServiceInterface
	logger          *zap.Logger
}

func NewServiceController(servicesService services.ServicesServiceInterface, logger *zap.Logger) *ServiceController {
	return &ServiceController{servicesService: servicesService, logger: logger}
}

// parseServiceFilter lê os filtros opcionais comuns a listagem, totais e
// relatório. Parâmetro ausente fica como string vazia (sem filtro).
func parseServiceFilter(ctx echo.Context) entities.ServiceFilter {
	return entities.ServiceFilter{
		StartDate: ctx.QueryParam("start_date"),
		EndDate:   ctx.QueryParam("end_date"),
		Status:    ctx.QueryParam("status"),
		Employee:  ctx.QueryParam("employee"),
		Service:   ctx.QueryParam("service"),
	}
}

// GetServices atende GET /api/services: {"data": [...], "total": N}.
func (c *ServiceController) GetServices(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	page, limit, _ := utils.ParsePaginationParams(ctx.Request().URL.Query())
	query := dto.ListServicesQuery{
		Page:     page,
		Limit:    limit,
		OrderBy:  ctx.QueryParam("order_by"),
		OrderDir: ctx.QueryParam("order_dir"),
		Filter:   parseServiceFilter(ctx),
	}

	res, err := c.servicesService.ListServices(reqCtx, query)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, res)
}

// GetTotals atende GET /api/totais: {"gross_total_sum": F, "services_count": N}.
func (c *ServiceController) GetTotals(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.servicesService.GetTotals(reqCtx, parseServiceFilter(ctx))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, res)
}

// UpdateServices atende PUT /api/services/update. O corpo precisa ser um
// array JSON; qualquer outra coisa é rejeitada inteira com 400. Array vazio
// é aceito e resulta em updated: 0.
func (c *ServiceController) UpdateServices(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var updates []dto.ServiceUpdateDTO
	if err := json.NewDecoder(ctx.Request().Body).Decode(&updates); err != nil || updates == nil {
		if err != nil {
			c.logger.Warn("UpdateServices: corpo inválido", zap.Error(err))
		}
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "Payload inválido"})
	}

	result, err := c.servicesService.ApplyUpdates(reqCtx, updates)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, result)
}
