package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"servicos-dashboard/internal/dto"
	"servicos-dashboard/internal/entities"
	"servicos-dashboard/internal/services"
	"servicos-dashboard/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// Imprimir atende GET /imprimir_relatorio: a visão imprimível dos pagamentos
// filtrados e o total somado. Com ?format=xlsx a mesma consulta sai como
// planilha.
func (c *ReportController) Imprimir(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	data, err := c.reportService.GetReport(reqCtx, parseServiceFilter(ctx))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}

	return ctx.Render(http.StatusOK, "imprimir.html", data)
}

var reportHeaders = []string{
	"Funcionários", "Serviço", "Espaço", "Data agendada", "Valor bruto", "Pagamento",
}

func reportRow(item entities.ReportItem) []interface{} {
	pgto := item.PGTO.String
	if !item.PGTO.Valid || pgto == "" {
		pgto = "Pendente"
	}
	return []interface{}{
		item.Employees.String,
		item.ServiceName.String,
		item.SpaceName.String,
		item.ScheduleDate.String,
		item.GrossTotal.Float64,
		pgto,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data *dto.ReportData) error {
	f := excelize.NewFile()
	sheet := "Pagamentos"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "F1", style)

	for i, item := range data.Pagamentos {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := reportRow(item)
		f.SetSheetRow(sheet, cell, &row)
	}

	totalCell, _ := excelize.CoordinatesToCellName(5, len(data.Pagamentos)+2)
	f.SetCellValue(sheet, totalCell, data.TotalBruto)
	labelCell, _ := excelize.CoordinatesToCellName(4, len(data.Pagamentos)+2)
	f.SetCellValue(sheet, labelCell, "Total bruto")

	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "C", 25)
	f.SetColWidth(sheet, "D", "F", 16)

	fileName := fmt.Sprintf("relatorio_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
