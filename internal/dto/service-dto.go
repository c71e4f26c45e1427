package dto

import (
	"github.com/aarondl/null/v8"

	"servicos-dashboard/internal/entities"
)

// ListServicesQuery reúne tudo que GET /api/services aceita.
type ListServicesQuery struct {
	Page     int
	Limit    int
	OrderBy  string
	OrderDir string
	Filter   entities.ServiceFilter
}

// ServiceListResponse é o corpo de GET /api/services.
type ServiceListResponse struct {
	Data  []entities.Service `json:"data"`
	Total uint64             `json:"total"`
}

// TotalsResponse é o corpo de GET /api/totais.
type TotalsResponse struct {
	GrossTotalSum float64 `json:"gross_total_sum"`
	ServicesCount uint64  `json:"services_count"`
}

// ServiceUpdateDTO é um item do lote de PUT /api/services/update.
type ServiceUpdateDTO struct {
	OrderID string      `json:"order_id"`
	PGTO    null.String `json:"PGTO"`
	DATPGTO null.String `json:"DATPGTO"`
}

// UpdateError descreve a falha de um único item do lote. Quando o item nem
// tinha order_id, devolvemos o próprio item em Row, como o cliente enviou.
type UpdateError struct {
	OrderID string            `json:"order_id,omitempty"`
	Row     *ServiceUpdateDTO `json:"row,omitempty"`
	Error   string            `json:"error"`
}

// UpdateResult é o corpo de PUT /api/services/update. Errors só aparece
// quando houve ao menos uma falha.
type UpdateResult struct {
	Message string        `json:"message"`
	Updated int           `json:"updated"`
	Errors  []UpdateError `json:"errors,omitempty"`
}

// ReportData alimenta a página imprimível e a exportação em Excel.
type ReportData struct {
	Pagamentos []entities.ReportItem
	TotalBruto float64
}
