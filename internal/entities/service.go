package entities

import (
	"github.com/aarondl/null/v8"
)

// Service é uma linha da tabela services: um agendamento com status de
// pagamento. A chave de atualização é sempre order_id, nunca id_pk.
type Service struct {
	IDPK          int64        `json:"id_pk"`
	OrderID       string       `json:"order_id"`
	PGTO          null.String  `json:"PGTO"`
	DATPGTO       null.String  `json:"DATPGTO"`
	GrossTotal    null.Float64 `json:"gross_total"`
	Employees     null.String  `json:"employees"`
	ScheduleDate  null.String  `json:"schedule_date"`
	SpaceName     null.String  `json:"space_name"`
	ServiceName   null.String  `json:"service_name"`
	StayExternal  null.Bool    `json:"stay_external"`
	ServiceStatus null.String  `json:"service_status"`
}

// ServiceFilter são os filtros opcionais vindos da query string.
// Campo vazio significa filtro ausente.
type ServiceFilter struct {
	StartDate string
	EndDate   string
	Status    string
	Employee  string
	Service   string
}

// ReportItem é uma linha do relatório imprimível.
type ReportItem struct {
	Employees    null.String  `json:"employees"`
	ServiceName  null.String  `json:"service_name"`
	SpaceName    null.String  `json:"space_name"`
	ScheduleDate null.String  `json:"schedule_date"`
	GrossTotal   null.Float64 `json:"gross_total"`
	PGTO         null.String  `json:"PGTO"`
}

// Credential é uma linha da tabela credential. Senha guardada como hash bcrypt.
type Credential struct {
	ID    int64
	Email string
	Senha string
}
