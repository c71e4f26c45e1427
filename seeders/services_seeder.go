package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type sampleService struct {
	OrderID       string
	PGTO          *string
	DATPGTO       *string
	GrossTotal    *float64
	Employees     string
	ScheduleDate  string
	SpaceName     string
	ServiceName   string
	StayExternal  bool
	ServiceStatus string
}

func ptr[T any](v T) *T { return &v }

// SeedSampleServices insere alguns agendamentos de exemplo para demonstração
// local. Inclui os casos que a tela precisa exibir: pago, pendente por NULL,
// pendente por vazio e linhas sem valor (que não devem aparecer).
func SeedSampleServices(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Inserindo serviços de exemplo...")

	samples := []sampleService{
		{OrderID: "PED-0001", PGTO: ptr("Sim"), DATPGTO: ptr("2025-01-10"), GrossTotal: ptr(1250.00),
			Employees: "Ana; Carlos", ScheduleDate: "2025-01-08", SpaceName: "Salão Azul",
			ServiceName: "Buffet completo", StayExternal: false, ServiceStatus: "Concluído"},
		{OrderID: "PED-0002", PGTO: nil, DATPGTO: nil, GrossTotal: ptr(830.50),
			Employees: "Beatriz", ScheduleDate: "2025-01-15", SpaceName: "Jardim",
			ServiceName: "Decoração", StayExternal: true, ServiceStatus: "Agendado"},
		{OrderID: "PED-0003", PGTO: ptr(""), DATPGTO: nil, GrossTotal: ptr(410.00),
			Employees: "Carlos", ScheduleDate: "2025-01-20", SpaceName: "Salão Verde",
			ServiceName: "Som e iluminação", StayExternal: false, ServiceStatus: "Agendado"},
		{OrderID: "PED-0004", PGTO: ptr("Pendente"), DATPGTO: nil, GrossTotal: ptr(2200.00),
			Employees: "Ana; Beatriz", ScheduleDate: "2025-02-01", SpaceName: "Salão Azul",
			ServiceName: "Casamento", StayExternal: false, ServiceStatus: "Agendado"},
		// Sem valor: não deve aparecer em listagem nem em totais.
		{OrderID: "PED-0005", PGTO: nil, DATPGTO: nil, GrossTotal: nil,
			Employees: "Daniel", ScheduleDate: "2025-02-05", SpaceName: "Jardim",
			ServiceName: "Visita técnica", StayExternal: false, ServiceStatus: "Agendado"},
	}

	for _, s := range samples {
		_, err := db.Exec(ctx, `
			INSERT INTO services
				(order_id, "PGTO", "DATPGTO", gross_total, employees, schedule_date,
				 space_name, service_name, stay_external, service_status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (order_id) DO NOTHING`,
			s.OrderID, s.PGTO, s.DATPGTO, s.GrossTotal, s.Employees, s.ScheduleDate,
			s.SpaceName, s.ServiceName, s.StayExternal, s.ServiceStatus,
		)
		if err != nil {
			return fmt.Errorf("erro ao inserir serviço %s: %w", s.OrderID, err)
		}
	}

	log.Println("    - Serviços de exemplo inseridos.")
	return nil
}
