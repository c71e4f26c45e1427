package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"servicos-dashboard/internal/entities"
)

type ServiceRepositoryInterface interface {
	ListServices(ctx context.Context, filter entities.ServiceFilter, page, limit int, orderBy, orderDir string) ([]entities.Service, uint64, error)
	GetTotals(ctx context.Context, filter entities.ServiceFilter) (float64, uint64, error)
	UpdatePayment(ctx context.Context, orderID string, pgto, datpgto null.String) error
	GetReport(ctx context.Context, filter entities.ServiceFilter) ([]entities.ReportItem, error)
}

type ServiceRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewServiceRepository(storage *pgxpool.Pool, logger *zap.Logger) ServiceRepositoryInterface {
	return &ServiceRepository{storage: storage, logger: logger}
}

// ListServices executa duas consultas independentes sobre o mesmo conjunto de
// predicados: a página de linhas e a contagem exata do total filtrado.
func (r *ServiceRepository) ListServices(ctx context.Context, filter entities.ServiceFilter, page, limit int, orderBy, orderDir string) ([]entities.Service, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	offset := pageOffset(page, limit)

	preds := append(billablePredicates(), filterPredicates(filter)...)

	dataBuilder := psql.Select(serviceProjection...).From("services")
	dataBuilder = applyPredicates(dataBuilder, preds)
	dataBuilder = dataBuilder.
		OrderBy(resolveOrderBy(orderBy) + " " + resolveOrderDir(orderDir)).
		Limit(uint64(limit)).
		Offset(uint64(offset))

	dataQuery, dataArgs, err := dataBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao montar a consulta de serviços: %w", err)
	}

	rows, err := r.storage.Query(ctx, dataQuery, dataArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao buscar serviços: %w", err)
	}
	defer rows.Close()

	services := make([]entities.Service, 0)
	for rows.Next() {
		var s entities.Service
		err := rows.Scan(
			&s.IDPK, &s.OrderID, &s.PGTO, &s.DATPGTO, &s.GrossTotal,
			&s.Employees, &s.ScheduleDate, &s.SpaceName, &s.ServiceName,
			&s.StayExternal, &s.ServiceStatus,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao ler linha de serviço: %w", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro ao percorrer serviços: %w", err)
	}

	countBuilder := psql.Select("COUNT(*)").From("services")
	countBuilder = applyPredicates(countBuilder, preds)

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao montar a consulta de contagem: %w", err)
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar serviços: %w", err)
	}

	return services, total, nil
}

// GetTotals calcula soma e contagem num único agregado SQL, sobre exatamente
// os mesmos predicados da listagem. COALESCE garante zero quando nada casa.
func (r *ServiceRepository) GetTotals(ctx context.Context, filter entities.ServiceFilter) (float64, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	preds := append(billablePredicates(), filterPredicates(filter)...)

	builder := psql.Select("COALESCE(SUM(gross_total), 0)", "COUNT(*)").From("services")
	builder = applyPredicates(builder, preds)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao montar a consulta de totais: %w", err)
	}

	var sum float64
	var count uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&sum, &count); err != nil {
		return 0, 0, fmt.Errorf("erro ao buscar totais: %w", err)
	}

	return sum, count, nil
}

// UpdatePayment grava status e data de pagamento de um único pedido,
// endereçado por order_id. DATPGTO inválido vira NULL.
func (r *ServiceRepository) UpdatePayment(ctx context.Context, orderID string, pgto, datpgto null.String) error {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.Update("services").
		Set(colPGTO, pgto).
		Set(colDATPGTO, datpgto).
		Where(sq.Eq{"order_id": orderID})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao montar a atualização do pedido %s: %w", orderID, err)
	}

	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar o pedido %s: %w", orderID, err)
	}

	return nil
}

// GetReport busca as linhas do relatório imprimível. Diferente da listagem,
// aqui a exclusão é gross_total > 0, como sempre foi na tela de impressão.
func (r *ServiceRepository) GetReport(ctx context.Context, filter entities.ServiceFilter) ([]entities.ReportItem, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.Select(
		"employees",
		"service_name",
		"space_name",
		"schedule_date::text AS schedule_date",
		"gross_total",
		colPGTO,
	).From("services").Where(sq.Gt{"gross_total": 0})
	builder = applyPredicates(builder, filterPredicates(filter))
	builder = builder.OrderBy("schedule_date ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao montar a consulta do relatório: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar o relatório: %w", err)
	}
	defer rows.Close()

	items := make([]entities.ReportItem, 0)
	for rows.Next() {
		var item entities.ReportItem
		err := rows.Scan(
			&item.Employees, &item.ServiceName, &item.SpaceName,
			&item.ScheduleDate, &item.GrossTotal, &item.PGTO,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha do relatório: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer o relatório: %w", err)
	}

	return items, nil
}
