package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"servicos-dashboard/internal/dto"
	"servicos-dashboard/internal/entities"
	"servicos-dashboard/internal/repositories"
	apperrors "servicos-dashboard/pkg/errors"
)

type ServicesServiceInterface interface {
	ListServices(ctx context.Context, query dto.ListServicesQuery) (*dto.ServiceListResponse, error)
	GetTotals(ctx context.Context, filter entities.ServiceFilter) (*dto.TotalsResponse, error)
	ApplyUpdates(ctx context.Context, updates []dto.ServiceUpdateDTO) (*dto.UpdateResult, error)
}

type ServicesService struct {
	serviceRepository repositories.ServiceRepositoryInterface
	logger            *zap.Logger
}

func NewServicesService(serviceRepository repositories.ServiceRepositoryInterface, logger *zap.Logger) ServicesServiceInterface {
	return &ServicesService{
		serviceRepository: serviceRepository,
		logger:            logger,
	}
}

func (s *ServicesService) ListServices(ctx context.Context, query dto.ListServicesQuery) (*dto.ServiceListResponse, error) {
	data, total, err := s.serviceRepository.ListServices(
		ctx, query.Filter, query.Page, query.Limit, query.OrderBy, query.OrderDir,
	)
	if err != nil {
		s.logger.Error("erro ao listar serviços", zap.Error(err), zap.Any("query", query))
		return nil, apperrors.NewDatabaseError(err)
	}

	return &dto.ServiceListResponse{Data: data, Total: total}, nil
}

func (s *ServicesService) GetTotals(ctx context.Context, filter entities.ServiceFilter) (*dto.TotalsResponse, error) {
	sum, count, err := s.serviceRepository.GetTotals(ctx, filter)
	if err != nil {
		s.logger.Error("erro ao calcular totais", zap.Error(err), zap.Any("filter", filter))
		return nil, apperrors.NewDatabaseError(err)
	}

	return &dto.TotalsResponse{GrossTotalSum: sum, ServicesCount: count}, nil
}

// ApplyUpdates processa o lote item a item, sem transação: a falha de uma
// linha nunca aborta as demais e não há rollback do que já foi aplicado.
func (s *ServicesService) ApplyUpdates(ctx context.Context, updates []dto.ServiceUpdateDTO) (*dto.UpdateResult, error) {
	result := &dto.UpdateResult{Message: "Atualizações processadas"}

	for _, row := range updates {
		if row.OrderID == "" {
			row := row
			result.Errors = append(result.Errors, dto.UpdateError{
				Row:   &row,
				Error: "order_id ausente",
			})
			continue
		}

		datpgto := row.DATPGTO
		if datpgto.Valid && datpgto.String == "" {
			datpgto = null.String{}
		}

		if err := s.serviceRepository.UpdatePayment(ctx, row.OrderID, row.PGTO, datpgto); err != nil {
			s.logger.Error("erro ao atualizar pagamento",
				zap.String("order_id", row.OrderID), zap.Error(err))
			result.Errors = append(result.Errors, dto.UpdateError{
				OrderID: row.OrderID,
				Error:   err.Error(),
			})
			continue
		}

		result.Updated++
	}

	return result, nil
}
