package services

import (
	"context"

	"go.uber.org/zap"

	"servicos-dashboard/internal/dto"
	"servicos-dashboard/internal/entities"
	"servicos-dashboard/internal/repositories"
	apperrors "servicos-dashboard/pkg/errors"
)

type ReportServiceInterface interface {
	GetReport(ctx context.Context, filter entities.ServiceFilter) (*dto.ReportData, error)
}

type ReportService struct {
	serviceRepository repositories.ServiceRepositoryInterface
	logger            *zap.Logger
}

func NewReportService(serviceRepository repositories.ServiceRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{
		serviceRepository: serviceRepository,
		logger:            logger,
	}
}

func (s *ReportService) GetReport(ctx context.Context, filter entities.ServiceFilter) (*dto.ReportData, error) {
	items, err := s.serviceRepository.GetReport(ctx, filter)
	if err != nil {
		s.logger.Error("erro ao gerar relatório", zap.Error(err), zap.Any("filter", filter))
		return nil, apperrors.NewDatabaseError(err)
	}

	// Valor nulo conta como zero na soma; a consulta já exclui essas linhas,
	// mas a soma não depende disso.
	var total float64
	for _, item := range items {
		total += item.GrossTotal.Float64
	}

	return &dto.ReportData{Pagamentos: items, TotalBruto: total}, nil
}
