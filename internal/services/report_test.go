package services

import (
	"context"
	"errors"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"servicos-dashboard/internal/entities"
	apperrors "servicos-dashboard/pkg/errors"
)

func TestGetReport_SomaDoTotalBruto(t *testing.T) {
	repo := &stubServiceRepository{
		reportRows: []entities.ReportItem{
			{GrossTotal: null.Float64From(10.00)},
			{GrossTotal: null.Float64From(20.50)},
			{GrossTotal: null.Float64{}},
		},
	}
	svc := NewReportService(repo, zap.NewNop())

	data, err := svc.GetReport(context.Background(), entities.ServiceFilter{})
	require.NoError(t, err)

	// Valor nulo entra como zero na soma.
	assert.Equal(t, 30.50, data.TotalBruto)
	assert.Len(t, data.Pagamentos, 3)
}

func TestGetReport_SemLinhas(t *testing.T) {
	repo := &stubServiceRepository{reportRows: []entities.ReportItem{}}
	svc := NewReportService(repo, zap.NewNop())

	data, err := svc.GetReport(context.Background(), entities.ServiceFilter{})
	require.NoError(t, err)
	assert.Zero(t, data.TotalBruto)
	assert.Empty(t, data.Pagamentos)
}

func TestGetReport_ErroDeBanco(t *testing.T) {
	repo := &stubServiceRepository{err: errors.New("timeout")}
	svc := NewReportService(repo, zap.NewNop())

	_, err := svc.GetReport(context.Background(), entities.ServiceFilter{})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 500, httpErr.Code)
	assert.Equal(t, apperrors.MsgDatabaseUnavailable, httpErr.Message)
}
