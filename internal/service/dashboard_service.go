package service

import (
	"context"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/dto"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/logger"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/contract"
	"github.com/zXpect/Panel-admln-ADS-backend/pkg/admin/dashboard"
	"github.com/zXpect/Panel-admln-ADS-backend/pkg/verification/lifecycle"
	"github.com/zXpect/Panel-admln-ADS-backend/pkg/verification/requirements"
)

const dateLayout = "2006-01-02"

type IDashboardService interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	// GetWeeklyTrends never fails: a zero-filled week is returned instead.
	GetWeeklyTrends(ctx context.Context) []dto.WeeklyTrendResponse
	// GetMonthlyTrends never fails: zero-filled weeks are returned instead.
	GetMonthlyTrends(ctx context.Context) []dto.MonthlyTrendResponse
	GetActivityStats(ctx context.Context) (*dto.ActivityStatsResponse, error)
}

type dashboardService struct {
	workers    contract.WorkerRepository
	clients    contract.ClientRepository
	documents  contract.DocumentRepository
	aggregator *dashboard.Aggregator
	evaluator  *requirements.Evaluator
	logger     logger.ILogger
}

func NewDashboardService(
	workers contract.WorkerRepository,
	clients contract.ClientRepository,
	documents contract.DocumentRepository,
	aggregator *dashboard.Aggregator,
	evaluator *requirements.Evaluator,
	logger logger.ILogger,
) IDashboardService {
	return &dashboardService{
		workers:    workers,
		clients:    clients,
		documents:  documents,
		aggregator: aggregator,
		evaluator:  evaluator,
		logger:     logger,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	workers, err := s.workers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	trees, err := s.documents.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	clientsTotal, err := s.clients.Count(ctx)
	if err != nil {
		return nil, err
	}

	var pending []entity.PendingDocument
	for _, t := range trees {
		pending = append(pending, lifecycle.PendingIn(t)...)
	}

	summary := dashboard.Summarize(workers, trees, pending, clientsTotal, s.evaluator)
	s.logger.Info("DASHBOARD", "Dashboard stats calculated", map[string]interface{}{
		"verified": summary.WorkersVerified,
		"total":    summary.Workers.Total,
	})

	return &dto.DashboardStatsResponse{
		Workers: dto.DashboardWorkerStats{
			Total:             summary.Workers.Total,
			Available:         summary.Workers.Available,
			Online:            summary.Workers.Online,
			Verified:          summary.WorkersVerified,
			NotVerified:       summary.WorkersUnverified,
			ByCategory:        summary.Workers.ByCategory,
			DocumentsComplete: summary.DocumentsComplete,
		},
		Clients: dto.DashboardClientStats{Total: summary.ClientsTotal},
		Documents: dto.DashboardDocumentStats{
			PendingTotal: summary.PendingTotal,
			PendingByType: dto.PendingByTypes{
				HojaDeVida:             summary.PendingByType.HojaDeVida,
				AntecedentesJudiciales: summary.PendingByType.AntecedentesJudiciales,
				Titulos:                summary.PendingByType.Titulos,
				CartasRecomendacion:    summary.PendingByType.CartasRecomendacion,
			},
		},
	}, nil
}

func (s *dashboardService) GetWeeklyTrends(ctx context.Context) []dto.WeeklyTrendResponse {
	points, err := s.aggregator.WeeklyTrends(ctx)
	if err != nil {
		s.logger.Error("DASHBOARD", "Weekly trends failed, serving fallback", map[string]interface{}{
			"error": err.Error(),
		})
		points = s.aggregator.WeeklyFallback()
	} else {
		s.logger.Info("DASHBOARD", "Weekly trends calculated", map[string]interface{}{"days": len(points)})
	}

	res := make([]dto.WeeklyTrendResponse, 0, len(points))
	for _, p := range points {
		res = append(res, dto.WeeklyTrendResponse{
			Day:               p.Label,
			Workers:           p.WorkersActive,
			Documents:         p.DocumentsProcessed,
			DocumentsUploaded: p.DocumentsUploaded,
			Date:              p.DateRangeStart.Format(dateLayout),
		})
	}
	return res
}

func (s *dashboardService) GetMonthlyTrends(ctx context.Context) []dto.MonthlyTrendResponse {
	points, err := s.aggregator.MonthlyTrends(ctx)
	if err != nil {
		s.logger.Error("DASHBOARD", "Monthly trends failed, serving fallback", map[string]interface{}{
			"error": err.Error(),
		})
		points = s.aggregator.MonthlyFallback()
	} else {
		s.logger.Info("DASHBOARD", "Monthly trends calculated", map[string]interface{}{"weeks": len(points)})
	}

	res := make([]dto.MonthlyTrendResponse, 0, len(points))
	for _, p := range points {
		res = append(res, dto.MonthlyTrendResponse{
			Week:              p.Label,
			Workers:           p.WorkersActive,
			Documents:         p.DocumentsProcessed,
			DocumentsUploaded: p.DocumentsUploaded,
			StartDate:         p.DateRangeStart.Format(dateLayout),
			EndDate:           p.DateRangeEnd.Format(dateLayout),
		})
	}
	return res
}

func (s *dashboardService) GetActivityStats(ctx context.Context) (*dto.ActivityStatsResponse, error) {
	stats, err := s.aggregator.ActivityStats(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ActivityStatsResponse{
		Workers: dto.WorkerActivity{
			Active24h: stats.Last24h.WorkersActive,
			Active7d:  stats.Last7d.WorkersActive,
			Active30d: stats.Last30d.WorkersActive,
		},
		Documents: dto.DocumentActivity{
			Processed24h: stats.Last24h.DocumentsProcessed,
			Processed7d:  stats.Last7d.DocumentsProcessed,
			Processed30d: stats.Last30d.DocumentsProcessed,
			Uploaded24h:  stats.Last24h.DocumentsUploaded,
			Uploaded7d:   stats.Last7d.DocumentsUploaded,
			Uploaded30d:  stats.Last30d.DocumentsUploaded,
		},
	}, nil
}
