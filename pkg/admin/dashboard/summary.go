package dashboard

import (
	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/pkg/verification/requirements"
)

// Summarize composes the dashboard overview. A worker counts as unverified
// while any of their documents is pending.
func Summarize(
	workers []*entity.Worker,
	trees []*entity.WorkerDocuments,
	pending []entity.PendingDocument,
	clientsTotal int,
	evaluator *requirements.Evaluator,
) entity.DashboardSummary {
	summary := entity.DashboardSummary{
		Workers:      entity.NewWorkerStatistics(workers),
		ClientsTotal: clientsTotal,
		PendingTotal: len(pending),
	}

	withPending := map[string]bool{}
	for _, p := range pending {
		withPending[p.Ref.WorkerId] = true

		switch p.Ref.TypeLabel() {
		case entity.CategoryHojaDeVida:
			summary.PendingByType.HojaDeVida++
		case entity.CategoryAntecedentes:
			summary.PendingByType.AntecedentesJudiciales++
		case entity.SubcategoryTitulos:
			summary.PendingByType.Titulos++
		case entity.SubcategoryCartas:
			summary.PendingByType.CartasRecomendacion++
		}
	}

	summary.WorkersUnverified = len(withPending)
	summary.WorkersVerified = summary.Workers.Total - summary.WorkersUnverified
	if summary.WorkersVerified < 0 {
		summary.WorkersVerified = 0
	}

	for _, t := range trees {
		if evaluator.Evaluate(t).IsComplete {
			summary.DocumentsComplete++
		}
	}
	return summary
}
