package entity

import "time"

// ActivityWindow is an instant range, inclusive on both ends.
type ActivityWindow struct {
	Start time.Time
	End   time.Time
}

func (w ActivityWindow) StartMillis() int64 { return w.Start.UnixMilli() }
func (w ActivityWindow) EndMillis() int64   { return w.End.UnixMilli() }

// TrendPoint is one calendar bucket of a trend series.
type TrendPoint struct {
	Label              string
	WorkersActive      int
	DocumentsProcessed int
	DocumentsUploaded  int
	DateRangeStart     time.Time
	DateRangeEnd       time.Time
}

// ActivityCounts holds the three counters for one window.
type ActivityCounts struct {
	WorkersActive      int
	DocumentsProcessed int
	DocumentsUploaded  int
}

// ActivityStats is the trailing 24h / 7d / 30d activity summary.
type ActivityStats struct {
	Last24h ActivityCounts
	Last7d  ActivityCounts
	Last30d ActivityCounts
}

// PendingByType counts pending documents per category kind.
type PendingByType struct {
	HojaDeVida             int
	AntecedentesJudiciales int
	Titulos                int
	CartasRecomendacion    int
}

// DashboardSummary is the composed dashboard overview.
type DashboardSummary struct {
	Workers           WorkerStatistics
	WorkersVerified   int
	WorkersUnverified int
	DocumentsComplete int
	ClientsTotal      int
	PendingTotal      int
	PendingByType     PendingByType
}
