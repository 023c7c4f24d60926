package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/logger"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/contract"
	"github.com/zXpect/Panel-admln-ADS-backend/pkg/admin/activity"
)

const (
	// WeeklyTrendDays is the number of daily points; the last one is today.
	WeeklyTrendDays = 7
	// WeeklyAnchorOffsetDays shifts the last daily point back from today.
	WeeklyAnchorOffsetDays = 0

	// MonthlyTrendDays is the trailing span split into weekly buckets.
	MonthlyTrendDays = 30
	// MonthlyBucketDays is the width of every bucket but the last.
	MonthlyBucketDays = 7
	// MaxMonthlyBuckets caps the monthly series.
	MaxMonthlyBuckets = 5
)

// dayLabels are indexed Monday first.
var dayLabels = [7]string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb", "Dom"}

// DayLabel returns the short Spanish name of the weekday.
func DayLabel(wd time.Weekday) string {
	return dayLabels[(int(wd)+6)%7]
}

// Aggregator builds activity trend series over calendar buckets in loc.
type Aggregator struct {
	workers   contract.WorkerRepository
	documents contract.DocumentRepository
	counter   *activity.Counter
	loc       *time.Location
	now       func() time.Time
	logger    logger.ILogger
}

func NewAggregator(
	workers contract.WorkerRepository,
	documents contract.DocumentRepository,
	loc *time.Location,
	logger logger.ILogger,
) *Aggregator {
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{
		workers:   workers,
		documents: documents,
		counter:   activity.NewCounter(loc),
		loc:       loc,
		now:       time.Now,
		logger:    logger,
	}
}

// WithClock replaces the time source for the aggregator and its counter.
func (a *Aggregator) WithClock(now func() time.Time) *Aggregator {
	a.now = now
	a.counter.WithClock(now)
	return a
}

type snapshot struct {
	workers []*entity.Worker
	trees   []*entity.WorkerDocuments
}

func (a *Aggregator) load(ctx context.Context) (*snapshot, error) {
	workers, err := a.workers.FindAll(ctx)
	if err != nil {
		a.logger.Error("DASHBOARD", "Failed to load workers for trends", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("load workers: %w", err)
	}
	trees, err := a.documents.FindAll(ctx)
	if err != nil {
		a.logger.Error("DASHBOARD", "Failed to load documents for trends", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("load documents: %w", err)
	}
	return &snapshot{workers: workers, trees: trees}, nil
}

// WeeklyTrends returns one point per day for the last WeeklyTrendDays days,
// oldest first, each covering 00:00:00.000 through 23:59:59.999.
func (a *Aggregator) WeeklyTrends(ctx context.Context) ([]entity.TrendPoint, error) {
	snap, err := a.load(ctx)
	if err != nil {
		return nil, err
	}

	buckets, err := WeeklyBuckets(a.now(), a.loc)
	if err != nil {
		return nil, err
	}
	return a.fill(snap, buckets), nil
}

// MonthlyTrends returns up to MaxMonthlyBuckets weekly points covering the last
// MonthlyTrendDays days. The last bucket is clipped to the end of today.
func (a *Aggregator) MonthlyTrends(ctx context.Context) ([]entity.TrendPoint, error) {
	snap, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	return a.fill(snap, MonthlyBuckets(a.now(), a.loc)), nil
}

// ActivityStats counts activity over the trailing 24 hours, 7 days and 30 days.
func (a *Aggregator) ActivityStats(ctx context.Context) (*entity.ActivityStats, error) {
	snap, err := a.load(ctx)
	if err != nil {
		return nil, err
	}

	now := a.now().In(a.loc)
	count := func(d time.Duration) entity.ActivityCounts {
		return a.counter.Count(snap.workers, snap.trees, entity.ActivityWindow{Start: now.Add(-d), End: now})
	}
	return &entity.ActivityStats{
		Last24h: count(24 * time.Hour),
		Last7d:  count(7 * 24 * time.Hour),
		Last30d: count(30 * 24 * time.Hour),
	}, nil
}

// WeeklyFallback is the zero-filled weekly series for the current clock.
func (a *Aggregator) WeeklyFallback() []entity.TrendPoint {
	buckets, err := WeeklyBuckets(a.now(), a.loc)
	if err != nil {
		return []entity.TrendPoint{}
	}
	return buckets
}

// MonthlyFallback is the zero-filled monthly series for the current clock.
func (a *Aggregator) MonthlyFallback() []entity.TrendPoint {
	return MonthlyBuckets(a.now(), a.loc)
}

func (a *Aggregator) fill(snap *snapshot, buckets []entity.TrendPoint) []entity.TrendPoint {
	for i := range buckets {
		counts := a.counter.Count(snap.workers, snap.trees, entity.ActivityWindow{
			Start: buckets[i].DateRangeStart,
			End:   buckets[i].DateRangeEnd,
		})
		buckets[i].WorkersActive = counts.WorkersActive
		buckets[i].DocumentsProcessed = counts.DocumentsProcessed
		buckets[i].DocumentsUploaded = counts.DocumentsUploaded
	}
	return buckets
}

// WeeklyBuckets lays out the empty daily buckets ending on now's calendar day.
// A day appearing twice is reported as an error.
func WeeklyBuckets(now time.Time, loc *time.Location) ([]entity.TrendPoint, error) {
	last := startOfDay(now.In(loc)).AddDate(0, 0, -WeeklyAnchorOffsetDays)

	points := make([]entity.TrendPoint, 0, WeeklyTrendDays)
	seen := make(map[string]bool, WeeklyTrendDays)
	for i := WeeklyTrendDays - 1; i >= 0; i-- {
		day := last.AddDate(0, 0, -i)
		key := day.Format("2006-01-02")
		if seen[key] {
			return nil, fmt.Errorf("weekly trend repeats day %s", key)
		}
		seen[key] = true

		points = append(points, entity.TrendPoint{
			Label:          DayLabel(day.Weekday()),
			DateRangeStart: day,
			DateRangeEnd:   endOfDay(day),
		})
	}
	return points, nil
}

// MonthlyBuckets lays out the empty weekly buckets of the trailing
// MonthlyTrendDays days, labelled "Sem 1" onwards.
func MonthlyBuckets(now time.Time, loc *time.Location) []entity.TrendPoint {
	today := startOfDay(now.In(loc))
	limit := endOfDay(today)
	start := today.AddDate(0, 0, -(MonthlyTrendDays - 1))

	var points []entity.TrendPoint
	for i := 0; i < MaxMonthlyBuckets; i++ {
		bucketStart := start.AddDate(0, 0, i*MonthlyBucketDays)
		if bucketStart.After(limit) {
			break
		}
		bucketEnd := endOfDay(bucketStart.AddDate(0, 0, MonthlyBucketDays-1))
		if bucketEnd.After(limit) {
			bucketEnd = limit
		}
		points = append(points, entity.TrendPoint{
			Label:          fmt.Sprintf("Sem %d", i+1),
			DateRangeStart: bucketStart,
			DateRangeEnd:   bucketEnd,
		})
	}
	return points
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}
