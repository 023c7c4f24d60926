// Package activity counts worker and document activity inside time windows.
package activity

import (
	"time"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
)

// Counter evaluates windows against a snapshot of workers and document trees.
// Windows are inclusive on both ends.
type Counter struct {
	loc *time.Location
	now func() time.Time
}

func NewCounter(loc *time.Location) *Counter {
	if loc == nil {
		loc = time.Local
	}
	return &Counter{loc: loc, now: time.Now}
}

// WithClock replaces the time source used by the online heuristic.
func (c *Counter) WithClock(now func() time.Time) *Counter {
	c.now = now
	return c
}

// CountWorkersActive counts workers whose timestamp or lastOnline falls in the
// window. A worker flagged online also counts when the window ends no earlier
// than yesterday, since the flag says nothing about older periods.
func (c *Counter) CountWorkersActive(workers []*entity.Worker, w entity.ActivityWindow) int {
	start, end := w.StartMillis(), w.EndMillis()
	recent := c.endsRecently(w)

	count := 0
	for _, worker := range workers {
		switch {
		case worker.Timestamp.InRange(start, end),
			worker.LastOnline.InRange(start, end),
			recent && worker.IsOnline:
			count++
		}
	}
	return count
}

// CountDocumentsProcessed counts reviewed documents whose reviewedAt falls in
// the window.
func (c *Counter) CountDocumentsProcessed(trees []*entity.WorkerDocuments, w entity.ActivityWindow) int {
	start, end := w.StartMillis(), w.EndMillis()
	count := 0
	each(trees, func(d *entity.Document) {
		if d.Status.Reviewed() && d.ReviewedAt.InRange(start, end) {
			count++
		}
	})
	return count
}

// CountDocumentsUploaded counts documents whose uploadedAt falls in the window.
func (c *Counter) CountDocumentsUploaded(trees []*entity.WorkerDocuments, w entity.ActivityWindow) int {
	start, end := w.StartMillis(), w.EndMillis()
	count := 0
	each(trees, func(d *entity.Document) {
		if d.UploadedAt.InRange(start, end) {
			count++
		}
	})
	return count
}

// Count runs all three counters over the same window.
func (c *Counter) Count(workers []*entity.Worker, trees []*entity.WorkerDocuments, w entity.ActivityWindow) entity.ActivityCounts {
	return entity.ActivityCounts{
		WorkersActive:      c.CountWorkersActive(workers, w),
		DocumentsProcessed: c.CountDocumentsProcessed(trees, w),
		DocumentsUploaded:  c.CountDocumentsUploaded(trees, w),
	}
}

func (c *Counter) endsRecently(w entity.ActivityWindow) bool {
	endDay := startOfDay(w.End.In(c.loc))
	yesterday := startOfDay(c.now().In(c.loc)).AddDate(0, 0, -1)
	return !endDay.Before(yesterday)
}

func each(trees []*entity.WorkerDocuments, visit func(*entity.Document)) {
	for _, t := range trees {
		if t == nil {
			continue
		}
		entity.Walk(t.Root, visit)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
