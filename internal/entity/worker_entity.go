package entity

import (
	"sort"
	"time"
)

type VerificationState string

const (
	VerificationDocumentsSubmitted VerificationState = "documents_submitted"
	VerificationApproved           VerificationState = "approved"
	VerificationRejected           VerificationState = "rejected"
)

// DefaultWorkCategory is reported for workers without a "work" field.
const DefaultWorkCategory = "Sin categoría"

// Worker is the typed view of User/Trabajadores/{id}.
type Worker struct {
	Id                 string
	Name               string
	LastName           string
	Email              string
	Work               string
	FcmToken           string
	Phone              string
	Image              string
	Description        string
	Experience         string
	IsAvailable        bool
	IsOnline           bool
	Latitude           float64
	Longitude          float64
	Rating             float64
	TotalRatings       int64
	PricePerHour       float64
	Timestamp          Timestamp
	LastOnline         Timestamp
	VerificationStatus map[string]interface{}

	Raw map[string]interface{}
}

// VerificationState returns verificationStatus.status, or "".
func (w *Worker) VerificationState() VerificationState {
	return VerificationState(stringField(w.VerificationStatus, "status"))
}

// ParseWorker reads a worker profile. Returns nil for non-object values.
func ParseWorker(id string, raw interface{}, loc *time.Location) *Worker {
	m := AsMap(raw)
	if m == nil {
		return nil
	}
	return &Worker{
		Id:                 id,
		Name:               stringField(m, "name"),
		LastName:           stringField(m, "lastName"),
		Email:              stringField(m, "email"),
		Work:               stringField(m, "work"),
		FcmToken:           stringField(m, "fcmToken"),
		Phone:              stringField(m, "phone"),
		Image:              stringField(m, "image"),
		Description:        stringField(m, "description"),
		Experience:         stringField(m, "experience"),
		IsAvailable:        boolField(m, "isAvailable"),
		IsOnline:           boolField(m, "isOnline"),
		Latitude:           floatField(m, "latitude"),
		Longitude:          floatField(m, "longitude"),
		Rating:             floatField(m, "rating"),
		TotalRatings:       intField(m, "totalRatings"),
		PricePerHour:       floatField(m, "pricePerHour"),
		Timestamp:          ParseTimestamp(m["timestamp"], loc),
		LastOnline:         ParseTimestamp(m["lastOnline"], loc),
		VerificationStatus: AsMap(m["verificationStatus"]),
		Raw:                m,
	}
}

// ParseWorkers reads the User/Trabajadores subtree ordered by id.
func ParseWorkers(raw interface{}, loc *time.Location) []*Worker {
	m := AsMap(raw)
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*Worker, 0, len(ids))
	for _, id := range ids {
		if w := ParseWorker(id, m[id], loc); w != nil {
			out = append(out, w)
		}
	}
	return out
}

// WorkerStatistics summarizes the worker population.
type WorkerStatistics struct {
	Total      int
	Available  int
	Online     int
	Verified   int
	ByCategory map[string]int
}

// NewWorkerStatistics tallies availability, presence, verification and
// category over workers.
func NewWorkerStatistics(workers []*Worker) WorkerStatistics {
	stats := WorkerStatistics{Total: len(workers), ByCategory: map[string]int{}}
	for _, w := range workers {
		if w.IsAvailable {
			stats.Available++
		}
		if w.IsOnline {
			stats.Online++
		}
		if w.VerificationState() == VerificationApproved {
			stats.Verified++
		}
		category := w.Work
		if category == "" {
			category = DefaultWorkCategory
		}
		stats.ByCategory[category]++
	}
	return stats
}
