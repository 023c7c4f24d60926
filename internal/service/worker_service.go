package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/dto"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/logger"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/contract"
)

type IWorkerService interface {
	List(ctx context.Context, query dto.WorkerListQuery) ([]map[string]interface{}, error)
	Get(ctx context.Context, id string) (map[string]interface{}, error)
	Create(ctx context.Context, req *dto.CreateWorkerRequest) (map[string]interface{}, error)
	Update(ctx context.Context, id string, req *dto.UpdateWorkerRequest) (map[string]interface{}, error)
	Delete(ctx context.Context, id string) error

	UpdateAvailability(ctx context.Context, id string, isAvailable bool) error
	UpdateOnlineStatus(ctx context.Context, id string, isOnline bool) error
	UpdateLocation(ctx context.Context, id string, latitude, longitude float64) error
	UpdateVerificationStatus(ctx context.Context, id string, status entity.VerificationState) (map[string]interface{}, error)
	AddRating(ctx context.Context, id string, rating float64) (*dto.WorkerRatingResponse, error)

	Statistics(ctx context.Context) (*dto.WorkerStatisticsResponse, error)
	Search(ctx context.Context, query string) ([]map[string]interface{}, error)
}

type workerService struct {
	workers contract.WorkerRepository
	logger  logger.ILogger
	now     func() time.Time
}

func NewWorkerService(workers contract.WorkerRepository, logger logger.ILogger) IWorkerService {
	return &workerService{
		workers: workers,
		logger:  logger,
		now:     time.Now,
	}
}

// List applies at most one filter, in order: search, category, available,
// online.
func (s *workerService) List(ctx context.Context, query dto.WorkerListQuery) ([]map[string]interface{}, error) {
	var (
		workers []*entity.Worker
		err     error
	)
	switch {
	case strings.TrimSpace(query.Search) != "":
		return s.Search(ctx, query.Search)
	case query.Category != "":
		workers, err = s.workers.FindByField(ctx, "work", query.Category)
	case query.Available == "true":
		workers, err = s.workers.FindByField(ctx, "isAvailable", true)
	case query.Online == "true":
		workers, err = s.workers.FindByField(ctx, "isOnline", true)
	default:
		workers, err = s.workers.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return workerViews(workers), nil
}

func (s *workerService) Get(ctx context.Context, id string) (map[string]interface{}, error) {
	w, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return workerView(w), nil
}

func (s *workerService) Create(ctx context.Context, req *dto.CreateWorkerRequest) (map[string]interface{}, error) {
	id := strings.TrimSpace(req.Id)
	if id == "" {
		return nil, entity.NewValidationError("id", "is required")
	}

	data := req.ToMap()
	data["id"] = id
	data["timestamp"] = s.now().UnixMilli()
	setDefault(data, "isAvailable", true)
	setDefault(data, "isOnline", false)
	setDefault(data, "rating", 0)
	setDefault(data, "totalRatings", 0)

	if err := s.workers.Create(ctx, id, data); err != nil {
		s.logger.Error("WORKERS", "Failed to create worker", map[string]interface{}{"worker_id": id, "error": err.Error()})
		return nil, err
	}

	s.logger.Info("WORKERS", "Worker created", map[string]interface{}{"worker_id": id})
	return data, nil
}

func (s *workerService) Update(ctx context.Context, id string, req *dto.UpdateWorkerRequest) (map[string]interface{}, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}
	if err := s.merge(ctx, id, req.ToMap()); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *workerService) Delete(ctx context.Context, id string) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.workers.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("WORKERS", "Worker deleted", map[string]interface{}{"worker_id": id})
	return nil
}

func (s *workerService) UpdateAvailability(ctx context.Context, id string, isAvailable bool) error {
	return s.mergeExisting(ctx, id, map[string]interface{}{"isAvailable": isAvailable})
}

func (s *workerService) UpdateOnlineStatus(ctx context.Context, id string, isOnline bool) error {
	return s.mergeExisting(ctx, id, map[string]interface{}{"isOnline": isOnline})
}

func (s *workerService) UpdateLocation(ctx context.Context, id string, latitude, longitude float64) error {
	return s.mergeExisting(ctx, id, map[string]interface{}{
		"latitude":  latitude,
		"longitude": longitude,
	})
}

// UpdateVerificationStatus replaces verificationStatus.status and keeps the
// other keys of the object, such as submittedAt.
func (s *workerService) UpdateVerificationStatus(ctx context.Context, id string, status entity.VerificationState) (map[string]interface{}, error) {
	switch status {
	case entity.VerificationDocumentsSubmitted, entity.VerificationApproved, entity.VerificationRejected:
	default:
		return nil, entity.NewValidationError("status", "must be one of: documents_submitted approved rejected")
	}

	w, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.merge(ctx, id, map[string]interface{}{"verificationStatus/status": string(status)}); err != nil {
		return nil, err
	}

	updated := make(map[string]interface{}, len(w.VerificationStatus)+1)
	for k, v := range w.VerificationStatus {
		updated[k] = v
	}
	updated["status"] = string(status)
	return updated, nil
}

// AddRating folds rating into the running mean, rounded to two decimals.
func (s *workerService) AddRating(ctx context.Context, id string, rating float64) (*dto.WorkerRatingResponse, error) {
	if rating < 1 || rating > 5 {
		return nil, entity.NewValidationError("rating", "must be between 1 and 5")
	}

	w, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	mean := rating
	total := int64(1)
	if w.TotalRatings > 0 {
		total = w.TotalRatings + 1
		mean = (w.Rating*float64(w.TotalRatings) + rating) / float64(total)
	}
	mean = math.Round(mean*100) / 100

	err = s.merge(ctx, id, map[string]interface{}{
		"rating":       mean,
		"totalRatings": total,
	})
	if err != nil {
		return nil, err
	}
	return &dto.WorkerRatingResponse{Rating: mean, TotalRatings: total}, nil
}

func (s *workerService) Statistics(ctx context.Context) (*dto.WorkerStatisticsResponse, error) {
	workers, err := s.workers.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := entity.NewWorkerStatistics(workers)
	return &dto.WorkerStatisticsResponse{
		Total:      stats.Total,
		Available:  stats.Available,
		Online:     stats.Online,
		Verified:   stats.Verified,
		ByCategory: stats.ByCategory,
	}, nil
}

// Search matches name, lastName, email and work, case-insensitively.
func (s *workerService) Search(ctx context.Context, query string) ([]map[string]interface{}, error) {
	workers, err := s.workers.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return workerViews(workers), nil
	}

	var matched []*entity.Worker
	for _, w := range workers {
		if containsAny(q, w.Name, w.LastName, w.Email, w.Work) {
			matched = append(matched, w)
		}
	}

	s.logger.Info("WORKERS", "Worker search", map[string]interface{}{"query": query, "results": len(matched)})
	return workerViews(matched), nil
}

func (s *workerService) find(ctx context.Context, id string) (*entity.Worker, error) {
	w, err := s.workers.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("worker %s: %w", id, entity.ErrNotFound)
	}
	return w, nil
}

func (s *workerService) mergeExisting(ctx context.Context, id string, fields map[string]interface{}) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	return s.merge(ctx, id, fields)
}

// merge stamps timestamp on every profile write.
func (s *workerService) merge(ctx context.Context, id string, fields map[string]interface{}) error {
	fields["timestamp"] = s.now().UnixMilli()
	if err := s.workers.Update(ctx, id, fields); err != nil {
		s.logger.Error("WORKERS", "Failed to update worker", map[string]interface{}{"worker_id": id, "error": err.Error()})
		return err
	}
	s.logger.Info("WORKERS", "Worker updated", map[string]interface{}{"worker_id": id})
	return nil
}

func workerView(w *entity.Worker) map[string]interface{} {
	view := make(map[string]interface{}, len(w.Raw)+1)
	for k, v := range w.Raw {
		view[k] = v
	}
	view["id"] = w.Id
	return view
}

func workerViews(workers []*entity.Worker) []map[string]interface{} {
	views := make([]map[string]interface{}, 0, len(workers))
	for _, w := range workers {
		views = append(views, workerView(w))
	}
	return views
}

func setDefault(m map[string]interface{}, key string, value interface{}) {
	if _, ok := m[key]; !ok {
		m[key] = value
	}
}

func containsAny(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
