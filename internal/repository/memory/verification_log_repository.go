package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/contract"

	"github.com/google/uuid"
)

// VerificationLogRepository keeps the audit trail in process. Used when no
// database is configured, and in tests.
type VerificationLogRepository struct {
	mu   sync.RWMutex
	logs []*entity.VerificationLog
}

func NewVerificationLogRepository() contract.VerificationLogRepository {
	return &VerificationLogRepository{}
}

func (r *VerificationLogRepository) Create(ctx context.Context, log *entity.VerificationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if log.Id == uuid.Nil {
		log.Id = uuid.New()
	}
	cp := *log
	r.logs = append(r.logs, &cp)
	return nil
}

func (r *VerificationLogRepository) FindByWorker(ctx context.Context, workerId string, limit, offset int) ([]*entity.VerificationLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.VerificationLog
	for _, l := range r.logs {
		if l.WorkerId == workerId {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if offset >= len(out) {
		return []*entity.VerificationLog{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}
