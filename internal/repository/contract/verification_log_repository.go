package contract

import (
	"context"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
)

type VerificationLogRepository interface {
	Create(ctx context.Context, log *entity.VerificationLog) error
	// FindByWorker lists a worker's review history, newest first.
	FindByWorker(ctx context.Context, workerId string, limit, offset int) ([]*entity.VerificationLog, error)
}
