package contract

import (
	"context"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
)

type WorkerRepository interface {
	FindAll(ctx context.Context) ([]*entity.Worker, error)
	FindOne(ctx context.Context, id string) (*entity.Worker, error) // nil when absent
	FindByField(ctx context.Context, field string, value interface{}) ([]*entity.Worker, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, id string, data map[string]interface{}) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}
