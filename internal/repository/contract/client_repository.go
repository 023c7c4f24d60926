package contract

import (
	"context"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
)

type ClientRepository interface {
	FindAll(ctx context.Context) ([]*entity.Client, error)
	FindOne(ctx context.Context, id string) (*entity.Client, error) // nil when absent
	Count(ctx context.Context) (int, error)
}
