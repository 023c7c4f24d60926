package implementation

import (
	"context"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/contract"
)

type clientRepositoryImpl struct {
	store contract.TreeStore
}

func NewClientRepository(store contract.TreeStore) contract.ClientRepository {
	return &clientRepositoryImpl{store: store}
}

func (r *clientRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Client, error) {
	raw, err := r.store.Read(ctx, entity.ClientsRoot)
	if err != nil {
		return nil, err
	}
	return entity.ParseClients(raw), nil
}

func (r *clientRepositoryImpl) FindOne(ctx context.Context, id string) (*entity.Client, error) {
	raw, err := r.store.Read(ctx, entity.ClientsRoot+"/"+id)
	if err != nil {
		return nil, err
	}
	return entity.ParseClient(id, raw), nil
}

func (r *clientRepositoryImpl) Count(ctx context.Context) (int, error) {
	raw, err := r.store.Read(ctx, entity.ClientsRoot)
	if err != nil {
		return 0, err
	}
	return len(entity.AsMap(raw)), nil
}
