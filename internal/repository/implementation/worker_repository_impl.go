package implementation

import (
	"context"
	"sort"
	"time"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/contract"
)

type workerRepositoryImpl struct {
	store contract.TreeStore
	loc   *time.Location
}

func NewWorkerRepository(store contract.TreeStore, loc *time.Location) contract.WorkerRepository {
	return &workerRepositoryImpl{store: store, loc: loc}
}

func (r *workerRepositoryImpl) path(id string) string {
	return entity.WorkersRoot + "/" + id
}

func (r *workerRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Worker, error) {
	raw, err := r.store.Read(ctx, entity.WorkersRoot)
	if err != nil {
		return nil, err
	}
	return entity.ParseWorkers(raw, r.loc), nil
}

func (r *workerRepositoryImpl) FindOne(ctx context.Context, id string) (*entity.Worker, error) {
	raw, err := r.store.Read(ctx, r.path(id))
	if err != nil {
		return nil, err
	}
	return entity.ParseWorker(id, raw, r.loc), nil
}

func (r *workerRepositoryImpl) FindByField(ctx context.Context, field string, value interface{}) ([]*entity.Worker, error) {
	children, err := r.store.Query(ctx, entity.WorkersRoot, field, value)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(children))
	for id := range children {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	workers := make([]*entity.Worker, 0, len(ids))
	for _, id := range ids {
		if w := entity.ParseWorker(id, children[id], r.loc); w != nil {
			workers = append(workers, w)
		}
	}
	return workers, nil
}

func (r *workerRepositoryImpl) Count(ctx context.Context) (int, error) {
	raw, err := r.store.Read(ctx, entity.WorkersRoot)
	if err != nil {
		return 0, err
	}
	return len(entity.AsMap(raw)), nil
}

func (r *workerRepositoryImpl) Create(ctx context.Context, id string, data map[string]interface{}) error {
	return r.store.Write(ctx, r.path(id), data)
}

func (r *workerRepositoryImpl) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Merge(ctx, r.path(id), fields)
}

func (r *workerRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.store.Remove(ctx, r.path(id))
}
