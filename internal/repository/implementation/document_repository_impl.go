package implementation

import (
	"context"
	"strings"
	"time"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/contract"
)

type documentRepositoryImpl struct {
	store contract.TreeStore
	loc   *time.Location
}

func NewDocumentRepository(store contract.TreeStore, loc *time.Location) contract.DocumentRepository {
	return &documentRepositoryImpl{store: store, loc: loc}
}

func (r *documentRepositoryImpl) FindByWorker(ctx context.Context, workerId string) (*entity.WorkerDocuments, error) {
	raw, err := r.store.Read(ctx, entity.DocumentsRoot+"/"+workerId)
	if err != nil {
		return nil, err
	}
	return entity.ParseWorkerDocuments(workerId, raw, r.loc), nil
}

func (r *documentRepositoryImpl) FindAll(ctx context.Context) ([]*entity.WorkerDocuments, error) {
	raw, err := r.store.Read(ctx, entity.DocumentsRoot)
	if err != nil {
		return nil, err
	}
	return entity.ParseAllWorkerDocuments(raw, r.loc), nil
}

func (r *documentRepositoryImpl) ReadRaw(ctx context.Context, workerId string, segments ...string) (interface{}, error) {
	path := strings.Join(append([]string{entity.DocumentsRoot, workerId}, segments...), "/")
	return r.store.Read(ctx, path)
}

func (r *documentRepositoryImpl) FindOne(ctx context.Context, ref entity.DocumentRef) (*entity.Document, error) {
	raw, err := r.store.Read(ctx, ref.Path(entity.DocumentsRoot))
	if err != nil {
		return nil, err
	}
	m := entity.AsMap(raw)
	if m == nil {
		return nil, nil
	}
	key := ref.DocumentId
	if ref.Subcategory == "" {
		key = ref.Category
	}
	return entity.ParseDocument(key, m, r.loc), nil
}

func (r *documentRepositoryImpl) Write(ctx context.Context, ref entity.DocumentRef, data map[string]interface{}) error {
	return r.store.Write(ctx, ref.Path(entity.DocumentsRoot), data)
}

func (r *documentRepositoryImpl) Merge(ctx context.Context, ref entity.DocumentRef, fields map[string]interface{}) error {
	return r.store.Merge(ctx, ref.Path(entity.DocumentsRoot), fields)
}

func (r *documentRepositoryImpl) Remove(ctx context.Context, ref entity.DocumentRef) error {
	return r.store.Remove(ctx, ref.Path(entity.DocumentsRoot))
}
