package contract

import (
	"context"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
)

// DocumentRepository reads and writes the WorkerDocuments subtree.
type DocumentRepository interface {
	// FindByWorker parses one worker's tree. An absent tree yields an empty root.
	FindByWorker(ctx context.Context, workerId string) (*entity.WorkerDocuments, error)
	// FindAll parses every worker's tree in one read.
	FindAll(ctx context.Context) ([]*entity.WorkerDocuments, error)

	// ReadRaw returns the stored value under workerId/segments..., or nil.
	ReadRaw(ctx context.Context, workerId string, segments ...string) (interface{}, error)
	// FindOne returns the document at ref, or nil when absent.
	FindOne(ctx context.Context, ref entity.DocumentRef) (*entity.Document, error)

	Write(ctx context.Context, ref entity.DocumentRef, data map[string]interface{}) error
	Merge(ctx context.Context, ref entity.DocumentRef, fields map[string]interface{}) error
	Remove(ctx context.Context, ref entity.DocumentRef) error
}
