package implementation

import (
	"context"
	"fmt"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/logger"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/contract"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
)

type firebaseTreeStore struct {
	client *db.Client
	logger logger.ILogger
}

// NewFirebaseTreeStore adapts a Realtime Database client to contract.TreeStore.
// Every transport failure is reported as entity.ErrStoreUnavailable.
func NewFirebaseTreeStore(ctx context.Context, app *firebase.App, logger logger.ILogger) (contract.TreeStore, error) {
	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}
	return &firebaseTreeStore{client: client, logger: logger}, nil
}

func (s *firebaseTreeStore) Read(ctx context.Context, path string) (interface{}, error) {
	var value interface{}
	if err := s.client.NewRef(path).Get(ctx, &value); err != nil {
		return nil, s.fail("read", path, err)
	}
	return value, nil
}

func (s *firebaseTreeStore) Write(ctx context.Context, path string, value interface{}) error {
	if err := s.client.NewRef(path).Set(ctx, value); err != nil {
		return s.fail("write", path, err)
	}
	return nil
}

func (s *firebaseTreeStore) Merge(ctx context.Context, path string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := s.client.NewRef(path).Update(ctx, fields); err != nil {
		return s.fail("merge", path, err)
	}
	return nil
}

func (s *firebaseTreeStore) Remove(ctx context.Context, path string) error {
	if err := s.client.NewRef(path).Delete(ctx); err != nil {
		return s.fail("remove", path, err)
	}
	return nil
}

func (s *firebaseTreeStore) Query(ctx context.Context, path, orderByField string, equalTo interface{}) (map[string]interface{}, error) {
	var value map[string]interface{}
	err := s.client.NewRef(path).OrderByChild(orderByField).EqualTo(equalTo).Get(ctx, &value)
	if err != nil {
		return nil, s.fail("query", path, err)
	}
	if value == nil {
		value = map[string]interface{}{}
	}
	return value, nil
}

func (s *firebaseTreeStore) fail(op, path string, err error) error {
	s.logger.Error("STORE", "Realtime database "+op+" failed", map[string]interface{}{
		"path":  path,
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s %s: %v", entity.ErrStoreUnavailable, op, path, err)
}
