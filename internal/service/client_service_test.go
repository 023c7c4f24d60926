package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/logger"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/implementation"
)

func TestClientService(t *testing.T) {
	svc := NewClientService(implementation.NewClientRepository(seededStore(t)), logger.NewNopLogger())
	ctx := context.Background()

	tests := []struct {
		search string
		want   []string
	}{
		{"", []string{"c1", "c2"}},
		{"SOF", []string{"c2"}},
		{"díaz", []string{"c1"}},
		{"nadie", []string{}},
	}
	for _, tt := range tests {
		t.Run("search="+tt.search, func(t *testing.T) {
			got, err := svc.List(ctx, tt.search)
			require.NoError(t, err)
			gotIds := make([]string, 0, len(got))
			for _, c := range got {
				gotIds = append(gotIds, c.Id)
			}
			assert.Equal(t, tt.want, gotIds)
		})
	}

	c, err := svc.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Carlos", c.Name)

	_, err = svc.Get(ctx, "ghost")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count.Total)
}
