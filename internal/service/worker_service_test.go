package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/dto"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/logger"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/implementation"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/memory"
)

var fixedNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func seededStore(t *testing.T) *memory.TreeStore {
	t.Helper()
	store, err := memory.NewTreeStoreFrom(map[string]interface{}{
		"User": map[string]interface{}{
			"Trabajadores": map[string]interface{}{
				"w1": map[string]interface{}{
					"name": "Ana", "lastName": "Rojas", "email": "ana@mail.co", "work": "Plomero",
					"isAvailable": true, "isOnline": false, "rating": 4.5, "totalRatings": 2,
					"verificationStatus": map[string]interface{}{"status": "documents_submitted", "submittedAt": 1700000000000.0},
				},
				"w2": map[string]interface{}{
					"name": "Luis", "lastName": "Pérez", "email": "luis@mail.co", "work": "Electricista",
					"isAvailable": false, "isOnline": true,
				},
				"w3": map[string]interface{}{
					"name": "Marta", "lastName": "Gómez", "email": "marta@mail.co", "work": "Plomero",
					"isAvailable": true, "isOnline": true,
				},
			},
			"Clientes": map[string]interface{}{
				"c1": map[string]interface{}{"name": "Carlos", "lastName": "Díaz", "email": "carlos@mail.co"},
				"c2": map[string]interface{}{"name": "Sofía", "lastName": "Ruiz", "email": "sofia@mail.co"},
			},
		},
	})
	require.NoError(t, err)
	return store
}

func newWorkerService(t *testing.T) (*workerService, *memory.TreeStore) {
	t.Helper()
	store := seededStore(t)
	svc := NewWorkerService(implementation.NewWorkerRepository(store, time.UTC), logger.NewNopLogger()).(*workerService)
	svc.now = func() time.Time { return fixedNow }
	return svc, store
}

func ids(views []map[string]interface{}) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v["id"].(string))
	}
	return out
}

func TestWorkerService_ListFilterPrecedence(t *testing.T) {
	svc, _ := newWorkerService(t)

	tests := []struct {
		name  string
		query dto.WorkerListQuery
		want  []string
	}{
		{"no filter", dto.WorkerListQuery{}, []string{"w1", "w2", "w3"}},
		{"search wins over category", dto.WorkerListQuery{Search: "luis", Category: "Plomero"}, []string{"w2"}},
		{"category", dto.WorkerListQuery{Category: "Plomero", Online: "true"}, []string{"w1", "w3"}},
		{"available", dto.WorkerListQuery{Available: "true", Online: "true"}, []string{"w1", "w3"}},
		{"online", dto.WorkerListQuery{Online: "true"}, []string{"w2", "w3"}},
		{"available false is ignored", dto.WorkerListQuery{Available: "false"}, []string{"w1", "w2", "w3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.List(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestWorkerService_Search(t *testing.T) {
	svc, _ := newWorkerService(t)

	tests := []struct {
		query string
		want  []string
	}{
		{"ANA", []string{"w1"}},
		{"pérez", []string{"w2"}},
		{"@mail.co", []string{"w1", "w2", "w3"}},
		{"plom", []string{"w1", "w3"}},
		{"nobody", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := svc.Search(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestWorkerService_GetMissing(t *testing.T) {
	svc, _ := newWorkerService(t)

	_, err := svc.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestWorkerService_CreateAppliesDefaults(t *testing.T) {
	svc, store := newWorkerService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateWorkerRequest{Id: "w9", Name: "Nuevo", Work: "Pintor"})
	require.NoError(t, err)
	assert.Equal(t, true, created["isAvailable"])
	assert.Equal(t, false, created["isOnline"])
	assert.Equal(t, fixedNow.UnixMilli(), created["timestamp"])

	raw, err := store.Read(ctx, entity.WorkersRoot+"/w9")
	require.NoError(t, err)
	m := raw.(map[string]interface{})
	assert.Equal(t, "Nuevo", m["name"])
	assert.EqualValues(t, 0, m["totalRatings"])

	_, err = svc.Create(ctx, &dto.CreateWorkerRequest{Id: "  "})
	assert.True(t, entity.IsValidation(err))
}

func TestWorkerService_UpdateKeepsOtherFields(t *testing.T) {
	svc, _ := newWorkerService(t)
	ctx := context.Background()

	name := "Ana María"
	got, err := svc.Update(ctx, "w1", &dto.UpdateWorkerRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", got["name"])
	assert.Equal(t, "Rojas", got["lastName"])
	assert.EqualValues(t, fixedNow.UnixMilli(), got["timestamp"])

	_, err = svc.Update(ctx, "ghost", &dto.UpdateWorkerRequest{Name: &name})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestWorkerService_StatusUpdatesRequireWorker(t *testing.T) {
	svc, store := newWorkerService(t)
	ctx := context.Background()

	require.NoError(t, svc.UpdateAvailability(ctx, "w2", true))
	require.NoError(t, svc.UpdateOnlineStatus(ctx, "w2", false))
	require.NoError(t, svc.UpdateLocation(ctx, "w2", 4.61, -74.08))

	w, err := svc.Get(ctx, "w2")
	require.NoError(t, err)
	assert.Equal(t, true, w["isAvailable"])
	assert.Equal(t, false, w["isOnline"])
	assert.Equal(t, 4.61, w["latitude"])
	assert.Equal(t, -74.08, w["longitude"])

	assert.ErrorIs(t, svc.UpdateAvailability(ctx, "ghost", true), entity.ErrNotFound)
	assert.ErrorIs(t, svc.UpdateOnlineStatus(ctx, "ghost", true), entity.ErrNotFound)
	assert.ErrorIs(t, svc.UpdateLocation(ctx, "ghost", 0, 0), entity.ErrNotFound)

	raw, err := store.Read(ctx, entity.WorkersRoot+"/ghost")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestWorkerService_AddRating(t *testing.T) {
	tests := []struct {
		name      string
		workerId  string
		rating    float64
		wantMean  float64
		wantTotal int64
	}{
		{"first rating", "w2", 4, 4, 1},
		{"running mean", "w1", 3, 4, 3},
		{"rounded to two decimals", "w1", 5, 4.67, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newWorkerService(t)
			got, err := svc.AddRating(context.Background(), tt.workerId, tt.rating)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMean, got.Rating)
			assert.Equal(t, tt.wantTotal, got.TotalRatings)

			w, err := svc.Get(context.Background(), tt.workerId)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMean, w["rating"])
		})
	}

	svc, _ := newWorkerService(t)
	_, err := svc.AddRating(context.Background(), "w1", 6)
	assert.True(t, entity.IsValidation(err))
	_, err = svc.AddRating(context.Background(), "ghost", 3)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestWorkerService_UpdateVerificationStatusKeepsSubmittedAt(t *testing.T) {
	svc, _ := newWorkerService(t)
	ctx := context.Background()

	got, err := svc.UpdateVerificationStatus(ctx, "w1", entity.VerificationApproved)
	require.NoError(t, err)
	assert.Equal(t, "approved", got["status"])
	assert.Equal(t, 1700000000000.0, got["submittedAt"])

	w, err := svc.Get(ctx, "w1")
	require.NoError(t, err)
	vs := w["verificationStatus"].(map[string]interface{})
	assert.Equal(t, "approved", vs["status"])
	assert.Equal(t, 1700000000000.0, vs["submittedAt"])

	_, err = svc.UpdateVerificationStatus(ctx, "w1", "bogus")
	assert.True(t, entity.IsValidation(err))
}

func TestWorkerService_StatisticsAndDelete(t *testing.T) {
	svc, _ := newWorkerService(t)
	ctx := context.Background()

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Available)
	assert.Equal(t, 2, stats.Online)
	assert.Equal(t, 0, stats.Verified)
	assert.Equal(t, map[string]int{"Plomero": 2, "Electricista": 1}, stats.ByCategory)

	require.NoError(t, svc.Delete(ctx, "w3"))
	assert.ErrorIs(t, svc.Delete(ctx, "w3"), entity.ErrNotFound)

	stats, err = svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
}
