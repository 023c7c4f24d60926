package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/logger"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/serverutils"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/contract"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/implementation"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/memory"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/service"
	"github.com/zXpect/Panel-admln-ADS-backend/pkg/admin/dashboard"
	"github.com/zXpect/Panel-admln-ADS-backend/pkg/verification/lifecycle"
	"github.com/zXpect/Panel-admln-ADS-backend/pkg/verification/requirements"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type fakeFileStore struct{}

func (fakeFileStore) SignedURL(ctx context.Context, objectPath string, ttl time.Duration) (string, time.Time, error) {
	return "https://files.example/" + objectPath, time.Now().Add(ttl), nil
}

// fakeAuth stands in for the JWT middleware and authenticates every request
// as admin-1.
func fakeAuth(ctx *fiber.Ctx) error {
	ctx.Locals("user_id", "admin-1")
	return ctx.Next()
}

func newTestApp(t *testing.T) (*fiber.App, *memory.TreeStore) {
	t.Helper()
	store, err := memory.NewTreeStoreFrom(map[string]interface{}{
		"User": map[string]interface{}{
			"Trabajadores": map[string]interface{}{
				"w1": map[string]interface{}{"name": "Ana", "work": "Plomero", "isAvailable": true, "rating": 4, "totalRatings": 1},
				"w2": map[string]interface{}{"name": "Luis", "work": "Electricista", "isOnline": true},
			},
			"Clientes": map[string]interface{}{
				"c1": map[string]interface{}{"name": "Carlos", "email": "carlos@mail.co"},
			},
		},
		"WorkerDocuments": map[string]interface{}{
			"w1": map[string]interface{}{
				"hojaDeVida": map[string]interface{}{
					"id": "hv", "fileName": "cv.pdf", "status": "pending", "uploadedAt": 1773100000000.0, "reviewedAt": 0,
				},
			},
		},
	})
	require.NoError(t, err)

	nop := logger.NewNopLogger()
	var tree contract.TreeStore = store
	workers := implementation.NewWorkerRepository(tree, time.UTC)
	clients := implementation.NewClientRepository(tree)
	documents := implementation.NewDocumentRepository(tree, time.UTC)
	audit := memory.NewVerificationLogRepository()
	evaluator := requirements.NewEvaluator(requirements.PolicyStrict)

	documentService := service.NewDocumentService(
		documents, fakeFileStore{}, audit,
		lifecycle.NewManager(documents, audit, nil, nop),
		evaluator, time.Hour, nop,
	)
	dashboardService := service.NewDashboardService(
		workers, clients, documents,
		dashboard.NewAggregator(workers, documents, time.UTC, nop),
		evaluator, nop,
	)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewDocumentController(documentService, fakeAuth).RegisterRoutes(api)
	NewDashboardController(dashboardService, fakeAuth).RegisterRoutes(api)
	NewWorkerController(service.NewWorkerService(workers, nop), fakeAuth).RegisterRoutes(api)
	NewClientController(service.NewClientService(clients, nop), fakeAuth).RegisterRoutes(api)
	return app, store
}

func do(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestRoutes_Status(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
	}{
		{"pending", "GET", "/api/documents/pending", nil, 200},
		{"worker documents", "GET", "/api/documents/worker/w1", nil, 200},
		{"hoja de vida", "GET", "/api/documents/worker/w1/hoja-vida", nil, 200},
		{"missing antecedentes", "GET", "/api/documents/worker/w1/antecedentes", nil, 404},
		{"empty titulos", "GET", "/api/documents/worker/w1/titulos", nil, 200},
		{"check requirements", "GET", "/api/documents/worker/w1/check-requirements", nil, 200},
		{"file url", "GET", "/api/documents/file-url?workerId=w1&category=hojaDeVida&filename=cv.pdf", nil, 200},
		{"file url missing filename", "GET", "/api/documents/file-url?workerId=w1&category=hojaDeVida", nil, 400},
		{"file url traversal", "GET", "/api/documents/file-url?workerId=w1&category=hojaDeVida&filename=..%2Fx", nil, 400},
		{"create bad file type", "POST", "/api/documents", map[string]interface{}{
			"id": "x", "workerId": "w1", "documentType": "cv", "category": "hojaDeVida",
			"fileName": "cv.exe", "fileUrl": "u", "fileType": "application/x-msdownload",
		}, 400},
		{"reject short reason", "POST", "/api/documents/reject", map[string]interface{}{
			"workerId": "w1", "category": "hojaDeVida", "reason": "corto",
		}, 400},
		{"approve missing", "POST", "/api/documents/approve", map[string]interface{}{
			"workerId": "w2", "category": "antecedentesJudiciales",
		}, 404},
		{"stats", "GET", "/api/dashboard/stats", nil, 200},
		{"weekly", "GET", "/api/dashboard/weekly-trends", nil, 200},
		{"monthly", "GET", "/api/dashboard/monthly-trends", nil, 200},
		{"activity", "GET", "/api/dashboard/activity-stats", nil, 200},
		{"workers", "GET", "/api/workers?category=Plomero", nil, 200},
		{"worker statistics", "GET", "/api/workers/statistics", nil, 200},
		{"missing worker", "GET", "/api/workers/ghost", nil, 404},
		{"rating out of range", "POST", "/api/workers/w1/add_rating", map[string]interface{}{"rating": 9}, 400},
		{"availability without body field", "PATCH", "/api/workers/w1/availability", map[string]interface{}{}, 400},
		{"bad verification status", "PATCH", "/api/workers/w1/verification_status", map[string]interface{}{"status": "maybe"}, 400},
		{"clients", "GET", "/api/clients?search=car", nil, 200},
		{"client count", "GET", "/api/clients/count", nil, 200},
		{"missing client", "GET", "/api/clients/ghost", nil, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := do(t, app, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.status == 200, env.Success)
		})
	}
}

func TestRoutes_ApproveUsesTokenReviewer(t *testing.T) {
	app, store := newTestApp(t)

	status, _ := do(t, app, "POST", "/api/documents/approve", map[string]interface{}{
		"workerId": "w1", "category": "hojaDeVida",
	})
	require.Equal(t, 200, status)

	raw, err := store.Read(context.Background(), entity.DocumentsRoot+"/w1/hojaDeVida")
	require.NoError(t, err)
	doc := raw.(map[string]interface{})
	assert.Equal(t, "approved", doc["status"])
	assert.Equal(t, "admin-1", doc["reviewedBy"])
	assert.Equal(t, "cv.pdf", doc["fileName"])

	_, env := do(t, app, "GET", "/api/documents/pending", nil)
	var pending struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &pending))
	assert.Equal(t, 0, pending.Count)
}

func TestRoutes_WeeklyTrendShape(t *testing.T) {
	app, _ := newTestApp(t)

	_, env := do(t, app, "GET", "/api/dashboard/weekly-trends", nil)
	var points []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &points))
	require.Len(t, points, 7)
	for _, key := range []string{"day", "workers", "documents", "documentsUploaded", "date"} {
		assert.Contains(t, points[0], key)
	}
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), points[6]["date"])
}

func TestRoutes_AddRating(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := do(t, app, "POST", "/api/workers/w1/add_rating", map[string]interface{}{"rating": 5})
	require.Equal(t, 200, status)

	var res struct {
		Rating       float64 `json:"rating"`
		TotalRatings int64   `json:"totalRatings"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 4.5, res.Rating)
	assert.Equal(t, int64(2), res.TotalRatings)
}
