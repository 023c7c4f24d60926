package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/dto"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/logger"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/contract"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/implementation"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/memory"
	"github.com/zXpect/Panel-admln-ADS-backend/pkg/verification/lifecycle"
	"github.com/zXpect/Panel-admln-ADS-backend/pkg/verification/requirements"
)

type stubFileStore struct {
	paths []string
	err   error
}

func (s *stubFileStore) SignedURL(ctx context.Context, objectPath string, ttl time.Duration) (string, time.Time, error) {
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	s.paths = append(s.paths, objectPath)
	return "https://files.example/" + objectPath + "?sig=1", time.Now().Add(ttl), nil
}

type documentFixture struct {
	svc   IDocumentService
	files *stubFileStore
}

func newDocumentFixture(t *testing.T) *documentFixture {
	t.Helper()
	return newDocumentFixtureWith(t, func(files contract.FileStore) contract.FileStore { return files })
}

func newDocumentFixtureWith(t *testing.T, wrap func(contract.FileStore) contract.FileStore) *documentFixture {
	t.Helper()
	store := memory.NewTreeStore()
	documents := implementation.NewDocumentRepository(store, time.UTC)
	audit := memory.NewVerificationLogRepository()

	tick := fixedNow
	manager := lifecycle.NewManager(documents, audit, nil, logger.NewNopLogger()).
		WithClock(func() time.Time {
			tick = tick.Add(time.Minute)
			return tick
		})

	files := &stubFileStore{}
	svc := NewDocumentService(
		documents,
		wrap(files),
		audit,
		manager,
		requirements.NewEvaluator(requirements.PolicyStrict),
		15*time.Minute,
		logger.NewNopLogger(),
	)
	return &documentFixture{svc: svc, files: files}
}

func createRequest(id, category, subcategory string) *dto.CreateDocumentRequest {
	return &dto.CreateDocumentRequest{
		Id:           id,
		WorkerId:     "w1",
		DocumentType: category,
		Category:     category,
		Subcategory:  subcategory,
		FileName:     id + ".pdf",
		FileUrl:      "https://files.example/" + id + ".pdf",
		FileType:     "application/pdf",
		FileSize:     2048,
	}
}

func TestDocumentService_ReadersOnEmptyWorker(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	all, err := f.svc.GetWorkerDocuments(ctx, "w1")
	require.NoError(t, err)
	assert.Empty(t, all)

	titulos, err := f.svc.GetTitulos(ctx, "w1")
	require.NoError(t, err)
	assert.Empty(t, titulos)

	cartas, err := f.svc.GetCartas(ctx, "w1")
	require.NoError(t, err)
	assert.Empty(t, cartas)

	_, err = f.svc.GetHojaVida(ctx, "w1")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = f.svc.GetAntecedentes(ctx, "w1")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestDocumentService_ReviewFlow(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, createRequest("hv", entity.CategoryHojaDeVida, ""))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, createRequest("t1", entity.CategoryCertificaciones, entity.SubcategoryTitulos))
	require.NoError(t, err)

	pending, err := f.svc.GetPending(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, pending.Count)
	assert.Equal(t, entity.CategoryHojaDeVida, pending.Documents[0].Category)
	assert.Equal(t, "t1", pending.Documents[1].DocumentId)
	assert.Equal(t, "pending", pending.Documents[1].Status)

	hv, err := f.svc.GetHojaVida(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "hv.pdf", hv["fileName"])

	err = f.svc.Approve(ctx, &dto.ApproveDocumentRequest{
		DocumentRefRequest: dto.DocumentRefRequest{WorkerId: "w1", Category: entity.CategoryHojaDeVida},
		ReviewerId:         "admin-1",
	})
	require.NoError(t, err)

	err = f.svc.Reject(ctx, &dto.RejectDocumentRequest{
		DocumentRefRequest: dto.DocumentRefRequest{
			WorkerId:    "w1",
			Category:    entity.CategoryCertificaciones,
			Subcategory: entity.SubcategoryTitulos,
			DocumentId:  "t1",
		},
		ReviewerId: "admin-1",
		Reason:     "El documento está ilegible",
	})
	require.NoError(t, err)

	pending, err = f.svc.GetPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pending.Count)
	assert.NotNil(t, pending.Documents)

	history, err := f.svc.GetHistory(ctx, "w1", 1, 10)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, "rejected", history[0].Action)
	assert.Equal(t, "approved", history[1].Action)

	page2, err := f.svc.GetHistory(ctx, "w1", 2, 3)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "pending", page2[0].Action)
}

func TestDocumentService_ReviewMissingDocument(t *testing.T) {
	f := newDocumentFixture(t)

	err := f.svc.Approve(context.Background(), &dto.ApproveDocumentRequest{
		DocumentRefRequest: dto.DocumentRefRequest{WorkerId: "w1", Category: entity.CategoryAntecedentes},
		ReviewerId:         "admin-1",
	})
	assert.ErrorIs(t, err, entity.ErrNotFound)

	err = f.svc.Delete(context.Background(), &dto.DocumentRefRequest{WorkerId: "w1", Category: entity.CategoryAntecedentes})
	assert.NoError(t, err)
}

func TestDocumentService_CheckRequirements(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	for _, req := range []*dto.CreateDocumentRequest{
		createRequest("hv", entity.CategoryHojaDeVida, ""),
		createRequest("ant", entity.CategoryAntecedentes, ""),
		createRequest("c1", entity.CategoryCertificaciones, entity.SubcategoryCartas),
		createRequest("c2", entity.CategoryCertificaciones, entity.SubcategoryCartas),
	} {
		_, err := f.svc.Create(ctx, req)
		require.NoError(t, err)
	}

	res, err := f.svc.CheckRequirements(ctx, "w1")
	require.NoError(t, err)
	assert.True(t, res.HasHojaVida)
	assert.True(t, res.HasAntecedentes)
	assert.False(t, res.HasTitulo)
	assert.Equal(t, 2, res.CartasCount)
	assert.False(t, res.HasMinimumCartas)
	assert.False(t, res.IsComplete)
	assert.Equal(t, string(requirements.PolicyStrict), res.Policy)
}

func TestDocumentService_GetFileURL(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.FileURLRequest
		wantPath string
		wantErr  bool
	}{
		{
			name:     "singleton",
			req:      dto.FileURLRequest{WorkerId: "w1", Category: entity.CategoryHojaDeVida, Filename: "cv.pdf"},
			wantPath: "worker_documents/w1/hojaDeVida/cv.pdf",
		},
		{
			name:     "collection",
			req:      dto.FileURLRequest{WorkerId: "w1", Category: entity.CategoryCertificaciones, Subcategory: entity.SubcategoryTitulos, Filename: "t.pdf"},
			wantPath: "worker_documents/w1/certificaciones/titulos/t.pdf",
		},
		{
			name:    "subcategory on singleton",
			req:     dto.FileURLRequest{WorkerId: "w1", Category: entity.CategoryHojaDeVida, Subcategory: entity.SubcategoryTitulos, Filename: "cv.pdf"},
			wantErr: true,
		},
		{
			name:    "unknown subcategory",
			req:     dto.FileURLRequest{WorkerId: "w1", Category: entity.CategoryCertificaciones, Subcategory: "otros", Filename: "x.pdf"},
			wantErr: true,
		},
		{
			name:    "unknown category",
			req:     dto.FileURLRequest{WorkerId: "w1", Category: "fotos", Filename: "x.png"},
			wantErr: true,
		},
		{
			name:    "path traversal",
			req:     dto.FileURLRequest{WorkerId: "w1", Category: entity.CategoryHojaDeVida, Filename: "../w2/cv.pdf"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDocumentFixture(t)
			res, err := f.svc.GetFileURL(context.Background(), &tt.req)
			if tt.wantErr {
				assert.True(t, entity.IsValidation(err))
				assert.Empty(t, f.files.paths)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{tt.wantPath}, f.files.paths)
			assert.Contains(t, res.Url, tt.wantPath)
			assert.Greater(t, res.ExpiresAt, time.Now().UnixMilli())
		})
	}
}

func TestDocumentService_GetFileURLReportsSigningExpiry(t *testing.T) {
	f := newDocumentFixtureWith(t, implementation.NewCachedFileStore)
	req := &dto.FileURLRequest{WorkerId: "w1", Category: entity.CategoryHojaDeVida, Filename: "cv.pdf"}

	first, err := f.svc.GetFileURL(context.Background(), req)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	second, err := f.svc.GetFileURL(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, f.files.paths, 1, "second call is served from the cache")
	assert.Equal(t, first.Url, second.Url)
	assert.Equal(t, first.ExpiresAt, second.ExpiresAt)
}

func TestDocumentService_GetFileURLStoreError(t *testing.T) {
	f := newDocumentFixture(t)
	f.files.err = errors.New("signing failed")

	_, err := f.svc.GetFileURL(context.Background(), &dto.FileURLRequest{
		WorkerId: "w1", Category: entity.CategoryAntecedentes, Filename: "a.pdf",
	})
	assert.EqualError(t, err, "signing failed")
}
