package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/dto"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/logger"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/contract"
	"github.com/zXpect/Panel-admln-ADS-backend/pkg/verification/lifecycle"
	"github.com/zXpect/Panel-admln-ADS-backend/pkg/verification/requirements"
)

type IDocumentService interface {
	GetPending(ctx context.Context) (*dto.PendingDocumentsResponse, error)
	GetWorkerDocuments(ctx context.Context, workerId string) (map[string]interface{}, error)
	GetHojaVida(ctx context.Context, workerId string) (map[string]interface{}, error)
	GetAntecedentes(ctx context.Context, workerId string) (map[string]interface{}, error)
	GetTitulos(ctx context.Context, workerId string) (map[string]interface{}, error)
	GetCartas(ctx context.Context, workerId string) (map[string]interface{}, error)

	Create(ctx context.Context, req *dto.CreateDocumentRequest) (map[string]interface{}, error)
	Approve(ctx context.Context, req *dto.ApproveDocumentRequest) error
	Reject(ctx context.Context, req *dto.RejectDocumentRequest) error
	Delete(ctx context.Context, req *dto.DocumentRefRequest) error

	CheckRequirements(ctx context.Context, workerId string) (*dto.RequirementCheckResponse, error)
	GetFileURL(ctx context.Context, req *dto.FileURLRequest) (*dto.FileURLResponse, error)
	GetHistory(ctx context.Context, workerId string, page, limit int) ([]*dto.VerificationLogResponse, error)
}

type documentService struct {
	documents  contract.DocumentRepository
	files      contract.FileStore
	audit      contract.VerificationLogRepository
	lifecycle  *lifecycle.Manager
	evaluator  *requirements.Evaluator
	fileURLTTL time.Duration
	logger     logger.ILogger
}

func NewDocumentService(
	documents contract.DocumentRepository,
	files contract.FileStore,
	audit contract.VerificationLogRepository,
	lifecycleManager *lifecycle.Manager,
	evaluator *requirements.Evaluator,
	fileURLTTL time.Duration,
	logger logger.ILogger,
) IDocumentService {
	return &documentService{
		documents:  documents,
		files:      files,
		audit:      audit,
		lifecycle:  lifecycleManager,
		evaluator:  evaluator,
		fileURLTTL: fileURLTTL,
		logger:     logger,
	}
}

func (s *documentService) GetPending(ctx context.Context) (*dto.PendingDocumentsResponse, error) {
	pending, err := s.lifecycle.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.PendingDocumentsResponse{
		Count:     len(pending),
		Documents: make([]dto.PendingDocumentResponse, 0, len(pending)),
	}
	for _, p := range pending {
		res.Documents = append(res.Documents, pendingToResponse(p))
	}
	return res, nil
}

func (s *documentService) GetWorkerDocuments(ctx context.Context, workerId string) (map[string]interface{}, error) {
	raw, err := s.documents.ReadRaw(ctx, workerId)
	if err != nil {
		return nil, err
	}
	if m := entity.AsMap(raw); m != nil {
		return m, nil
	}
	return map[string]interface{}{}, nil
}

func (s *documentService) GetHojaVida(ctx context.Context, workerId string) (map[string]interface{}, error) {
	return s.singleton(ctx, workerId, entity.CategoryHojaDeVida)
}

func (s *documentService) GetAntecedentes(ctx context.Context, workerId string) (map[string]interface{}, error) {
	return s.singleton(ctx, workerId, entity.CategoryAntecedentes)
}

func (s *documentService) GetTitulos(ctx context.Context, workerId string) (map[string]interface{}, error) {
	return s.collection(ctx, workerId, entity.SubcategoryTitulos)
}

func (s *documentService) GetCartas(ctx context.Context, workerId string) (map[string]interface{}, error) {
	return s.collection(ctx, workerId, entity.SubcategoryCartas)
}

func (s *documentService) singleton(ctx context.Context, workerId, category string) (map[string]interface{}, error) {
	raw, err := s.documents.ReadRaw(ctx, workerId, category)
	if err != nil {
		return nil, err
	}
	m := entity.AsMap(raw)
	if m == nil {
		return nil, fmt.Errorf("%s of worker %s: %w", category, workerId, entity.ErrNotFound)
	}
	return m, nil
}

func (s *documentService) collection(ctx context.Context, workerId, subcategory string) (map[string]interface{}, error) {
	raw, err := s.documents.ReadRaw(ctx, workerId, entity.CategoryCertificaciones, subcategory)
	if err != nil {
		return nil, err
	}
	if m := entity.AsMap(raw); m != nil {
		return m, nil
	}
	return map[string]interface{}{}, nil
}

func (s *documentService) Create(ctx context.Context, req *dto.CreateDocumentRequest) (map[string]interface{}, error) {
	return s.lifecycle.Create(ctx, req.WorkerId, req.ToMap())
}

func (s *documentService) Approve(ctx context.Context, req *dto.ApproveDocumentRequest) error {
	return s.lifecycle.Approve(ctx, refFromRequest(req.DocumentRefRequest), req.ReviewerId)
}

func (s *documentService) Reject(ctx context.Context, req *dto.RejectDocumentRequest) error {
	return s.lifecycle.Reject(ctx, refFromRequest(req.DocumentRefRequest), req.ReviewerId, req.Reason)
}

func (s *documentService) Delete(ctx context.Context, req *dto.DocumentRefRequest) error {
	return s.lifecycle.Delete(ctx, refFromRequest(*req))
}

func (s *documentService) CheckRequirements(ctx context.Context, workerId string) (*dto.RequirementCheckResponse, error) {
	tree, err := s.documents.FindByWorker(ctx, workerId)
	if err != nil {
		return nil, err
	}

	snap := s.evaluator.Evaluate(tree)
	s.logger.Debug("DOCUMENTS", "Requirements evaluated", map[string]interface{}{
		"worker_id":   workerId,
		"is_complete": snap.IsComplete,
	})

	return &dto.RequirementCheckResponse{
		WorkerId:         workerId,
		HasHojaVida:      snap.HasHojaVida,
		HasAntecedentes:  snap.HasAntecedentes,
		HasTitulo:        snap.HasTitulo,
		CartasCount:      snap.CartasCount,
		HasMinimumCartas: snap.HasMinimumCartas,
		IsComplete:       snap.IsComplete,
		Policy:           string(s.evaluator.Policy()),
	}, nil
}

func (s *documentService) GetFileURL(ctx context.Context, req *dto.FileURLRequest) (*dto.FileURLResponse, error) {
	ref := entity.DocumentRef{
		WorkerId:    req.WorkerId,
		Category:    req.Category,
		Subcategory: req.Subcategory,
	}
	switch {
	case entity.IsSingletonCategory(ref.Category):
		if ref.Subcategory != "" {
			return nil, entity.NewValidationError("subcategory", "must be empty for "+ref.Category)
		}
	case ref.Category == entity.CategoryCertificaciones:
		if !entity.IsCollectionSubcategory(ref.Subcategory) {
			return nil, entity.NewValidationError("subcategory", "must be titulos or cartasRecomendacion")
		}
	default:
		return nil, entity.NewValidationError("category", "unknown category "+ref.Category)
	}
	if strings.Contains(req.Filename, "/") || strings.Contains(req.Filename, "..") {
		return nil, entity.NewValidationError("filename", "must be a plain file name")
	}

	objectPath := ref.StoragePath(req.Filename)
	url, expiresAt, err := s.files.SignedURL(ctx, objectPath, s.fileURLTTL)
	if err != nil {
		s.logger.Error("DOCUMENTS", "Failed to sign file URL", map[string]interface{}{
			"path":  objectPath,
			"error": err.Error(),
		})
		return nil, err
	}

	return &dto.FileURLResponse{
		Url:       url,
		ExpiresAt: expiresAt.UnixMilli(),
	}, nil
}

func (s *documentService) GetHistory(ctx context.Context, workerId string, page, limit int) ([]*dto.VerificationLogResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	logs, err := s.audit.FindByWorker(ctx, workerId, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.VerificationLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, &dto.VerificationLogResponse{
			Id:           l.Id.String(),
			WorkerId:     l.WorkerId,
			DocumentType: l.DocumentType,
			DocumentId:   l.DocumentId,
			Action:       string(l.Action),
			ReviewerId:   l.ReviewerId,
			Reason:       l.Reason,
			Metadata:     l.Metadata,
			CreatedAt:    l.CreatedAt.UnixMilli(),
		})
	}
	return res, nil
}

func refFromRequest(req dto.DocumentRefRequest) entity.DocumentRef {
	return entity.DocumentRef{
		WorkerId:    strings.TrimSpace(req.WorkerId),
		Category:    strings.TrimSpace(req.Category),
		Subcategory: strings.TrimSpace(req.Subcategory),
		DocumentId:  strings.TrimSpace(req.DocumentId),
	}
}

func pendingToResponse(p entity.PendingDocument) dto.PendingDocumentResponse {
	res := dto.PendingDocumentResponse{
		WorkerId:    p.Ref.WorkerId,
		Category:    p.Ref.Category,
		Subcategory: p.Ref.Subcategory,
		DocumentId:  p.Ref.DocumentId,
	}
	if d := p.Document; d != nil {
		res.Id = d.Id
		res.DocumentType = d.DocumentType
		res.FileName = d.FileName
		res.FileUrl = d.FileURL
		res.Status = string(d.Status)
		res.UploadedAt = d.UploadedAt.Millis
		res.ReviewedAt = d.ReviewedAt.Millis
	}
	return res
}
