// Package lifecycle moves worker documents through pending, approved and
// rejected, and lists what is still waiting for review.
package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/logger"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/contract"
	adminEvents "github.com/zXpect/Panel-admln-ADS-backend/pkg/admin/events"
)

// MinRejectionReasonLength is the shortest accepted rejection reason, counted
// in characters after trimming.
const MinRejectionReasonLength = 10

// singletons and collections in listing order
var (
	singletonCategories   = []string{entity.CategoryHojaDeVida, entity.CategoryAntecedentes}
	collectionSubcategory = []string{entity.SubcategoryTitulos, entity.SubcategoryCartas}
)

type Manager struct {
	documents contract.DocumentRepository
	audit     contract.VerificationLogRepository
	publisher adminEvents.Publisher
	logger    logger.ILogger
	now       func() time.Time
}

func NewManager(
	documents contract.DocumentRepository,
	audit contract.VerificationLogRepository,
	publisher adminEvents.Publisher,
	logger logger.ILogger,
) *Manager {
	if publisher == nil {
		publisher = adminEvents.NewNatsPublisher(nil, logger)
	}
	return &Manager{
		documents: documents,
		audit:     audit,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock replaces the time source used for uploadedAt and reviewedAt.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Create stores a new document as pending. data must carry "category" and
// "id"; "subcategory" selects a collection under certificaciones. The stored
// value is returned.
func (m *Manager) Create(ctx context.Context, workerId string, data map[string]interface{}) (map[string]interface{}, error) {
	category, _ := data["category"].(string)
	subcategory, _ := data["subcategory"].(string)
	documentId, _ := data["id"].(string)

	if strings.TrimSpace(category) == "" {
		return nil, entity.NewValidationError("category", "is required")
	}
	if strings.TrimSpace(documentId) == "" {
		return nil, entity.NewValidationError("id", "is required")
	}

	ref := entity.DocumentRef{
		WorkerId:    workerId,
		Category:    category,
		Subcategory: subcategory,
		DocumentId:  documentId,
	}
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	stored := make(map[string]interface{}, len(data)+4)
	for k, v := range data {
		stored[k] = v
	}
	if subcategory == "" {
		delete(stored, "subcategory")
	}
	stored["uploadedAt"] = m.now().UnixMilli()
	stored["status"] = string(entity.DocumentStatusPending)
	stored["reviewedAt"] = 0
	stored["workerId"] = workerId

	if err := m.documents.Write(ctx, ref, stored); err != nil {
		m.logger.Error("DOCUMENTS", "Failed to create document", map[string]interface{}{
			"worker_id": workerId,
			"path":      ref.Path(entity.DocumentsRoot),
			"error":     err.Error(),
		})
		return nil, err
	}

	m.logger.Info("DOCUMENTS", "Document created", map[string]interface{}{
		"worker_id": workerId,
		"type":      ref.TypeLabel(),
	})
	fileName, _ := data["fileName"].(string)
	m.record(ctx, entity.VerificationActionUploaded, ref, "", nil, map[string]interface{}{"fileName": fileName})
	m.publisher.PublishDocumentUploaded(ctx, ref, fileName)

	return stored, nil
}

// Approve marks the document at ref approved. Re-approving a reviewed
// document overwrites the previous review.
func (m *Manager) Approve(ctx context.Context, ref entity.DocumentRef, reviewerId string) error {
	if err := m.checkReview(ctx, ref, reviewerId); err != nil {
		return err
	}

	err := m.documents.Merge(ctx, ref, map[string]interface{}{
		"status":          string(entity.DocumentStatusApproved),
		"reviewedAt":      m.now().UnixMilli(),
		"reviewedBy":      reviewerId,
		"rejectionReason": nil,
	})
	if err != nil {
		return m.fail("approve", ref, err)
	}

	m.logger.Info("DOCUMENTS", "Document approved", map[string]interface{}{
		"worker_id":   ref.WorkerId,
		"type":        ref.TypeLabel(),
		"reviewer_id": reviewerId,
	})
	m.record(ctx, entity.VerificationActionApproved, ref, reviewerId, nil, nil)
	m.publisher.PublishDocumentApproved(ctx, ref, reviewerId)
	return nil
}

// Reject marks the document at ref rejected with a trimmed reason of at least
// MinRejectionReasonLength characters.
func (m *Manager) Reject(ctx context.Context, ref entity.DocumentRef, reviewerId, reason string) error {
	reason, err := ValidateReason(reason)
	if err != nil {
		return err
	}
	if err := m.checkReview(ctx, ref, reviewerId); err != nil {
		return err
	}

	err = m.documents.Merge(ctx, ref, map[string]interface{}{
		"status":          string(entity.DocumentStatusRejected),
		"reviewedAt":      m.now().UnixMilli(),
		"reviewedBy":      reviewerId,
		"rejectionReason": reason,
	})
	if err != nil {
		return m.fail("reject", ref, err)
	}

	m.logger.Info("DOCUMENTS", "Document rejected", map[string]interface{}{
		"worker_id":   ref.WorkerId,
		"type":        ref.TypeLabel(),
		"reviewer_id": reviewerId,
	})
	m.record(ctx, entity.VerificationActionRejected, ref, reviewerId, &reason, nil)
	m.publisher.PublishDocumentRejected(ctx, ref, reviewerId, reason)
	return nil
}

// Delete removes the node at ref. Deleting an absent document succeeds.
func (m *Manager) Delete(ctx context.Context, ref entity.DocumentRef) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	if err := m.documents.Remove(ctx, ref); err != nil {
		return m.fail("delete", ref, err)
	}

	m.logger.Info("DOCUMENTS", "Document deleted", map[string]interface{}{
		"worker_id": ref.WorkerId,
		"type":      ref.TypeLabel(),
	})
	m.record(ctx, entity.VerificationActionDeleted, ref, "", nil, nil)
	m.publisher.PublishDocumentDeleted(ctx, ref)
	return nil
}

// ListPending walks every worker's tree and returns the pending documents,
// ordered by worker id, then hoja de vida, antecedentes, títulos, cartas.
func (m *Manager) ListPending(ctx context.Context) ([]entity.PendingDocument, error) {
	all, err := m.documents.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	pending := []entity.PendingDocument{}
	for _, w := range all {
		pending = append(pending, PendingIn(w)...)
	}

	m.logger.Info("DOCUMENTS", "Pending documents listed", map[string]interface{}{
		"count": len(pending),
	})
	return pending, nil
}

// PendingIn returns the pending documents of one worker's tree.
func PendingIn(w *entity.WorkerDocuments) []entity.PendingDocument {
	var out []entity.PendingDocument

	for _, category := range singletonCategories {
		node, ok := w.Singleton(category).(*entity.DocumentNode)
		if !ok || node.Document.Status != entity.DocumentStatusPending {
			continue
		}
		out = append(out, entity.PendingDocument{
			Ref: entity.DocumentRef{
				WorkerId:   w.WorkerId,
				Category:   category,
				DocumentId: node.Document.Id,
			},
			Document: node.Document,
		})
	}

	for _, sub := range collectionSubcategory {
		collection := w.Collection(sub)
		if collection == nil {
			continue
		}
		for _, child := range collection.Children {
			node, ok := child.(*entity.DocumentNode)
			if !ok || node.Document.Status != entity.DocumentStatusPending {
				continue
			}
			out = append(out, entity.PendingDocument{
				Ref: entity.DocumentRef{
					WorkerId:    w.WorkerId,
					Category:    entity.CategoryCertificaciones,
					Subcategory: sub,
					DocumentId:  node.Key(),
				},
				Document: node.Document,
			})
		}
	}
	return out
}

// ValidateReason trims reason and checks its length.
func ValidateReason(reason string) (string, error) {
	trimmed := strings.TrimSpace(reason)
	if trimmed == "" {
		return "", entity.NewValidationError("reason", "is required")
	}
	if utf8.RuneCountInString(trimmed) < MinRejectionReasonLength {
		return "", entity.NewValidationError("reason", fmt.Sprintf("must be at least %d characters", MinRejectionReasonLength))
	}
	return trimmed, nil
}

// checkReview validates a review request and that the target exists, so a
// partial merge never materializes a document that was not uploaded.
func (m *Manager) checkReview(ctx context.Context, ref entity.DocumentRef, reviewerId string) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(reviewerId) == "" {
		return entity.NewValidationError("reviewerId", "is required")
	}

	doc, err := m.documents.FindOne(ctx, ref)
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("document %s: %w", ref.Path(entity.DocumentsRoot), entity.ErrNotFound)
	}
	return nil
}

func (m *Manager) fail(op string, ref entity.DocumentRef, err error) error {
	m.logger.Error("DOCUMENTS", "Failed to "+op+" document", map[string]interface{}{
		"worker_id": ref.WorkerId,
		"path":      ref.Path(entity.DocumentsRoot),
		"error":     err.Error(),
	})
	return err
}

// record appends to the audit trail. The mutation already happened, so a
// failure here is only logged.
func (m *Manager) record(ctx context.Context, action entity.VerificationAction, ref entity.DocumentRef, reviewerId string, reason *string, metadata map[string]interface{}) {
	if m.audit == nil {
		return
	}
	err := m.audit.Create(ctx, &entity.VerificationLog{
		WorkerId:     ref.WorkerId,
		DocumentType: ref.TypeLabel(),
		DocumentId:   ref.DocumentId,
		Action:       action,
		ReviewerId:   reviewerId,
		Reason:       reason,
		Path:         ref.Path(entity.DocumentsRoot),
		Metadata:     metadata,
		CreatedAt:    m.now(),
	})
	if err != nil {
		m.logger.Warn("AUDIT", "Failed to record verification log", map[string]interface{}{
			"worker_id": ref.WorkerId,
			"action":    string(action),
			"error":     err.Error(),
		})
	}
}
