package events

import (
	"context"
	"time"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/logger"
	pkgEvents "github.com/zXpect/Panel-admln-ADS-backend/pkg/events"
	pktNats "github.com/zXpect/Panel-admln-ADS-backend/pkg/nats"
)

// Event types emitted by the document review flow
const (
	DocumentUploaded = "DOCUMENT_UPLOADED"
	DocumentApproved = "DOCUMENT_APPROVED"
	DocumentRejected = "DOCUMENT_REJECTED"
	DocumentDeleted  = "DOCUMENT_DELETED"
)

// Publisher abstracts event publishing for document review operations
type Publisher interface {
	PublishDocumentUploaded(ctx context.Context, ref entity.DocumentRef, fileName string)
	PublishDocumentApproved(ctx context.Context, ref entity.DocumentRef, reviewerId string)
	PublishDocumentRejected(ctx context.Context, ref entity.DocumentRef, reviewerId, reason string)
	PublishDocumentDeleted(ctx context.Context, ref entity.DocumentRef)
}

// NatsPublisher implements Publisher using NATS. A nil underlying publisher
// turns every call into a no-op.
type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *NatsPublisher) PublishDocumentUploaded(ctx context.Context, ref entity.DocumentRef, fileName string) {
	p.publish(ctx, DocumentUploaded, ref, map[string]interface{}{
		"file_name": fileName,
	})
}

func (p *NatsPublisher) PublishDocumentApproved(ctx context.Context, ref entity.DocumentRef, reviewerId string) {
	p.publish(ctx, DocumentApproved, ref, map[string]interface{}{
		"reviewer_id": reviewerId,
	})
}

func (p *NatsPublisher) PublishDocumentRejected(ctx context.Context, ref entity.DocumentRef, reviewerId, reason string) {
	p.publish(ctx, DocumentRejected, ref, map[string]interface{}{
		"reviewer_id": reviewerId,
		"reason":      reason,
	})
}

func (p *NatsPublisher) PublishDocumentDeleted(ctx context.Context, ref entity.DocumentRef) {
	p.publish(ctx, DocumentDeleted, ref, nil)
}

func (p *NatsPublisher) publish(ctx context.Context, eventType string, ref entity.DocumentRef, extra map[string]interface{}) {
	if p.publisher == nil {
		return
	}

	now := time.Now()
	data := map[string]interface{}{
		"worker_id":     ref.WorkerId,
		"category":      ref.Category,
		"subcategory":   ref.Subcategory,
		"document_id":   ref.DocumentId,
		"document_type": ref.TypeLabel(),
		"entity_type":   "worker_document",
		"entity_id":     ref.Path(entity.DocumentsRoot),
		"occurred_at":   now,
	}
	for k, v := range extra {
		data[k] = v
	}

	evt := pkgEvents.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: now,
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}
