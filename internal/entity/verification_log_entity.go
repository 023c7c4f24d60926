package entity

import (
	"time"

	"github.com/google/uuid"
)

type VerificationAction string

const (
	VerificationActionUploaded VerificationAction = "pending"
	VerificationActionApproved VerificationAction = "approved"
	VerificationActionRejected VerificationAction = "rejected"
	VerificationActionDeleted  VerificationAction = "deleted"
)

// VerificationLog records one review action on a worker document.
type VerificationLog struct {
	Id           uuid.UUID
	WorkerId     string
	DocumentType string
	DocumentId   string
	Action       VerificationAction
	ReviewerId   string
	Reason       *string
	Path         string
	Metadata     map[string]interface{}
	CreatedAt    time.Time
}
