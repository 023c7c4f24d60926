package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VerificationLog is one review action on a worker document.
type VerificationLog struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkerId     string         `gorm:"type:varchar(128);not null;index:idx_verification_logs_worker_created,priority:1"`
	DocumentType string         `gorm:"type:varchar(50);not null"`
	DocumentId   string         `gorm:"type:varchar(128)"`
	Action       string         `gorm:"type:varchar(20);not null;index"`
	ReviewerId   string         `gorm:"type:varchar(128)"`
	Reason       *string        `gorm:"type:text"`
	Path         string         `gorm:"type:text;not null"`
	Metadata     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time      `gorm:"default:now();not null;index:idx_verification_logs_worker_created,priority:2"`
}

func (VerificationLog) TableName() string {
	return "verification_logs"
}
