package mapper

import (
	"encoding/json"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/model"

	"gorm.io/datatypes"
)

type VerificationLogMapper struct{}

func NewVerificationLogMapper() *VerificationLogMapper {
	return &VerificationLogMapper{}
}

func (m *VerificationLogMapper) ToEntity(l *model.VerificationLog) *entity.VerificationLog {
	if l == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(l.Metadata) > 0 {
		_ = json.Unmarshal(l.Metadata, &metadata)
	}

	return &entity.VerificationLog{
		Id:           l.Id,
		WorkerId:     l.WorkerId,
		DocumentType: l.DocumentType,
		DocumentId:   l.DocumentId,
		Action:       entity.VerificationAction(l.Action),
		ReviewerId:   l.ReviewerId,
		Reason:       l.Reason,
		Path:         l.Path,
		Metadata:     metadata,
		CreatedAt:    l.CreatedAt,
	}
}

func (m *VerificationLogMapper) ToModel(l *entity.VerificationLog) (*model.VerificationLog, error) {
	if l == nil {
		return nil, nil
	}

	var metadata datatypes.JSON
	if len(l.Metadata) > 0 {
		b, err := json.Marshal(l.Metadata)
		if err != nil {
			return nil, err
		}
		metadata = datatypes.JSON(b)
	}

	return &model.VerificationLog{
		Id:           l.Id,
		WorkerId:     l.WorkerId,
		DocumentType: l.DocumentType,
		DocumentId:   l.DocumentId,
		Action:       string(l.Action),
		ReviewerId:   l.ReviewerId,
		Reason:       l.Reason,
		Path:         l.Path,
		Metadata:     metadata,
		CreatedAt:    l.CreatedAt,
	}, nil
}
