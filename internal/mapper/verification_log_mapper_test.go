package mapper

import (
	"testing"
	"time"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationLogMapper_KeepsMetadata(t *testing.T) {
	m := NewVerificationLogMapper()
	reason := "document illegible"
	in := &entity.VerificationLog{
		Id:           uuid.New(),
		WorkerId:     "w1",
		DocumentType: entity.CategoryHojaDeVida,
		Action:       entity.VerificationActionRejected,
		ReviewerId:   "admin-1",
		Reason:       &reason,
		Path:         "WorkerDocuments/w1/hojaDeVida",
		Metadata:     map[string]interface{}{"fileName": "cv.pdf"},
		CreatedAt:    time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	row, err := m.ToModel(in)
	require.NoError(t, err)
	assert.Equal(t, "rejected", row.Action)
	assert.JSONEq(t, `{"fileName":"cv.pdf"}`, string(row.Metadata))

	out := m.ToEntity(row)
	assert.Equal(t, in, out)
}

func TestVerificationLogMapper_Nil(t *testing.T) {
	m := NewVerificationLogMapper()
	assert.Nil(t, m.ToEntity(nil))

	row, err := m.ToModel(&entity.VerificationLog{WorkerId: "w1"})
	require.NoError(t, err)
	assert.Nil(t, row.Metadata)
	assert.Nil(t, m.ToEntity(row).Metadata)
}
