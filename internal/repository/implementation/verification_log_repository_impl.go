package implementation

import (
	"context"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/mapper"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/model"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/contract"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type verificationLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VerificationLogMapper
}

func NewVerificationLogRepository(db *gorm.DB) contract.VerificationLogRepository {
	return &verificationLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewVerificationLogMapper(),
	}
}

func (r *verificationLogRepositoryImpl) Create(ctx context.Context, log *entity.VerificationLog) error {
	if log.Id == uuid.Nil {
		log.Id = uuid.New()
	}

	m, err := r.mapper.ToModel(log)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *verificationLogRepositoryImpl) FindByWorker(ctx context.Context, workerId string, limit, offset int) ([]*entity.VerificationLog, error) {
	specs := []specification.Specification{
		specification.ByWorkerId{WorkerId: workerId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if limit > 0 {
		specs = append(specs, specification.Pagination{Limit: limit, Offset: offset})
	}

	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}

	var rows []model.VerificationLog
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	logs := make([]*entity.VerificationLog, 0, len(rows))
	for i := range rows {
		logs = append(logs, r.mapper.ToEntity(&rows[i]))
	}
	return logs, nil
}
