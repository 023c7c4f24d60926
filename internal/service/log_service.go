package service

import (
	"context"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/dto"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/logger"
)

type ILogService interface {
	GetSystemLogs(ctx context.Context, query dto.LogListQuery) ([]*dto.LogListResponse, error)
}

type logService struct {
	logFilePath string
}

func NewLogService(logFilePath string) ILogService {
	return &logService{logFilePath: logFilePath}
}

func (s *logService) GetSystemLogs(ctx context.Context, query dto.LogListQuery) ([]*dto.LogListResponse, error) {
	page, limit := query.Page, query.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	entries, err := logger.ReadLogs(s.logFilePath, logger.LogFilter{
		Level:  query.Level,
		Module: query.Module,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.LogListResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, &dto.LogListResponse{
			Id:        e.Id,
			Timestamp: e.Timestamp,
			Level:     e.Level,
			Module:    e.Module,
			Message:   e.Message,
			Details:   e.Details,
		})
	}
	return res, nil
}
