package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/dto"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/pkg/logger"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/repository/contract"
)

type IClientService interface {
	// List returns every client, or only those matching search when it is set.
	List(ctx context.Context, search string) ([]*dto.ClientResponse, error)
	Get(ctx context.Context, id string) (*dto.ClientResponse, error)
	Count(ctx context.Context) (*dto.ClientCountResponse, error)
}

type clientService struct {
	clients contract.ClientRepository
	logger  logger.ILogger
}

func NewClientService(clients contract.ClientRepository, logger logger.ILogger) IClientService {
	return &clientService{clients: clients, logger: logger}
}

func (s *clientService) List(ctx context.Context, search string) ([]*dto.ClientResponse, error) {
	clients, err := s.clients.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(search))
	res := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		if q != "" && !containsAny(q, c.Name, c.LastName, c.Email) {
			continue
		}
		res = append(res, clientToResponse(c))
	}

	if q != "" {
		s.logger.Info("CLIENTS", "Client search", map[string]interface{}{"query": search, "results": len(res)})
	}
	return res, nil
}

func (s *clientService) Get(ctx context.Context, id string) (*dto.ClientResponse, error) {
	c, err := s.clients.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("client %s: %w", id, entity.ErrNotFound)
	}
	return clientToResponse(c), nil
}

func (s *clientService) Count(ctx context.Context) (*dto.ClientCountResponse, error) {
	total, err := s.clients.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ClientCountResponse{Total: total}, nil
}

func clientToResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		Id:       c.Id,
		Name:     c.Name,
		LastName: c.LastName,
		Email:    c.Email,
		Phone:    c.Phone,
		Image:    c.Image,
	}
}
