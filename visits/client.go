package visits

import (
	"context"

	"github.com/amparo-care/amparo/client"
)

//go:generate mockgen --build_flags=--mod=mod -source=./client.go -destination=./test/mock_client.go -package test MockClient

// Client reads and creates visit records.
type Client interface {
	List(ctx context.Context) ([]Visit, error)
	ListByCaregiver(ctx context.Context, caregiverId string) ([]Visit, error)
	ListByGuardian(ctx context.Context, guardianId string) ([]Visit, error)
	Create(ctx context.Context, create NewVisit) (*Visit, error)
}

type apiClient struct {
	http *client.Client
}

var _ Client = &apiClient{}

func NewClient(http *client.Client) Client {
	return &apiClient{http: http}
}

func (c *apiClient) List(ctx context.Context) ([]Visit, error) {
	var list []Visit
	if err := c.http.Get(ctx, "/visitas", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *apiClient) ListByCaregiver(ctx context.Context, caregiverId string) ([]Visit, error) {
	var list []Visit
	if err := c.http.Get(ctx, "/visitas/cuidador/"+caregiverId, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *apiClient) ListByGuardian(ctx context.Context, guardianId string) ([]Visit, error) {
	var list []Visit
	if err := c.http.Get(ctx, "/visitas/responsavel/"+guardianId, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *apiClient) Create(ctx context.Context, create NewVisit) (*Visit, error) {
	created := &Visit{}
	if err := c.http.Post(ctx, "/visitas", create, created); err != nil {
		return nil, err
	}
	return created, nil
}
