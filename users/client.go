package users

import (
	"context"

	"github.com/amparo-care/amparo/client"
)

//go:generate mockgen --build_flags=--mod=mod -source=./client.go -destination=./test/mock_client.go -package test MockClient

// Client reads the user directory. Account creation goes through the auth
// package; users are never mutated from here.
type Client interface {
	List(ctx context.Context) ([]User, error)
}

type apiClient struct {
	http *client.Client
}

var _ Client = &apiClient{}

func NewClient(http *client.Client) Client {
	return &apiClient{http: http}
}

func (c *apiClient) List(ctx context.Context) ([]User, error) {
	var list []User
	if err := c.http.Get(ctx, "/usuarios", &list); err != nil {
		return nil, err
	}
	return list, nil
}
