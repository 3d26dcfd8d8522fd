package notifications

import (
	"context"

	"github.com/amparo-care/amparo/client"
	"github.com/amparo-care/amparo/visits"
)

type Notification struct {
	ID        string          `json:"id"`
	UserID    string          `json:"usuarioId"`
	Message   string          `json:"mensagem"`
	Read      bool            `json:"lida"`
	CreatedAt visits.FlexTime `json:"dataCriacao,omitempty"`
}

//go:generate mockgen --build_flags=--mod=mod -source=./notifications.go -destination=./test/mock_client.go -package test MockClient

type Client interface {
	ListByUser(ctx context.Context, userId string) ([]Notification, error)
	SetRead(ctx context.Context, notificationId string, read bool) error
}

type apiClient struct {
	http *client.Client
}

var _ Client = &apiClient{}

func NewClient(http *client.Client) Client {
	return &apiClient{http: http}
}

func (c *apiClient) ListByUser(ctx context.Context, userId string) ([]Notification, error) {
	var list []Notification
	if err := c.http.Get(ctx, "/notificacoes/usuario/"+userId, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *apiClient) SetRead(ctx context.Context, notificationId string, read bool) error {
	body := map[string]bool{"lida": read}
	return c.http.Put(ctx, "/notificacoes/"+notificationId, body, nil)
}
