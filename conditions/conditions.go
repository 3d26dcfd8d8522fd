package conditions

import (
	"context"

	"github.com/amparo-care/amparo/client"
)

// Condition is a health condition from the shared catalog administrators
// curate; elders reference them by name.
type Condition struct {
	ID          string `json:"id"`
	Name        string `json:"nome"`
	Description string `json:"descricao,omitempty"`
}

type Client interface {
	List(ctx context.Context) ([]Condition, error)
	Create(ctx context.Context, condition Condition) (*Condition, error)
}

type apiClient struct {
	http *client.Client
}

var _ Client = &apiClient{}

func NewClient(http *client.Client) Client {
	return &apiClient{http: http}
}

func (c *apiClient) List(ctx context.Context) ([]Condition, error) {
	var list []Condition
	if err := c.http.Get(ctx, "/condicoesSaude", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *apiClient) Create(ctx context.Context, condition Condition) (*Condition, error) {
	created := &Condition{}
	if err := c.http.Post(ctx, "/condicoesSaude", condition, created); err != nil {
		return nil, err
	}
	return created, nil
}
