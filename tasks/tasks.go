package tasks

import (
	"context"

	"github.com/amparo-care/amparo/client"
	"github.com/amparo-care/amparo/visits"
)

const (
	StatusPending = "pendente"
	StatusDone    = "concluida"
)

// Task is a care chore assigned to an elder (feeding, bathing, walks).
type Task struct {
	ID          string          `json:"id"`
	ElderID     string          `json:"idosoId"`
	Description string          `json:"descricao"`
	Status      string          `json:"status"`
	Date        visits.FlexTime `json:"dataTarefa,omitempty"`
}

type Client interface {
	ListByElder(ctx context.Context, elderId string) ([]Task, error)
	Create(ctx context.Context, task Task) (*Task, error)
	SetStatus(ctx context.Context, taskId, status string) error
}

type apiClient struct {
	http *client.Client
}

var _ Client = &apiClient{}

func NewClient(http *client.Client) Client {
	return &apiClient{http: http}
}

func (c *apiClient) ListByElder(ctx context.Context, elderId string) ([]Task, error) {
	var list []Task
	if err := c.http.Get(ctx, "/tarefas/idoso/"+elderId, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *apiClient) Create(ctx context.Context, task Task) (*Task, error) {
	created := &Task{}
	if err := c.http.Post(ctx, "/tarefas", task, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *apiClient) SetStatus(ctx context.Context, taskId, status string) error {
	body := map[string]string{"status": status}
	return c.http.Put(ctx, "/tarefas/"+taskId, body, nil)
}
