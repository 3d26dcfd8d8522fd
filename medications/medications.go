package medications

import (
	"context"

	"github.com/amparo-care/amparo/client"
)

type Medication struct {
	ID       string `json:"id"`
	ElderID  string `json:"idosoId"`
	Name     string `json:"nome"`
	Dosage   string `json:"dosagem,omitempty"`
	Schedule string `json:"horario,omitempty"`
}

type Client interface {
	ListByElder(ctx context.Context, elderId string) ([]Medication, error)
	Create(ctx context.Context, medication Medication) (*Medication, error)
	Delete(ctx context.Context, medicationId string) error
}

type apiClient struct {
	http *client.Client
}

var _ Client = &apiClient{}

func NewClient(http *client.Client) Client {
	return &apiClient{http: http}
}

func (c *apiClient) ListByElder(ctx context.Context, elderId string) ([]Medication, error) {
	var list []Medication
	if err := c.http.Get(ctx, "/medicacoes/idoso/"+elderId, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *apiClient) Create(ctx context.Context, medication Medication) (*Medication, error) {
	created := &Medication{}
	if err := c.http.Post(ctx, "/medicacoes", medication, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *apiClient) Delete(ctx context.Context, medicationId string) error {
	return c.http.Delete(ctx, "/medicacoes/"+medicationId)
}
