package elders

import (
	"context"

	"github.com/amparo-care/amparo/client"
)

//go:generate mockgen --build_flags=--mod=mod -source=./client.go -destination=./test/mock_client.go -package test MockClient

type Client interface {
	List(ctx context.Context) ([]Elder, error)
	ListByGuardian(ctx context.Context, guardianId string) ([]Elder, error)
	ListByCaregiver(ctx context.Context, caregiverId string) ([]Elder, error)
	Create(ctx context.Context, elder Elder) (*Elder, error)
	Update(ctx context.Context, elder Elder) (*Elder, error)
	Link(ctx context.Context, link Link) error
	SetPhotoURL(ctx context.Context, elderId string, photoUrl *string) error
}

// Link associates an elder with a guardian and optionally a caregiver,
// mirroring PUT /idosos/vincular.
type Link struct {
	ElderID     string `json:"idosoId"`
	GuardianID  string `json:"responsavelId"`
	CaregiverID string `json:"cuidadorId,omitempty"`
}

type apiClient struct {
	http *client.Client
}

var _ Client = &apiClient{}

func NewClient(http *client.Client) Client {
	return &apiClient{http: http}
}

func (c *apiClient) List(ctx context.Context) ([]Elder, error) {
	var list []Elder
	if err := c.http.Get(ctx, "/idosos", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *apiClient) ListByGuardian(ctx context.Context, guardianId string) ([]Elder, error) {
	var list []Elder
	if err := c.http.Get(ctx, "/idosos/responsavel/"+guardianId, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *apiClient) ListByCaregiver(ctx context.Context, caregiverId string) ([]Elder, error) {
	var list []Elder
	if err := c.http.Get(ctx, "/idosos/cuidador/"+caregiverId, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *apiClient) Create(ctx context.Context, elder Elder) (*Elder, error) {
	created := &Elder{}
	if err := c.http.Post(ctx, "/idosos", elder, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *apiClient) Update(ctx context.Context, elder Elder) (*Elder, error) {
	updated := &Elder{}
	if err := c.http.Put(ctx, "/idosos/"+elder.ID, elder, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *apiClient) Link(ctx context.Context, link Link) error {
	return c.http.Put(ctx, "/idosos/vincular", link, nil)
}

// SetPhotoURL updates or clears the elder's photo. A nil url clears it, which
// the backend expects as an explicit null.
func (c *apiClient) SetPhotoURL(ctx context.Context, elderId string, photoUrl *string) error {
	body := map[string]*string{"fotoUrl": photoUrl}
	return c.http.Patch(ctx, "/idosos/"+elderId+"/foto-url", body, nil)
}
