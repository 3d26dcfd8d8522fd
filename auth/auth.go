package auth

import (
	"context"
	"fmt"

	"github.com/amparo-care/amparo/client"
	"github.com/amparo-care/amparo/users"
)

// Credentials is the POST /auth/login response.
type Credentials struct {
	Token string     `json:"token"`
	User  users.User `json:"usuario"`
}

type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type RegistrationParams struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Role     string `json:"tipo"`
}

type Client interface {
	Login(ctx context.Context, params LoginParams) (*Credentials, error)
	Register(ctx context.Context, params RegistrationParams) error
}

type apiClient struct {
	http *client.Client
}

var _ Client = &apiClient{}

func NewClient(http *client.Client) Client {
	return &apiClient{http: http}
}

func (c *apiClient) Login(ctx context.Context, params LoginParams) (*Credentials, error) {
	credentials := &Credentials{}
	if err := c.http.Post(ctx, "/auth/login", params, credentials); err != nil {
		return nil, err
	}
	if credentials.Token == "" {
		return nil, fmt.Errorf("the backend did not return a token")
	}
	return credentials, nil
}

func (c *apiClient) Register(ctx context.Context, params RegistrationParams) error {
	return c.http.Post(ctx, "/auth/register", params, nil)
}
