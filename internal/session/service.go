package session

import (
	"context"

	"github.com/bookbuddy/library-client/internal/client"
	"github.com/bookbuddy/library-client/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var _ AuthAPI = (*client.Client)(nil)

// AuthAPI is the slice of the API client the session depends on.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (model.AuthResponse, error)
	Register(ctx context.Context, firstName, lastName, email, password string) (model.AuthResponse, error)
	CurrentUser(ctx context.Context, token string) (model.User, error)
}

// Store persists the bearer token across restarts.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}
