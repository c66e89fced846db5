package catalog

import (
	"context"

	"github.com/bookbuddy/library-client/internal/client"
	"github.com/bookbuddy/library-client/internal/model"
	"github.com/bookbuddy/library-client/internal/session"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ API  = (*client.Client)(nil)
	_ Auth = (*session.Session)(nil)
)

// API is the slice of the API client the catalog views depend on.
type API interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	CurrentUser(ctx context.Context, token string) (model.User, error)
	ListReservations(ctx context.Context, token string) ([]model.Reservation, error)
	CreateReservation(ctx context.Context, bookID, token string) (model.Reservation, error)
	DeleteReservation(ctx context.Context, reservationID, token string) error
}

// Auth supplies the bearer token and the forced-logout hook.
type Auth interface {
	Token() string
	IsAuthenticated() bool
	Logout()
}
