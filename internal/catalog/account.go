package catalog

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bookbuddy/library-client/internal/errs"
	"github.com/bookbuddy/library-client/internal/model"
)

// Account drives the account view: the profile and the user's
// reservations, fetched together, plus the return action.
type Account struct {
	api  API
	auth Auth
	log  *zap.Logger

	mu           sync.Mutex
	user         model.User
	reservations []model.Reservation
}

func NewAccount(api API, auth Auth, log *zap.Logger) *Account {
	return &Account{
		api:  api,
		auth: auth,
		log:  log.Named("account"),
	}
}

// Load fetches the profile and the reservation list concurrently. Any
// authentication failure clears the session so the caller can redirect
// to login.
func (a *Account) Load(ctx context.Context) error {
	if !a.auth.IsAuthenticated() {
		return errors.WithMessage(errs.ErrAuth, "login required")
	}
	token := a.auth.Token()

	var (
		user model.User
		rsv  []model.Reservation
	)
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		user, err = a.api.CurrentUser(ctx, token)
		return err
	})
	gg.Go(func() error {
		var err error
		rsv, err = a.api.ListReservations(ctx, token)
		return err
	})
	if err := gg.Wait(); err != nil {
		if errors.Is(err, errs.ErrAuth) {
			a.auth.Logout()
		}
		return err
	}

	a.mu.Lock()
	a.user = user
	a.reservations = rsv
	a.mu.Unlock()
	return nil
}

// Return deletes the reservation and removes exactly that id from the
// held list. A reservation that is already gone on the server counts as
// returned.
func (a *Account) Return(ctx context.Context, reservationID string) error {
	if !a.auth.IsAuthenticated() {
		return errors.WithMessage(errs.ErrAuth, "login required")
	}
	if err := a.api.DeleteReservation(ctx, reservationID, a.auth.Token()); err != nil {
		if errors.Is(err, errs.ErrAuth) {
			a.auth.Logout()
			return err
		}
		if !errors.Is(err, errs.ErrNotFound) {
			return err
		}
		a.log.Debug("reservation already deleted", zap.String("id", reservationID))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.reservations[:0]
	for _, r := range a.reservations {
		if r.ID != reservationID {
			kept = append(kept, r)
		}
	}
	a.reservations = kept
	return nil
}

func (a *Account) User() model.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}

func (a *Account) Reservations() []model.Reservation {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]model.Reservation, len(a.reservations))
	copy(out, a.reservations)
	return out
}
