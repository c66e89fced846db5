package catalog

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookbuddy/library-client/internal/errs"
	"github.com/bookbuddy/library-client/internal/model"
)

// Detail drives the single-book view. Navigating to another id bumps the
// generation, so a late response for the previous id is dropped.
type Detail struct {
	api  API
	auth Auth
	log  *zap.Logger

	mu     sync.Mutex
	gen    uint64
	id     string
	book   model.Book
	loaded bool
}

func NewDetail(api API, auth Auth, log *zap.Logger) *Detail {
	return &Detail{
		api:  api,
		auth: auth,
		log:  log.Named("detail"),
	}
}

// Show fetches the book with the given id and makes it the current one.
func (d *Detail) Show(ctx context.Context, id string) error {
	d.mu.Lock()
	d.gen++
	gen := d.gen
	d.id = id
	d.loaded = false
	d.mu.Unlock()

	book, err := d.api.GetBook(ctx, id)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		d.log.Debug("discarding stale book", zap.String("id", id))
		return nil
	}
	if err != nil {
		return err
	}
	d.book = book
	d.loaded = true
	return nil
}

// Book returns the currently shown book, if one has loaded.
func (d *Detail) Book() (model.Book, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.book, d.loaded
}

// Reserve creates a reservation for the shown book and re-fetches it so
// the view reflects the server-side availability change. The local copy
// is never mutated on failure.
func (d *Detail) Reserve(ctx context.Context) (model.Reservation, error) {
	if !d.auth.IsAuthenticated() {
		return model.Reservation{}, errors.WithMessage(errs.ErrAuth, "login required")
	}
	d.mu.Lock()
	id := d.id
	loaded := d.loaded
	d.mu.Unlock()
	if !loaded {
		return model.Reservation{}, errs.ErrNotFound
	}

	rsv, err := d.api.CreateReservation(ctx, id, d.auth.Token())
	if err != nil {
		if errors.Is(err, errs.ErrAuth) {
			d.auth.Logout()
		}
		return model.Reservation{}, err
	}

	if err := d.Show(ctx, id); err != nil {
		// reservation succeeded, only the refresh failed
		d.log.Warn("refresh after reserve", zap.String("id", id), zap.Error(err))
	}
	return rsv, nil
}
