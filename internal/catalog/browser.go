package catalog

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/bookbuddy/library-client/internal/model"
)

// Browser drives the book-list view: it re-fetches on every Load, keeps
// the last error for the Try Again action, and stamps every fetch with a
// generation so a slow response for an abandoned load never overwrites a
// newer one.
type Browser struct {
	api API
	log *zap.Logger

	mu      sync.Mutex
	gen     uint64
	loading bool
	books   []model.Book
	err     error
}

func NewBrowser(api API, log *zap.Logger) *Browser {
	return &Browser{
		api: api,
		log: log.Named("browser"),
	}
}

// Load fetches the full book list. A response belonging to a superseded
// load is discarded.
func (b *Browser) Load(ctx context.Context) {
	b.mu.Lock()
	b.gen++
	gen := b.gen
	b.loading = true
	b.err = nil
	b.mu.Unlock()

	books, err := b.api.ListBooks(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.gen {
		b.log.Debug("discarding stale book list", zap.Uint64("gen", gen))
		return
	}
	b.loading = false
	if err != nil {
		b.err = err
		return
	}
	b.books = books
}

// Retry is the manual recovery action of the list view.
func (b *Browser) Retry(ctx context.Context) {
	b.Load(ctx)
}

// Books returns the fetched set narrowed by the search query and the
// available-only toggle.
func (b *Browser) Books(query string, availableOnly bool) []model.Book {
	b.mu.Lock()
	books := b.books
	b.mu.Unlock()
	return Filter(books, query, availableOnly)
}

func (b *Browser) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

func (b *Browser) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}
