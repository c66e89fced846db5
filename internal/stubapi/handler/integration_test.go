package handler_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookbuddy/library-client/config"
	"github.com/bookbuddy/library-client/internal/catalog"
	"github.com/bookbuddy/library-client/internal/client"
	"github.com/bookbuddy/library-client/internal/errs"
	"github.com/bookbuddy/library-client/internal/session"
	"github.com/bookbuddy/library-client/internal/stubapi/handler"
	"github.com/bookbuddy/library-client/internal/stubapi/storage"
)

// The whole client stack against the stub server: register, browse,
// reserve, return, logout.
func TestClientAgainstStub(t *testing.T) {
	t.Parallel()

	h := handler.New(storage.New(), zap.NewExample().Named("test"), config.Auth{
		JWTKey:   "test-key",
		TokenTTL: time.Hour,
	})
	srv := httptest.NewServer(h.NewRouter())
	t.Cleanup(srv.Close)

	log := zap.NewExample().Named("test")
	api := client.New(log, config.API{BaseURL: srv.URL + "/api"})
	tokenPath := filepath.Join(t.TempDir(), "token")
	sess := session.New(api, session.NewFileStore(tokenPath), log)

	ctx := context.Background()

	// anonymous browsing
	browser := catalog.NewBrowser(api, log)
	browser.Load(ctx)
	require.NoError(t, browser.Err())
	require.Len(t, browser.Books("", false), 4)
	require.Equal(t, 1, len(browser.Books("herbert", true)))

	// reserve requires login
	detail := catalog.NewDetail(api, sess, log)
	require.NoError(t, detail.Show(ctx, "1"))
	_, err := detail.Reserve(ctx)
	require.ErrorIs(t, err, errs.ErrAuth)

	require.NoError(t, sess.Register(ctx, "Paul", "Atreides", "paul@arrakis.io", "melange"))
	require.True(t, sess.IsAuthenticated())

	// a new process restores the persisted token
	sess2 := session.New(api, session.NewFileStore(tokenPath), log)
	require.True(t, sess2.IsAuthenticated())
	require.NoError(t, sess2.Hydrate(ctx))
	require.Equal(t, "Paul", sess2.User().FirstName)

	rsv, err := detail.Reserve(ctx)
	require.NoError(t, err)
	book, ok := detail.Book()
	require.True(t, ok)
	require.False(t, book.Available)

	// reserving the same book again conflicts
	_, err = detail.Reserve(ctx)
	require.ErrorIs(t, err, errs.ErrConflict)

	account := catalog.NewAccount(api, sess, log)
	require.NoError(t, account.Load(ctx))
	require.Equal(t, "paul@arrakis.io", account.User().Email)
	require.Len(t, account.Reservations(), 1)
	require.Equal(t, "Dune", account.Reservations()[0].Book.Title)

	require.NoError(t, account.Return(ctx, rsv.ID))
	require.Empty(t, account.Reservations())
	// returning again is still fine for the caller
	require.NoError(t, account.Return(ctx, rsv.ID))

	require.NoError(t, detail.Show(ctx, "1"))
	book, _ = detail.Book()
	require.True(t, book.Available)

	sess.Logout()
	require.False(t, sess.IsAuthenticated())
	require.ErrorIs(t, account.Load(ctx), errs.ErrAuth)
}
