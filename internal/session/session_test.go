package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookbuddy/library-client/internal/errs"
	"github.com/bookbuddy/library-client/internal/model"
	"github.com/bookbuddy/library-client/internal/session"
	mock_session "github.com/bookbuddy/library-client/internal/session/mocks"
)

func newSession(t *testing.T) (*session.Session, *mock_session.MockAuthAPI, string) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	api := mock_session.NewMockAuthAPI(c)
	path := filepath.Join(t.TempDir(), "token")
	s := session.New(api, session.NewFileStore(path), zap.NewExample().Named("test"))
	return s, api, path
}

func TestSession_Login(t *testing.T) {
	t.Parallel()
	s, api, path := newSession(t)
	require.False(t, s.IsAuthenticated())

	api.EXPECT().
		Login(gomock.Any(), "user@example.com", "pw").
		Return(model.AuthResponse{
			Token: "t1",
			User:  model.User{ID: "u1", Email: "user@example.com"},
		}, nil)

	require.NoError(t, s.Login(context.Background(), "user@example.com", "pw"))
	require.True(t, s.IsAuthenticated())
	require.Equal(t, "t1", s.Token())
	require.Equal(t, "u1", s.User().ID)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "t1", string(data))
}

func TestSession_LoginFailureLeavesStateUnchanged(t *testing.T) {
	t.Parallel()
	s, api, path := newSession(t)

	api.EXPECT().
		Login(gomock.Any(), "user@example.com", "wrong").
		Return(model.AuthResponse{}, errs.FromStatus(401, "invalid credentials"))

	err := s.Login(context.Background(), "user@example.com", "wrong")
	require.ErrorIs(t, err, errs.ErrAuth)
	require.False(t, s.IsAuthenticated())
	require.Nil(t, s.User())
	_, statErr := os.Stat(path)
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestSession_Register(t *testing.T) {
	t.Parallel()
	s, api, _ := newSession(t)

	api.EXPECT().
		Register(gomock.Any(), "Paul", "Atreides", "paul@arrakis.io", "secret").
		Return(model.AuthResponse{
			Token: "t2",
			User:  model.User{ID: "u2", FirstName: "Paul"},
		}, nil)

	require.NoError(t, s.Register(context.Background(), "Paul", "Atreides", "paul@arrakis.io", "secret"))
	require.True(t, s.IsAuthenticated())
	require.Equal(t, "Paul", s.User().FirstName)
}

func TestSession_Logout(t *testing.T) {
	t.Parallel()
	s, api, path := newSession(t)

	api.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(model.AuthResponse{Token: "t1", User: model.User{ID: "u1"}}, nil)
	require.NoError(t, s.Login(context.Background(), "user@example.com", "pw"))

	s.Logout()
	require.False(t, s.IsAuthenticated())
	require.Empty(t, s.Token())
	require.Nil(t, s.User())
	_, statErr := os.Stat(path)
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestSession_RestoresPersistedToken(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	api := mock_session.NewMockAuthAPI(c)

	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, session.NewFileStore(path).Save("restored"))

	s := session.New(api, session.NewFileStore(path), zap.NewExample().Named("test"))
	require.True(t, s.IsAuthenticated())
	require.Equal(t, "restored", s.Token())
	// profile is not fetched until Hydrate
	require.Nil(t, s.User())
}

func TestSession_Hydrate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		apiErr    error
		wantAuthn bool
	}{
		{
			name:      "valid token loads profile",
			wantAuthn: true,
		},
		{
			name:      "rejected token clears session",
			apiErr:    errs.FromStatus(401, "token expired"),
			wantAuthn: false,
		},
		{
			name:      "network failure keeps token",
			apiErr:    errors.WithMessage(errs.ErrNetwork, "connection refused"),
			wantAuthn: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			api := mock_session.NewMockAuthAPI(c)

			path := filepath.Join(t.TempDir(), "token")
			require.NoError(t, session.NewFileStore(path).Save("restored"))
			s := session.New(api, session.NewFileStore(path), zap.NewExample().Named("test"))

			if tt.apiErr != nil {
				api.EXPECT().CurrentUser(gomock.Any(), "restored").Return(model.User{}, tt.apiErr)
				require.Error(t, s.Hydrate(context.Background()))
			} else {
				api.EXPECT().CurrentUser(gomock.Any(), "restored").Return(model.User{ID: "u1"}, nil)
				require.NoError(t, s.Hydrate(context.Background()))
				require.Equal(t, "u1", s.User().ID)
			}
			require.Equal(t, tt.wantAuthn, s.IsAuthenticated())
		})
	}
}

func TestSession_HydrateWithoutToken(t *testing.T) {
	t.Parallel()
	s, _, _ := newSession(t)
	require.NoError(t, s.Hydrate(context.Background()))
	require.False(t, s.IsAuthenticated())
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	t.Parallel()
	store := session.NewFileStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Save("tok"))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	token, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, token)
}
