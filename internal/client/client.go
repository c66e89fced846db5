// Package client is the single choke point for calls to the remote
// library REST service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookbuddy/library-client/config"
	"github.com/bookbuddy/library-client/internal/errs"
	"github.com/bookbuddy/library-client/internal/model"
	"github.com/bookbuddy/library-client/pkg/breaker"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

type Client struct {
	log    *zap.Logger
	client *http.Client
	cb     breaker.Breaker
	base   string
}

func New(log *zap.Logger, cfg config.API) *Client {
	const (
		cbWindow       = 20
		cbCooldown     = 10 * time.Second
		cbFailRate     = 0.5
		cbRecoverAfter = 3
	)
	return &Client{
		log:    log.Named("client"),
		client: &http.Client{Timeout: time.Minute},
		cb:     breaker.New(cbWindow, cbCooldown, cbFailRate, cbRecoverAfter),
		base:   cfg.BaseURL,
	}
}

func (c *Client) ListBooks(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := c.do(ctx, http.MethodGet, "/books", "", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *Client) GetBook(ctx context.Context, id string) (model.Book, error) {
	var book model.Book
	if err := c.do(ctx, http.MethodGet, "/books/"+id, "", nil, &book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (model.AuthResponse, error) {
	var auth model.AuthResponse
	req := model.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/users/login", "", req, &auth); err != nil {
		return model.AuthResponse{}, err
	}
	return auth, nil
}

func (c *Client) Register(ctx context.Context, firstName, lastName, email, password string) (model.AuthResponse, error) {
	var auth model.AuthResponse
	req := model.RegisterRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	}
	if err := c.do(ctx, http.MethodPost, "/users/register", "", req, &auth); err != nil {
		return model.AuthResponse{}, err
	}
	return auth, nil
}

func (c *Client) CurrentUser(ctx context.Context, token string) (model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/users/me", token, nil, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (c *Client) ListReservations(ctx context.Context, token string) ([]model.Reservation, error) {
	var rsv []model.Reservation
	if err := c.do(ctx, http.MethodGet, "/reservations", token, nil, &rsv); err != nil {
		return nil, err
	}
	return rsv, nil
}

func (c *Client) CreateReservation(ctx context.Context, bookID, token string) (model.Reservation, error) {
	var rsv model.Reservation
	req := model.CreateReservationRequest{BookID: bookID}
	if err := c.do(ctx, http.MethodPost, "/reservations", token, req, &rsv); err != nil {
		return model.Reservation{}, err
	}
	return rsv, nil
}

func (c *Client) DeleteReservation(ctx context.Context, reservationID, token string) error {
	return c.do(ctx, http.MethodDelete, "/reservations/"+reservationID, token, nil, nil)
}

// do builds the request, attaches the bearer token when one is supplied
// and translates any failure into the errs taxonomy. Transport failures
// feed the circuit breaker; server-side statuses do not.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader = http.NoBody
	if in != nil {
		b := bytes.NewBuffer(nil)
		if err := json.NewEncoder(b).Encode(in); err != nil {
			return err
		}
		body = b
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)
	if token != "" {
		req.Header.Set(authorizationHeader, bearerPrefix+token)
	}

	var resp *http.Response
	if err := c.cb.Call(func() error {
		resp, err = c.client.Do(req) //nolint:bodyclose
		return err
	}); err != nil {
		c.log.Debug("request failed", zap.String("path", path), zap.Error(err))
		return errors.WithMessage(errs.ErrNetwork, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var msg model.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&msg) //nolint:errcheck
		return errs.FromStatus(resp.StatusCode, msg.Message)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
