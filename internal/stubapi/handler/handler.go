package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookbuddy/library-client/config"
	"github.com/bookbuddy/library-client/internal/model"
	"github.com/bookbuddy/library-client/internal/stubapi/storage"
	"github.com/bookbuddy/library-client/pkg/validate"
)

type Handler struct {
	store *storage.Storage
	log   *zap.Logger
	auth  config.Auth
}

func New(store *storage.Storage, log *zap.Logger, auth config.Auth) *Handler {
	return &Handler{
		store: store,
		log:   log,
		auth:  auth,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)
	api.GET("/books", h.ListBooks)
	api.GET("/books/:id", h.GetBook)
	api.POST("/users/login", h.Login)
	api.POST("/users/register", h.Register)

	authed := api.Group("", h.authMW)
	authed.GET("/users/me", h.CurrentUser)
	authed.GET("/reservations", h.ListReservations)
	authed.POST("/reservations", h.CreateReservation)
	authed.DELETE("/reservations/:id", h.DeleteReservation)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListBooks(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.ListBooks())
}

func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.store.GetBook(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "book not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	user, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	token, err := h.issueToken(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.AuthResponse{Token: token, User: user})
}

func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	user, err := h.store.CreateUser(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	token, err := h.issueToken(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, model.AuthResponse{Token: token, User: user})
}

func (h *Handler) CurrentUser(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	user, err := h.store.GetUser(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) ListReservations(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return c.JSON(http.StatusOK, h.store.ListReservations(userID))
}

func (h *Handler) CreateReservation(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	rsv, err := h.store.CreateReservation(userID, req.BookID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "book not found")
		case errors.Is(err, storage.ErrBookUnavailable):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, rsv)
}

func (h *Handler) DeleteReservation(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if err := h.store.DeleteReservation(userID, c.Param("id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "reservation not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
