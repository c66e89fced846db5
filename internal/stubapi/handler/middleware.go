package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"

	"github.com/bookbuddy/library-client/internal/model"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
	userIDKey           = "userIDKey"
)

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (h *Handler) issueToken(user model.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.auth.TokenTTL)),
		},
	})
	return token.SignedString([]byte(h.auth.JWTKey))
}

func (h *Handler) authMW(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authorization := c.Request().Header.Get(authorizationHeader)
		if authorization == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "no token in Authorization header")
		}
		if !strings.HasPrefix(authorization, bearerPrefix) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid Authorization header")
		}
		tokenStr := strings.TrimPrefix(authorization, bearerPrefix)

		cl := new(claims)
		token, err := jwt.ParseWithClaims(tokenStr, cl, func(token *jwt.Token) (interface{}, error) {
			return []byte(h.auth.JWTKey), nil
		})
		if err != nil || !token.Valid {
			return echo.NewHTTPError(http.StatusUnauthorized, "token is invalid or expired")
		}

		c.Set(userIDKey, cl.Subject)
		return next(c)
	}
}

func currentUserID(c echo.Context) (string, error) {
	userID, ok := c.Get(userIDKey).(string)
	if !ok || userID == "" {
		return "", errors.New("no authenticated user")
	}
	return userID, nil
}

func requestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
}

func newRateLimiterMW(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}
