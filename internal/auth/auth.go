package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	ContextKeyUserID = "user_id"

	bearerPrefix = "Bearer "

	errMissingAuthHeader = "missing authorization header"
	errInvalidAuthHeader = "invalid authorization header"
	errInvalidToken      = "invalid token"
	errMissingUserID     = "user id not found in context"
)

// Middleware validates the bearer token and stores the subject user id in the
// request context.
func Middleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": errMissingAuthHeader})
			}

			if !strings.HasPrefix(header, bearerPrefix) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": errInvalidAuthHeader})
			}

			userID, err := ParseToken(secret, strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": errInvalidToken})
			}

			c.Set(ContextKeyUserID, userID)
			return next(c)
		}
	}
}

// ParseToken validates an HS256 token and returns its subject as a user id.
func ParseToken(secret, tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		return uuid.Nil, fmt.Errorf(errInvalidToken)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf(errInvalidToken)
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf(errInvalidToken)
	}

	return userID, nil
}

// GetUserID extracts the authenticated user id set by Middleware.
func GetUserID(c echo.Context) (uuid.UUID, error) {
	value := c.Get(ContextKeyUserID)
	if value == nil {
		return uuid.Nil, fmt.Errorf(errMissingUserID)
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf(errMissingUserID)
	}

	return userID, nil
}
