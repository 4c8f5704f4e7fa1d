package handlers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext returns the user id set by the auth middleware
func getUserIDFromContext(c echo.Context) (string, error) {
	userID, ok := c.Get("user_id").(string)
	if !ok || strings.TrimSpace(userID) == "" {
		return "", ErrUnauthorized
	}
	return userID, nil
}

func getUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// requiredParam returns a trimmed path parameter or false when it is blank
func requiredParam(c echo.Context, name string) (string, bool) {
	value := strings.TrimSpace(c.Param(name))
	return value, value != ""
}
