// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"descya/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service healthy")
}

// callerID returns the authenticated user's id set by the auth middleware.
func callerID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get("userID").(uuid.UUID)

	return id, ok
}

// callerBusinessID returns the business the caller operates, if any.
func callerBusinessID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get("businessID").(uuid.UUID)

	return id, ok
}

// pathID parses a uuid path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}

	return id, nil
}
