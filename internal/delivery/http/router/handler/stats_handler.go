package handler

import (
	"net/http"

	"descya/internal/delivery/http/response"
	"descya/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatsHandler holds dependencies for dashboard summary handlers.
type StatsHandler struct {
	catalog usecase.CatalogUsecase
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(catalog usecase.CatalogUsecase) *StatsHandler {
	return &StatsHandler{catalog: catalog}
}

// Business returns the caller's business dashboard summary.
func (h *StatsHandler) Business(c echo.Context) error {
	businessID, ok := callerBusinessID(c)
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "Account is not linked to a business")
	}

	stats, err := h.catalog.StatsForBusiness(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// Platform returns the admin dashboard summary.
func (h *StatsHandler) Platform(c echo.Context) error {
	stats, err := h.catalog.StatsForPlatform(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
