package handler

import (
	"net/http"

	"descya/internal/delivery/http/response"
	"descya/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BusinessHandler holds dependencies for business profile handlers.
type BusinessHandler struct {
	uc usecase.BusinessUsecase
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Create registers a new business profile.
func (h *BusinessHandler) Create(c echo.Context) error {
	var input usecase.CreateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	business, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Business created")
}

// Get returns a business by id.
func (h *BusinessHandler) Get(c echo.Context) error {
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	business, err := h.uc.Get(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "")
}

// List returns every registered business.
func (h *BusinessHandler) List(c echo.Context) error {
	businesses, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "")
}

// Update applies a partial edit to a business profile.
func (h *BusinessHandler) Update(c echo.Context) error {
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business update")
	}

	business, err := h.uc.Update(c.Request().Context(), businessID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business updated")
}

// Approve lets the business publish deals.
func (h *BusinessHandler) Approve(c echo.Context) error {
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	business, err := h.uc.Approve(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business approved")
}

// Reject bars the business from publishing.
func (h *BusinessHandler) Reject(c echo.Context) error {
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	business, err := h.uc.Reject(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business rejected")
}

// Delete removes the business profile.
func (h *BusinessHandler) Delete(c echo.Context) error {
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), businessID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Business deleted")
}
