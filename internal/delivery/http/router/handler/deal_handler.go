package handler

import (
	"net/http"
	"strconv"

	"descya/internal/delivery/http/response"
	"descya/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DealHandler holds dependencies for deal lifecycle handlers.
type DealHandler struct {
	approval usecase.ApprovalUsecase
	catalog  usecase.CatalogUsecase
}

// NewDealHandler is the constructor for DealHandler, injected by Fx.
func NewDealHandler(approval usecase.ApprovalUsecase, catalog usecase.CatalogUsecase) *DealHandler {
	return &DealHandler{approval: approval, catalog: catalog}
}

// ListVisible returns deals claimable right now. Optional lat/lng query
// parameters annotate each deal with distance and travel estimates.
func (h *DealHandler) ListVisible(c echo.Context) error {
	origin, err := parseOrigin(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid lat/lng parameters")
	}

	views, err := h.catalog.ListVisibleDeals(c.Request().Context(), origin)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}

func parseOrigin(c echo.Context) (*usecase.Origin, error) {
	latStr, lngStr := c.QueryParam("lat"), c.QueryParam("lng")
	if latStr == "" || lngStr == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, err
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, err
	}

	return &usecase.Origin{Latitude: lat, Longitude: lng}, nil
}

// Get returns a single deal by id.
func (h *DealHandler) Get(c echo.Context) error {
	dealID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	deal, err := h.catalog.GetDeal(c.Request().Context(), dealID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deal, "")
}

// Submit handles a business submitting a new deal for approval.
func (h *DealHandler) Submit(c echo.Context) error {
	businessID, ok := callerBusinessID(c)
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "Account is not linked to a business")
	}

	var input usecase.SubmitDealInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deal submission")
	}
	input.BusinessID = businessID
	input.AdminAuthored = false

	deal, err := h.approval.SubmitDeal(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, deal, "Deal submitted for review")
}

// AdminCreate lets an admin author a deal that goes live immediately.
func (h *DealHandler) AdminCreate(c echo.Context) error {
	var input usecase.SubmitDealInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deal submission")
	}
	input.AdminAuthored = true

	deal, err := h.approval.SubmitDeal(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, deal, "Deal created")
}

// ListMine returns every deal owned by the caller's business.
func (h *DealHandler) ListMine(c echo.Context) error {
	businessID, ok := callerBusinessID(c)
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "Account is not linked to a business")
	}

	deals, err := h.catalog.ListDealsForBusiness(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deals, "")
}

// ListPending returns submissions awaiting an admin decision.
func (h *DealHandler) ListPending(c echo.Context) error {
	deals, err := h.catalog.ListPendingDeals(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deals, "")
}

// Update applies a partial edit to a deal.
func (h *DealHandler) Update(c echo.Context) error {
	dealID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateDealInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deal update")
	}

	deal, err := h.approval.UpdateDeal(c.Request().Context(), dealID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deal, "Deal updated")
}

// Delete removes a deal.
func (h *DealHandler) Delete(c echo.Context) error {
	dealID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.approval.DeleteDeal(c.Request().Context(), dealID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Deal deleted")
}

// Approve moves a pending deal to approved.
func (h *DealHandler) Approve(c echo.Context) error {
	dealID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	deal, err := h.approval.ApproveDeal(c.Request().Context(), dealID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deal, "Deal approved")
}

type rejectInput struct {
	Reason string `json:"reason"`
}

// Reject moves a pending deal to rejected with a mandatory reason.
func (h *DealHandler) Reject(c echo.Context) error {
	dealID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input rejectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}

	deal, err := h.approval.RejectDeal(c.Request().Context(), dealID, input.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deal, "Deal rejected")
}

// TogglePause flips the paused flag on an approved deal.
func (h *DealHandler) TogglePause(c echo.Context) error {
	dealID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	deal, err := h.approval.TogglePause(c.Request().Context(), dealID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deal, "Deal pause toggled")
}

// ToggleFeatured flips the admin-curated featured flag.
func (h *DealHandler) ToggleFeatured(c echo.Context) error {
	dealID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	deal, err := h.approval.ToggleFeatured(c.Request().Context(), dealID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deal, "Deal featured toggled")
}
