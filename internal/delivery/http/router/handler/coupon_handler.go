package handler

import (
	"net/http"

	"descya/internal/delivery/http/response"
	"descya/internal/domain/entity"
	"descya/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CouponHandler holds dependencies for coupon claim and redemption handlers.
type CouponHandler struct {
	coupons usecase.CouponUsecase
	catalog usecase.CatalogUsecase
}

// NewCouponHandler is the constructor for CouponHandler, injected by Fx.
func NewCouponHandler(coupons usecase.CouponUsecase, catalog usecase.CatalogUsecase) *CouponHandler {
	return &CouponHandler{coupons: coupons, catalog: catalog}
}

// Claim issues a coupon for the deal to the authenticated user.
func (h *CouponHandler) Claim(c echo.Context) error {
	dealID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing caller identity")
	}

	coupon, err := h.coupons.Claim(c.Request().Context(), dealID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, coupon, "Coupon claimed")
}

// ListMine returns the caller's coupons, optionally filtered by status.
func (h *CouponHandler) ListMine(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing caller identity")
	}

	var status *entity.CouponStatus
	if raw := c.QueryParam("status"); raw != "" {
		parsed := entity.CouponStatus(raw)
		if !parsed.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "Unknown coupon status")
		}
		status = &parsed
	}

	coupons, err := h.catalog.CouponsForUser(c.Request().Context(), userID, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupons, "")
}

// ListForBusiness returns coupons issued against the caller's business.
func (h *CouponHandler) ListForBusiness(c echo.Context) error {
	businessID, ok := callerBusinessID(c)
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "Account is not linked to a business")
	}

	coupons, err := h.catalog.CouponsForBusiness(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupons, "")
}

// QR renders the coupon's redemption code as a PNG image.
func (h *CouponHandler) QR(c echo.Context) error {
	couponID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.coupons.CouponQR(c.Request().Context(), couponID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

type redeemInput struct {
	Code string `json:"code" validate:"required"`
}

// Redeem marks a coupon used from its redemption code. The coupon must
// belong to the caller's business.
func (h *CouponHandler) Redeem(c echo.Context) error {
	businessID, ok := callerBusinessID(c)
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "Account is not linked to a business")
	}

	var input redeemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	coupon, err := h.coupons.Redeem(c.Request().Context(), input.Code, &businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupon, "Coupon redeemed")
}

// AdminRedeem marks a coupon used by id, skipping business scoping.
func (h *CouponHandler) AdminRedeem(c echo.Context) error {
	couponID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	coupon, err := h.coupons.RedeemByID(c.Request().Context(), couponID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupon, "Coupon redeemed")
}
