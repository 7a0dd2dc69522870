package service

// QRCodeService defines the interface for coupon QR code generation and parsing.
type QRCodeService interface {
	// GenerateCouponQR renders a redemption code as a QR code PNG, the image
	// a user shows at the counter.
	GenerateCouponQR(redemptionCode string) ([]byte, error)

	// ParseCouponQR extracts the redemption code from scanned QR payload data.
	ParseCouponQR(qrData string) (string, error)
}
