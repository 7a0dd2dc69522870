// Package qrcode renders redemption codes as scannable coupon images.
package qrcode

import (
	"fmt"
	"regexp"
	"strings"

	"descya/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

// codePattern matches the dash-delimited uppercase redemption code format,
// e.g. "DESCYA-1A2B3C4D-5E6F7A8B-1735689600000".
var codePattern = regexp.MustCompile(`^[A-Z0-9]+(?:-[A-Z0-9]+){3}$`)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateCouponQR renders a redemption code as a QR code PNG. The payload
// is the bare code, so any scanner app can read it and the same string can
// be typed manually as a fallback.
func (s *qrcodeService) GenerateCouponQR(redemptionCode string) ([]byte, error) {
	if !codePattern.MatchString(redemptionCode) {
		return nil, fmt.Errorf("malformed redemption code: %q", redemptionCode)
	}

	qrCode, err := qrcode.New(redemptionCode, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseCouponQR extracts the redemption code from scanned QR payload data,
// tolerating surrounding whitespace and lowercase scans.
func (s *qrcodeService) ParseCouponQR(qrData string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(qrData))
	if !codePattern.MatchString(code) {
		return "", fmt.Errorf("payload is not a redemption code: %q", qrData)
	}

	return code, nil
}
