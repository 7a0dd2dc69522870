package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCode = "DESCYA-1A2B3C4D-5E6F7A8B-1735689600000"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateCouponQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateCouponQR(sampleCode)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateCouponQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GenerateCouponQR(sampleCode)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateCouponQR_MalformedCode(t *testing.T) {
	service := NewQRCodeService(256, "M")

	for _, code := range []string{"", "DESCYA", "descya-aa-bb", "DESCYA-AA-BB", "DESCYA-AA-BB-CC-DD"} {
		_, err := service.GenerateCouponQR(code)
		assert.Error(t, err, code)
	}
}

func TestQRCodeService_ParseCouponQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	code, err := service.ParseCouponQR(sampleCode)
	require.NoError(t, err)
	assert.Equal(t, sampleCode, code)
}

func TestQRCodeService_ParseCouponQR_NormalizesScan(t *testing.T) {
	service := NewQRCodeService(256, "M")

	code, err := service.ParseCouponQR("  descya-1a2b3c4d-5e6f7a8b-1735689600000\n")
	require.NoError(t, err)
	assert.Equal(t, sampleCode, code)
}

func TestQRCodeService_ParseCouponQR_RejectsGarbage(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseCouponQR(`{"order_id":"x","type":"receipt"}`)
	assert.Error(t, err)
}
