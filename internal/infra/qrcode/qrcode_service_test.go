package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"tiffin/config"
	domainerrors "tiffin/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name  string
		cfg   *config.QRCodeConfig
		size  int
		level qrcode.RecoveryLevel
	}{
		{"nil config", nil, defaultSize, qrcode.Medium},
		{"low", &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "L"}, 128, qrcode.Low},
		{"quartile lowercase", &config.QRCodeConfig{Size: 300, ErrorCorrectionLevel: "q"}, 300, qrcode.High},
		{"highest", &config.QRCodeConfig{ErrorCorrectionLevel: "H"}, defaultSize, qrcode.Highest},
		{"unknown level", &config.QRCodeConfig{Size: 64, ErrorCorrectionLevel: "X"}, 64, qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.cfg).(*qrcodeService)
			assert.Equal(t, tt.size, svc.size)
			assert.Equal(t, tt.level, svc.level)
		})
	}
}

func TestQRCodeService_GenerateSubscriptionQR(t *testing.T) {
	svc := NewQRCodeService(&config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"})

	raw, err := svc.GenerateSubscriptionQR(uuid.New())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_ParseSubscriptionQR(t *testing.T) {
	svc := NewQRCodeService(nil)
	vendorID := uuid.New()

	content, err := EncodePayload(vendorID)
	require.NoError(t, err)

	parsed, err := svc.ParseSubscriptionQR("  " + content + "\n")
	require.NoError(t, err)
	assert.Equal(t, vendorID, parsed)
}

func TestQRCodeService_ParseSubscriptionQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(nil)

	tests := map[string]string{
		"not json":     "https://example.com/vendor",
		"wrong type":   `{"type":"merchant","vendor_id":"` + uuid.NewString() + `"}`,
		"bad uuid":     `{"type":"tiffin_subscription","vendor_id":"abc"}`,
		"nil uuid":     `{"type":"tiffin_subscription","vendor_id":"` + uuid.Nil.String() + `"}`,
		"missing body": `{}`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			id, err := svc.ParseSubscriptionQR(data)
			assert.Equal(t, uuid.Nil, id)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)
		})
	}
}
