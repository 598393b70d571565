// Package qrcode renders and reads the codes vendors print for students to scan.
package qrcode

import (
	"encoding/json"
	"strings"

	"tiffin/config"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/service"
	"tiffin/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	payloadType = "tiffin_subscription"
	defaultSize = 256
)

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// Payload is the JSON document encoded into a vendor QR code.
type Payload struct {
	Type     string `json:"type"`
	VendorID string `json:"vendor_id"`
}

// NewQRCodeService creates a QR code service from configuration.
// A nil config falls back to a 256px code with medium recovery.
func NewQRCodeService(cfg *config.QRCodeConfig) service.QRCodeService {
	svc := &qrcodeService{size: defaultSize, level: qrcode.Medium}
	if cfg == nil {
		return svc
	}

	if cfg.Size > 0 {
		svc.size = cfg.Size
	}
	svc.level = recoveryLevel(cfg.ErrorCorrectionLevel)

	return svc
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateSubscriptionQR renders the vendor's subscription code as PNG.
func (s *qrcodeService) GenerateSubscriptionQR(vendorID uuid.UUID) ([]byte, error) {
	content, err := EncodePayload(vendorID)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(content, s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return png, nil
}

// ParseSubscriptionQR returns the vendor identified by scanned QR text.
func (s *qrcodeService) ParseSubscriptionQR(qrData string) (uuid.UUID, error) {
	var payload Payload
	if err := json.Unmarshal([]byte(strings.TrimSpace(qrData)), &payload); err != nil {
		return uuid.Nil, domainerrors.ErrInvalidQRCode.WithDetails("payload is not JSON")
	}

	if payload.Type != payloadType {
		return uuid.Nil, domainerrors.ErrInvalidQRCode.WithDetails("unexpected payload type " + payload.Type)
	}

	vendorID, err := uuid.Parse(payload.VendorID)
	if err != nil || vendorID == uuid.Nil {
		return uuid.Nil, domainerrors.ErrInvalidQRCode.WithDetails("malformed vendor id")
	}

	return vendorID, nil
}

// EncodePayload returns the text stored in a vendor QR code.
func EncodePayload(vendorID uuid.UUID) (string, error) {
	raw, err := json.Marshal(Payload{Type: payloadType, VendorID: vendorID.String()})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode QR payload")
	}

	return string(raw), nil
}
