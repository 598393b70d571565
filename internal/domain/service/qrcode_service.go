package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateSubscriptionQR renders a PNG QR code students scan to request a subscription
	GenerateSubscriptionQR(vendorID uuid.UUID) ([]byte, error)

	// ParseSubscriptionQR extracts the vendor ID from scanned QR data
	ParseSubscriptionQR(qrData string) (uuid.UUID, error)
}
