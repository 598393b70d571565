package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform is the client operating system of a device.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

// UserDevice is a device registered for push notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`   // student or vendor id
	FCMToken  string    `json:"fcmToken"` // Firebase Cloud Messaging token
	DeviceID  string    `json:"deviceId"` // client generated identifier
	Platform  Platform  `json:"platform"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
