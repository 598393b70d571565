package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type AudienceType string

const (
	AudienceAll      AudienceType = "all"
	AudiencePaid     AudienceType = "paid"
	AudienceUnpaid   AudienceType = "unpaid"
	AudienceLocation AudienceType = "location"
)

// TargetAudience selects which of the vendor's customers receive an announcement.
type TargetAudience struct {
	Type      AudienceType `json:"type"`
	Locations []string     `json:"locations,omitempty"`
}

// Includes reports whether the customer is part of the audience.
func (a TargetAudience) Includes(c *Customer) bool {
	switch a.Type {
	case AudiencePaid:
		return c.PaymentStatus == CustomerPaid
	case AudienceUnpaid:
		return c.PaymentStatus != CustomerPaid
	case AudienceLocation:
		return slices.Contains(a.Locations, string(c.Location.Hostel))
	default:
		return true
	}
}

type AnnouncementStatus string

const (
	AnnouncementDraft     AnnouncementStatus = "draft"
	AnnouncementScheduled AnnouncementStatus = "scheduled"
	AnnouncementSent      AnnouncementStatus = "sent"
)

// Announcement is a broadcast from a vendor to their customers.
type Announcement struct {
	ID             uuid.UUID          `json:"id"`
	VendorID       uuid.UUID          `json:"vendorId"`
	Title          string             `json:"title"`
	Content        string             `json:"content"`
	TargetAudience TargetAudience     `json:"targetAudience"`
	Status         AnnouncementStatus `json:"status"`
	ScheduleDate   *time.Time         `json:"scheduleDate,omitempty"`
	SentAt         *time.Time         `json:"sentAt,omitempty"`
	ReadCount      int                `json:"readCount"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// NewAnnouncement is sent immediately unless a schedule date is given.
func NewAnnouncement(vendorID uuid.UUID, title, content string, audience *TargetAudience, scheduleDate *time.Time, now time.Time) *Announcement {
	a := &Announcement{
		VendorID:       vendorID,
		Title:          title,
		Content:        content,
		TargetAudience: TargetAudience{Type: AudienceAll},
		ScheduleDate:   scheduleDate,
	}
	if audience != nil && audience.Type != "" {
		a.TargetAudience = *audience
	}

	if scheduleDate != nil {
		a.Status = AnnouncementScheduled
	} else {
		a.MarkSent(now)
	}

	return a
}

// MarkSent moves the announcement to sent, keeping an existing sentAt.
// It reports whether the announcement was not sent before.
func (a *Announcement) MarkSent(now time.Time) bool {
	wasSent := a.Status == AnnouncementSent && a.SentAt != nil
	a.Status = AnnouncementSent
	if a.SentAt == nil {
		a.SentAt = &now
	}

	return !wasSent
}
