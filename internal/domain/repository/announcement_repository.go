package repository

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"

	"github.com/google/uuid"
)

// ErrAnnouncementNotFound is returned when an announcement is not found.
var ErrAnnouncementNotFound = errors.New("announcement not found")

// AnnouncementStats counts a vendor's announcements.
type AnnouncementStats struct {
	Total         int64 `json:"totalAnnouncements"`
	SentThisMonth int64 `json:"sentThisMonth"`
	Scheduled     int64 `json:"scheduled"`
}

// AnnouncementRepository stores vendor announcements.
type AnnouncementRepository interface {
	CreateAnnouncement(ctx context.Context, announcement *entity.Announcement) error

	FindAnnouncementByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)

	// ListAnnouncements pages newest first. An empty status returns all.
	ListAnnouncements(ctx context.Context, vendorID uuid.UUID, status entity.AnnouncementStatus, page entity.PageQuery) ([]*entity.Announcement, int64, error)

	UpdateAnnouncement(ctx context.Context, announcement *entity.Announcement) error

	DeleteAnnouncement(ctx context.Context, id uuid.UUID) error

	// GetStats counts totals, sends within [monthStart, monthEnd) and pending schedules.
	GetStats(ctx context.Context, vendorID uuid.UUID, monthStart, monthEnd time.Time) (*AnnouncementStats, error)

	// FindDueAnnouncements returns scheduled announcements whose schedule date has passed.
	FindDueAnnouncements(ctx context.Context, now time.Time, limit int) ([]*entity.Announcement, error)
}
