package usecase

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/repository"

	"github.com/google/uuid"
)

type CreateAnnouncementInput struct {
	Title          string
	Content        string
	TargetAudience *entity.TargetAudience
	ScheduleDate   *time.Time
}

// UpdateAnnouncementInput is a partial update. Nil fields are kept.
type UpdateAnnouncementInput struct {
	Title          *string
	Content        *string
	TargetAudience *entity.TargetAudience
	ScheduleDate   *time.Time
	Status         *entity.AnnouncementStatus
}

type AnnouncementList struct {
	Announcements []*entity.Announcement `json:"announcements"`
	Pagination    entity.Pagination      `json:"pagination"`
}

// AnnouncementUsecase manages vendor broadcasts.
type AnnouncementUsecase interface {
	// CreateAnnouncement delivers immediately unless a schedule date is given.
	CreateAnnouncement(ctx context.Context, vendorID uuid.UUID, input CreateAnnouncementInput) (*entity.Announcement, error)

	ListAnnouncements(ctx context.Context, vendorID uuid.UUID, status entity.AnnouncementStatus, page entity.PageQuery) (*AnnouncementList, error)
	GetStats(ctx context.Context, vendorID uuid.UUID) (*repository.AnnouncementStats, error)
	UpdateAnnouncement(ctx context.Context, vendorID, announcementID uuid.UUID, input UpdateAnnouncementInput) (*entity.Announcement, error)
	DeleteAnnouncement(ctx context.Context, vendorID, announcementID uuid.UUID) error

	// DeliverDueAnnouncements sends scheduled announcements whose time has come.
	DeliverDueAnnouncements(ctx context.Context) (int, error)
}
