package usecase

import (
	"context"

	"tiffin/internal/domain/entity"

	"github.com/google/uuid"
)

// UpcomingHolidayLimit caps the holidays shown on the dashboard.
const UpcomingHolidayLimit = 5

// StudentDashboard summarises a student's account.
type StudentDashboard struct {
	Student             *entity.Student   `json:"student"`
	ActiveSubscriptions int64             `json:"activeSubscriptions"`
	UpcomingHolidays    []*entity.Holiday `json:"upcomingHolidays"`
	UnreadNotifications int64             `json:"unreadNotifications"`
	TodayOrders         []*entity.Order   `json:"todayOrders"`
}

// NotificationSettingsPatch toggles individual notification channels.
type NotificationSettingsPatch struct {
	Email        *bool
	Push         *bool
	SMS          *bool
	OrderUpdates *bool
	Promotions   *bool
}

type PrivacySettingsPatch struct {
	ShareProfile *bool
	ShowActivity *bool
}

// UpdateSettingsInput is a partial settings update. Nil fields are kept.
type UpdateSettingsInput struct {
	Notifications *NotificationSettingsPatch
	Privacy       *PrivacySettingsPatch
}

// StudentUsecase serves the student's own pages.
type StudentUsecase interface {
	GetProfile(ctx context.Context, studentID uuid.UUID) (*entity.Student, error)
	GetDashboard(ctx context.Context, studentID uuid.UUID) (*StudentDashboard, error)
	UpdateSettings(ctx context.Context, studentID uuid.UUID, input UpdateSettingsInput) (*entity.StudentSettings, error)
}
