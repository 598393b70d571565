//go:build integration

package postgres

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("tiffin"),
		tcpostgres.WithUsername("tiffin"),
		tcpostgres.WithPassword("tiffin"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=tiffin password=tiffin dbname=tiffin sslmode=disable", host, port.Port())
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	require.NoError(t, migrate(ctx, db, slog.New(slog.NewTextHandler(io.Discard, nil))))

	return db
}

func TestRepositories_Integration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	student := &entity.Student{
		FirstName:    "Asha",
		Email:        "asha@example.com",
		PasswordHash: "hash",
		IsActive:     true,
		Preferences:  entity.DefaultStudentPreferences(),
		Settings:     entity.DefaultStudentSettings(),
	}
	require.NoError(t, NewStudentRepository(db).CreateStudent(ctx, student))

	vendors := NewVendorRepository(db)
	vendor := &entity.Vendor{
		Email:        "kitchen@example.com",
		PasswordHash: "hash",
		PersonalInfo: entity.VendorPersonalInfo{FullName: "Ravi"},
		BusinessInfo: entity.VendorBusinessInfo{
			ServiceName: "Ravi's Kitchen",
			FoodType:    entity.FoodVeg,
			Cuisines:    []string{"South Indian", "Punjabi"},
		},
		Pricing:              entity.VendorPricing{MonthlyRate: 3000, OneTimeRate: 120},
		SubscriptionSettings: entity.DefaultSubscriptionSettings(),
		Status:               entity.VendorApproved,
		IsActive:             true,
	}
	require.NoError(t, vendors.CreateVendor(ctx, vendor))

	t.Run("duplicate student email", func(t *testing.T) {
		dup := &entity.Student{FirstName: "B", Email: student.Email, PasswordHash: "x"}
		err := NewStudentRepository(db).CreateStudent(ctx, dup)
		assert.ErrorIs(t, err, repository.ErrDuplicateStudent)
	})

	t.Run("vendor cuisine filter", func(t *testing.T) {
		list, total, err := vendors.ListVendors(ctx, repository.VendorFilter{
			Cuisine:  "South Indian",
			Statuses: []entity.VendorStatus{entity.VendorApproved, entity.VendorPending},
			Page:     entity.PageQuery{Page: 1, Limit: 8},
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, vendor.ID, list[0].ID)

		_, total, err = vendors.ListVendors(ctx, repository.VendorFilter{Cuisine: "Chinese"})
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("holiday uniqueness treats null vendor as a key", func(t *testing.T) {
		holidays := NewHolidayRepository(db)
		date := now.AddDate(0, 0, 3)

		first := entity.NewHoliday(student.ID, nil, date, "", "")
		require.NoError(t, holidays.CreateHoliday(ctx, first))

		second := entity.NewHoliday(student.ID, nil, date, "", "")
		assert.ErrorIs(t, holidays.CreateHoliday(ctx, second), repository.ErrDuplicateHoliday)

		vendorScoped := entity.NewHoliday(student.ID, &vendor.ID, date, "", "")
		require.NoError(t, holidays.CreateHoliday(ctx, vendorScoped))

		onDate, err := holidays.FindHolidaysOnDate(ctx, student.ID, date)
		require.NoError(t, err)
		assert.Len(t, onDate, 2)
	})

	t.Run("subscription optimistic versioning", func(t *testing.T) {
		subscriptions := NewSubscriptionRepository(db)
		sub := entity.NewSubscription(student.ID, vendor, 30, now)
		require.NoError(t, subscriptions.CreateSubscription(ctx, sub))
		assert.Equal(t, 1, sub.Version)

		stale, err := subscriptions.FindSubscriptionByID(ctx, sub.ID)
		require.NoError(t, err)

		require.NoError(t, sub.Pause(now, time.Time{}, nil, "exams", ""))
		require.NoError(t, subscriptions.UpdateSubscriptionState(ctx, sub))
		assert.Equal(t, 2, sub.Version)

		require.NoError(t, stale.Cancel(now))
		err = subscriptions.UpdateSubscriptionState(ctx, stale)
		assert.ErrorIs(t, err, repository.ErrSubscriptionVersionConflict)

		stored, err := subscriptions.FindSubscriptionByID(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.SubscriptionPaused, stored.Status)
		require.NotNil(t, stored.PauseDetails)
		assert.Equal(t, "exams", stored.PauseDetails.Reason)
	})

	t.Run("expired notifications are hidden", func(t *testing.T) {
		notifications := NewNotificationRepository(db)

		fresh := entity.NewNotification(student.ID, entity.NotifyOrder, "Order", "confirmed", now)
		require.NoError(t, notifications.CreateNotification(ctx, fresh))

		old := entity.NewNotification(student.ID, entity.NotifySystem, "Old", "gone", now.Add(-40*24*time.Hour))
		require.NoError(t, notifications.CreateNotification(ctx, old))

		list, total, err := notifications.ListNotifications(ctx, repository.NotificationFilter{
			UserID: student.ID,
			Now:    now,
			Page:   entity.PageQuery{Page: 1, Limit: 20},
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, fresh.ID, list[0].ID)

		stats, err := notifications.GetStats(ctx, student.ID, now)
		require.NoError(t, err)
		assert.EqualValues(t, 1, stats.Unread)
	})

}
