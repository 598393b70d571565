package entity

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPageQuery_Normalize(t *testing.T) {
	assert.Equal(t, PageQuery{Page: 1, Limit: 10}, PageQuery{}.Normalize(10, 50))
	assert.Equal(t, PageQuery{Page: 3, Limit: 50}, PageQuery{Page: 3, Limit: 500}.Normalize(10, 50))
	assert.Equal(t, 20, PageQuery{Page: 3, Limit: 10}.Offset())
}

func TestPageQuery_Normalize_HugePage(t *testing.T) {
	q := PageQuery{Page: math.MaxInt, Limit: 8}.Normalize(10, 50)

	assert.Equal(t, math.MaxInt/8, q.Page)
	assert.GreaterOrEqual(t, q.Offset(), 0)
	assert.Zero(t, PageQuery{Page: -3, Limit: 10}.Offset())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(PageQuery{Page: 2, Limit: 8}, 17)

	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	last := NewPagination(PageQuery{Page: 1, Limit: 10}, 0)
	assert.Equal(t, 0, last.TotalPages)
	assert.False(t, last.HasNext)
	assert.False(t, last.HasPrev)
}

func TestReceiptNumberAndBillingPeriod(t *testing.T) {
	now := time.UnixMilli(1735689600000).UTC()

	assert.Equal(t, "TT17356896000005", ReceiptNumber(now, 4))

	period := BillingPeriodFrom(now, "")
	assert.Equal(t, "January 2025", period.Month)
	assert.Equal(t, now.AddDate(0, 1, 0), period.EndDate)
}

func TestAnnouncement_StatusOnCreate(t *testing.T) {
	now := time.Now()
	later := now.Add(time.Hour)

	sent := NewAnnouncement(uuid.New(), "t", "c", nil, nil, now)
	assert.Equal(t, AnnouncementSent, sent.Status)
	assert.Equal(t, &now, sent.SentAt)
	assert.Equal(t, AudienceAll, sent.TargetAudience.Type)

	scheduled := NewAnnouncement(uuid.New(), "t", "c", nil, &later, now)
	assert.Equal(t, AnnouncementScheduled, scheduled.Status)
	assert.Nil(t, scheduled.SentAt)
	assert.True(t, scheduled.MarkSent(later))
	assert.False(t, scheduled.MarkSent(later.Add(time.Minute)))
}

func TestNewNotification_Defaults(t *testing.T) {
	now := time.Now()

	n := NewNotification(uuid.New(), NotifyPayment, "Paid", "Thanks", now)

	assert.Equal(t, CategoryPayments, n.Category)
	assert.Equal(t, DefaultNotificationPriority, n.Priority)
	assert.Equal(t, now.Add(30*24*time.Hour), n.ExpiresAt)
	assert.False(t, n.IsExpired(now))
	assert.True(t, n.IsExpired(n.ExpiresAt))
}
