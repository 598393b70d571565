package handler

import (
	"net/http"
	"testing"
	"time"

	"tiffin/internal/domain/entity"
	mockUsecase "tiffin/internal/mocks/usecase"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type holidayTestServer struct {
	echo            *echo.Echo
	holidayUC       *mockUsecase.MockHolidayUsecase
	vendorHolidayUC *mockUsecase.MockVendorHolidayUsecase
}

func newHolidayTestServer(t *testing.T, principal entity.Principal) holidayTestServer {
	s := holidayTestServer{
		echo:            newTestEcho(),
		holidayUC:       mockUsecase.NewMockHolidayUsecase(t),
		vendorHolidayUC: mockUsecase.NewMockVendorHolidayUsecase(t),
	}
	h := NewHolidayHandler(HolidayHandlerParams{HolidayUC: s.holidayUC, VendorHolidayUC: s.vendorHolidayUC})

	g := s.echo.Group("/holidays", asPrincipal(principal))
	g.GET("/check", h.CheckHoliday)
	g.POST("", h.CreateHolidays)
	g.GET("/month/:year/:month", h.ListMonth)

	return s
}

func TestHolidayHandler_CreateHolidays_PartialSuccess(t *testing.T) {
	student := testStudent()
	s := newHolidayTestServer(t, student)

	s.holidayUC.EXPECT().
		CreateHolidays(mock.Anything, student.ID, mock.MatchedBy(func(in usecase.CreateHolidayInput) bool {
			return len(in.Dates) == 2 &&
				entity.FormatDate(in.Dates[0]) == "2026-11-02" &&
				in.ServiceType == entity.ServiceBoth &&
				in.VendorID == nil
		})).
		Return(&usecase.HolidayBatchResult{
			Created: []*entity.Holiday{{ID: uuid.New()}},
			Errors:  []usecase.HolidayDateError{{Date: "2026-11-03", Code: "HOLIDAY_ALREADY_EXISTS"}},
		}, nil)

	rec := doRequest(s.echo, http.MethodPost, "/holidays", `{"dates":["2026-11-02","2026-11-03"],"reason":"exams"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Contains(t, string(env.Data), "HOLIDAY_ALREADY_EXISTS")
}

func TestHolidayHandler_CreateHolidays_NoneScheduled(t *testing.T) {
	student := testStudent()
	s := newHolidayTestServer(t, student)

	s.holidayUC.EXPECT().
		CreateHolidays(mock.Anything, student.ID, mock.Anything).
		Return(&usecase.HolidayBatchResult{
			Created: []*entity.Holiday{},
			Errors:  []usecase.HolidayDateError{
				{Date: "2026-11-02", Code: "HOLIDAY_NOTICE_PERIOD"},
				{Date: "2026-11-03", Code: "HOLIDAY_ALREADY_EXISTS"},
			},
		}, nil)

	rec := doRequest(s.echo, http.MethodPost, "/holidays", `{"dates":["2026-11-02","2026-11-03"]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Contains(t, string(env.Data), `"created":[]`)
	assert.Contains(t, string(env.Data), "HOLIDAY_NOTICE_PERIOD")
}

func TestHolidayHandler_CreateHolidays_SingleDate(t *testing.T) {
	student := testStudent()
	s := newHolidayTestServer(t, student)

	s.holidayUC.EXPECT().
		CreateHolidays(mock.Anything, student.ID, mock.MatchedBy(func(in usecase.CreateHolidayInput) bool {
			return len(in.Dates) == 1 && in.ServiceType == entity.ServiceLunch
		})).
		Return(&usecase.HolidayBatchResult{Created: []*entity.Holiday{{ID: uuid.New()}}}, nil)

	rec := doRequest(s.echo, http.MethodPost, "/holidays", `{"date":"2026-11-02","serviceType":"lunch"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, decode(t, rec).Success)
}

func TestHolidayHandler_CreateHolidays_BadDate(t *testing.T) {
	s := newHolidayTestServer(t, testStudent())

	rec := doRequest(s.echo, http.MethodPost, "/holidays", `{"dates":["2026-11-02","tomorrow"]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "dates", env.Errors[0].Field)
}

func TestHolidayHandler_ListMonth_InvalidMonth(t *testing.T) {
	s := newHolidayTestServer(t, testStudent())

	rec := doRequest(s.echo, http.MethodGet, "/holidays/month/2026/13", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHolidayHandler_ListMonth(t *testing.T) {
	student := testStudent()
	s := newHolidayTestServer(t, student)

	s.holidayUC.EXPECT().ListMonth(mock.Anything, student.ID, 2026, time.November).Return(nil, nil)

	rec := doRequest(s.echo, http.MethodGet, "/holidays/month/2026/11", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHolidayHandler_CheckHoliday_StudentNeedsVendor(t *testing.T) {
	s := newHolidayTestServer(t, testStudent())

	rec := doRequest(s.echo, http.MethodGet, "/holidays/check?date=2026-11-02", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"vendorId"}, fieldNames(decode(t, rec).Errors))
}

func TestHolidayHandler_CheckHoliday_VendorChecksSelf(t *testing.T) {
	vendor := testVendor()
	s := newHolidayTestServer(t, vendor)

	s.vendorHolidayUC.EXPECT().
		CheckHoliday(mock.Anything, vendor.ID, mock.MatchedBy(func(d time.Time) bool {
			return entity.FormatDate(d) == "2026-11-02"
		})).
		Return(&usecase.HolidayCheck{Date: "2026-11-02", IsHoliday: true}, nil)

	rec := doRequest(s.echo, http.MethodGet, "/holidays/check?date=2026-11-02", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"isHoliday":true`)
}

func TestHolidayHandler_CheckHoliday_DateRequired(t *testing.T) {
	s := newHolidayTestServer(t, testVendor())

	rec := doRequest(s.echo, http.MethodGet, "/holidays/check", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"date"}, fieldNames(decode(t, rec).Errors))
}
