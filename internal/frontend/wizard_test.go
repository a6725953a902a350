package frontend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harramos25/GlamBook/internal/dto"
	"github.com/harramos25/GlamBook/internal/models"
	"github.com/harramos25/GlamBook/internal/viewmodel"
)

type fakePort struct {
	services []models.Service
	stylists []models.Stylist
	bookings []dto.BookingListDTO
	stats    *dto.DashboardStats
	calendar *dto.CalendarDay

	catalogErr error
	submitErr  error
	submitted  []dto.CreateBookingRequest
}

func (f *fakePort) FetchCatalog(context.Context) ([]models.Service, error) {
	return f.services, f.catalogErr
}

func (f *fakePort) FetchStaff(context.Context) ([]models.Stylist, error) {
	return f.stylists, nil
}

func (f *fakePort) SubmitBooking(_ context.Context, req dto.CreateBookingRequest) (*models.Booking, error) {
	f.submitted = append(f.submitted, req)
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &models.Booking{ID: "b1", StylistID: req.StylistID, ServiceID: req.ServiceID, Time: req.Time, Status: "CONFIRMED"}, nil
}

func (f *fakePort) FetchStats(context.Context) (*dto.DashboardStats, error) {
	if f.stats == nil {
		return nil, errors.New("stats unavailable")
	}
	return f.stats, nil
}

func (f *fakePort) FetchBookings(context.Context) ([]dto.BookingListDTO, error) {
	return f.bookings, nil
}

func (f *fakePort) FetchCalendar(_ context.Context, date string) (*dto.CalendarDay, error) {
	if f.calendar == nil || f.calendar.Date != date {
		return nil, errors.New("no calendar for " + date)
	}
	return f.calendar, nil
}

func salonPort() *fakePort {
	return &fakePort{
		services: []models.Service{
			{ID: "h1", Name: "Silk Press & Style", Price: 85, Duration: 60},
			{ID: "h2", Name: "Luxury Trim & Treatment", Price: 120, Duration: 90},
			{ID: "n1", Name: "Gel Manicure", Price: 50, Duration: 45},
		},
		stylists: []models.Stylist{
			{ID: "st1", Name: "Elena R.", Specialties: "Color,Silk Press"},
			{ID: "st2", Name: "Marcus Chen"},
		},
	}
}

var jane = Contact{Name: "Jane Doe", Email: "jane@x.com", Phone: "555-0100"}

var june1 = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func loadedWizard(t *testing.T, port *fakePort) *Wizard {
	t.Helper()
	w := NewWizard(port)
	w.Load(context.Background())
	return w
}

func walkToConfirm(t *testing.T, w *Wizard, services []string, stylist string) {
	t.Helper()
	require.NoError(t, w.SelectServices(services))
	require.NoError(t, w.SelectStylist(stylist))
	require.NoError(t, w.SelectDateTime(june1, "10:00"))
	require.Equal(t, StepConfirm, w.Step())
}

func TestWizard_EmptySelectionCannotAdvance(t *testing.T) {
	w := loadedWizard(t, salonPort())

	assert.False(t, w.CanContinue(nil))
	assert.False(t, w.CanContinue([]string{" ", ""}))
	assert.ErrorIs(t, w.SelectServices(nil), ErrNoServices)
	assert.Equal(t, StepService, w.Step())

	for _, sel := range [][]string{{"h1"}, {"n1", "h2"}, {"h1", "h2", "n1"}} {
		assert.True(t, w.CanContinue(sel), "%v", sel)
	}
}

func TestWizard_LinearSteps(t *testing.T) {
	w := loadedWizard(t, salonPort())

	assert.ErrorIs(t, w.SelectStylist("st1"), ErrWrongStep)
	assert.ErrorIs(t, w.SelectDateTime(june1, "10:00"), ErrWrongStep)

	_, err := w.Submit(context.Background(), jane)
	assert.ErrorIs(t, err, ErrWrongStep)

	require.NoError(t, w.SelectServices([]string{"h1"}))
	assert.Equal(t, StepStylist, w.Step())
	assert.ErrorIs(t, w.SelectServices([]string{"h2"}), ErrWrongStep)
}

func TestWizard_RejectsUnknownChoices(t *testing.T) {
	w := loadedWizard(t, salonPort())

	assert.ErrorIs(t, w.SelectServices([]string{"h1", "zz"}), ErrUnknownService)
	require.NoError(t, w.SelectServices([]string{"h1"}))
	assert.ErrorIs(t, w.SelectStylist("st9"), ErrUnknownStylist)
	require.NoError(t, w.SelectStylist("st2"))
	assert.ErrorIs(t, w.SelectDateTime(june1, "10:15"), ErrUnknownSlot)
	assert.Equal(t, StepDateTime, w.Step())
}

func TestWizard_AnyStylistResolvesToFirstStylist(t *testing.T) {
	port := salonPort()
	w := loadedWizard(t, port)
	walkToConfirm(t, w, []string{"h1"}, viewmodel.AnyStylistID)

	assert.Equal(t, "Any Stylist", w.Summary().StylistName)

	b, err := w.Submit(context.Background(), jane)
	require.NoError(t, err)

	require.Len(t, port.submitted, 1)
	assert.Equal(t, "st1", port.submitted[0].StylistID)
	assert.Equal(t, "st1", b.StylistID)
}

func TestWizard_AnyStylistWithoutStaff(t *testing.T) {
	port := salonPort()
	port.stylists = nil
	w := loadedWizard(t, port)
	walkToConfirm(t, w, []string{"h1"}, viewmodel.AnyStylistID)

	_, err := w.Submit(context.Background(), jane)
	assert.ErrorIs(t, err, ErrNoStylistAvailable)
	assert.Equal(t, StepConfirm, w.Step())
	assert.Empty(t, port.submitted)
}

func TestWizard_OnlyFirstServiceIsSent(t *testing.T) {
	port := salonPort()
	w := loadedWizard(t, port)
	walkToConfirm(t, w, []string{"h2", "h1", "n1", "h2"}, "st2")

	sum := w.Summary()
	assert.Equal(t, 3, sum.ServiceCount)
	assert.Equal(t, 255.0, sum.TotalPrice)
	assert.Equal(t, 195, sum.TotalDuration)
	assert.Equal(t, "Marcus Chen", sum.StylistName)

	_, err := w.Submit(context.Background(), Contact{
		Name: "Jane Doe", Email: "jane@x.com", Phone: "555-0100", Notes: "  first visit ",
	})
	require.NoError(t, err)

	req := port.submitted[0]
	assert.Equal(t, "h2", req.ServiceID)
	assert.Equal(t, "2024-06-01", req.Date)
	assert.Equal(t, "10:00", req.Time)
	require.NotNil(t, req.Notes)
	assert.Equal(t, "first visit", *req.Notes)
}

func TestWizard_BackKeepsChoices(t *testing.T) {
	w := loadedWizard(t, salonPort())
	walkToConfirm(t, w, []string{"h1", "n1"}, "st1")

	assert.True(t, w.Back())
	assert.Equal(t, StepDateTime, w.Step())
	assert.True(t, w.Back())
	assert.Equal(t, StepStylist, w.Step())
	assert.True(t, w.Back())
	assert.Equal(t, StepService, w.Step())
	assert.False(t, w.Back())

	d := w.Draft()
	assert.Equal(t, []string{"h1", "n1"}, d.ServiceIDs)
	assert.Equal(t, "st1", d.StylistID)
	assert.Equal(t, june1, d.Date)
	assert.Equal(t, "10:00", d.Time)
}

func TestWizard_FailedSubmitStaysOnConfirm(t *testing.T) {
	port := salonPort()
	port.submitErr = errors.New("Error creating booking")
	w := loadedWizard(t, port)
	walkToConfirm(t, w, []string{"h1"}, "st1")

	_, err := w.Submit(context.Background(), jane)
	require.Error(t, err)
	assert.Equal(t, StepConfirm, w.Step())
	assert.EqualError(t, w.Err(), "Error creating booking")
	assert.Nil(t, w.Confirmed())
	assert.Equal(t, []string{"h1"}, w.Draft().ServiceIDs)

	port.submitErr = nil
	_, err = w.Submit(context.Background(), jane)
	require.NoError(t, err)
	assert.Nil(t, w.Err())
	assert.Equal(t, StepDone, w.Step())
	assert.Empty(t, w.Draft().ServiceIDs)
	assert.Equal(t, "b1", w.Confirmed().ID)
}

func TestWizard_InvalidContact(t *testing.T) {
	port := salonPort()
	w := loadedWizard(t, port)
	walkToConfirm(t, w, []string{"h1"}, "st1")

	_, err := w.Submit(context.Background(), Contact{Name: "Jane Doe", Email: "not-an-email", Phone: "1"})
	assert.ErrorIs(t, err, ErrInvalidContact)
	assert.ErrorContains(t, err, "email")
	assert.Equal(t, StepConfirm, w.Step())
	assert.Empty(t, port.submitted)
}

func TestWizard_CatalogFailureDegrades(t *testing.T) {
	port := salonPort()
	port.catalogErr = errors.New("network down")
	w := loadedWizard(t, port)

	assert.Equal(t, Failed, w.Services().State)
	assert.Empty(t, w.Services().Data)
	assert.Equal(t, Ready, w.StylistsState())
	assert.ErrorIs(t, w.SelectServices([]string{"h1"}), ErrUnknownService)
}

func TestWizard_StylistChoices(t *testing.T) {
	w := loadedWizard(t, salonPort())
	choices := w.StylistChoices()

	require.Len(t, choices, 3)
	assert.Equal(t, viewmodel.AnyStylistID, choices[0].ID)
	assert.Equal(t, []string{"Color", "Silk Press"}, choices[1].Specialties)
}

func TestNextDays(t *testing.T) {
	now := time.Date(2024, 2, 27, 15, 30, 0, 0, time.UTC)
	days := NextDays(now, BookingWindowDays)

	require.Len(t, days, 14)
	assert.Equal(t, time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC), days[0].Date)
	assert.Equal(t, "TUE", days[0].DayName)
	assert.Equal(t, 29, days[2].DayNumber)
	assert.Equal(t, 1, days[3].DayNumber)
}

func TestTimeSlots(t *testing.T) {
	groups := TimeSlots()
	require.Len(t, groups, 3)
	assert.Len(t, groups[0].Times, 5)
	assert.Len(t, groups[1].Times, 6)
	assert.Len(t, groups[2].Times, 4)

	groups[0].Times[0] = "06:00"
	assert.False(t, IsOfferedSlot("06:00"))
	assert.True(t, IsOfferedSlot("19:00"))
}
