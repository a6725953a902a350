package frontend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harramos25/GlamBook/internal/dto"
	"github.com/harramos25/GlamBook/internal/logger"
	"github.com/harramos25/GlamBook/internal/models"
	"github.com/harramos25/GlamBook/internal/validators"
	"github.com/harramos25/GlamBook/internal/viewmodel"
)

type Step string

const (
	StepService  Step = "service"
	StepStylist  Step = "stylist"
	StepDateTime Step = "datetime"
	StepConfirm  Step = "confirm"
	StepDone     Step = "done"
)

var (
	ErrWrongStep          = errors.New("action not allowed at this step")
	ErrNoServices         = errors.New("select at least one service")
	ErrUnknownService     = errors.New("unknown service")
	ErrUnknownStylist     = errors.New("unknown stylist")
	ErrUnknownSlot        = errors.New("time is not an offered slot")
	ErrNoStylistAvailable = errors.New("no stylist to assign")
	ErrInvalidContact     = errors.New("invalid contact details")
)

// Draft is the unsaved selection. It is never sent anywhere until Submit.
type Draft struct {
	ServiceIDs []string
	StylistID  string
	Date       time.Time
	Time       string
}

type Contact struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Phone string `validate:"required"`
	Notes string
}

type Summary struct {
	ServiceCount  int
	ServiceNames  []string
	StylistName   string
	Date          time.Time
	Time          string
	TotalPrice    float64
	TotalDuration int
}

// Wizard walks one booking through service, stylist, date/time and confirm.
// Steps are strictly sequential; Back rewinds without clearing choices.
type Wizard struct {
	port DataPort

	services Loadable[[]models.Service]
	stylists Loadable[[]models.Stylist]

	step      Step
	draft     Draft
	err       error
	confirmed *models.Booking
}

func NewWizard(port DataPort) *Wizard {
	return &Wizard{port: port, step: StepService}
}

// Load fetches the catalog and the staff list.
func (w *Wizard) Load(ctx context.Context) {
	w.services.Load(ctx, "services", w.port.FetchCatalog)
	w.stylists.Load(ctx, "stylists", w.port.FetchStaff)
}

func (w *Wizard) Step() Step   { return w.step }
func (w *Wizard) Draft() Draft { return w.draft }

// Err is the last submission failure, cleared by the next attempt.
func (w *Wizard) Err() error { return w.err }

func (w *Wizard) Confirmed() *models.Booking { return w.confirmed }

func (w *Wizard) Services() Loadable[[]models.Service] { return w.services }

// StylistChoices is the selection list, with the "any" card first.
func (w *Wizard) StylistChoices() []viewmodel.StylistCard {
	return viewmodel.WithAnyStylist(w.stylists.Data)
}

func (w *Wizard) StylistsState() LoadState { return w.stylists.State }

// CanContinue reports whether a service selection may advance the wizard.
func (w *Wizard) CanContinue(ids []string) bool {
	return len(normalizeIDs(ids)) > 0
}

func (w *Wizard) SelectServices(ids []string) error {
	if w.step != StepService {
		return ErrWrongStep
	}

	ids = normalizeIDs(ids)
	if len(ids) == 0 {
		return ErrNoServices
	}
	for _, id := range ids {
		if _, ok := w.service(id); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownService, id)
		}
	}

	w.draft.ServiceIDs = ids
	w.step = StepStylist
	return nil
}

func (w *Wizard) SelectStylist(id string) error {
	if w.step != StepStylist {
		return ErrWrongStep
	}
	if id != viewmodel.AnyStylistID {
		if _, ok := w.stylist(id); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownStylist, id)
		}
	}

	w.draft.StylistID = id
	w.step = StepDateTime
	return nil
}

func (w *Wizard) SelectDateTime(date time.Time, clock string) error {
	if w.step != StepDateTime {
		return ErrWrongStep
	}
	if !IsOfferedSlot(clock) {
		return fmt.Errorf("%w: %s", ErrUnknownSlot, clock)
	}

	w.draft.Date = date
	w.draft.Time = clock
	w.step = StepConfirm
	return nil
}

// Back steps one screen back and reports whether it moved.
func (w *Wizard) Back() bool {
	switch w.step {
	case StepStylist:
		w.step = StepService
	case StepDateTime:
		w.step = StepStylist
	case StepConfirm:
		w.step = StepDateTime
	default:
		return false
	}
	w.err = nil
	return true
}

// Summary totals every selected service, although only the first one is
// booked on submit.
func (w *Wizard) Summary() Summary {
	s := Summary{
		StylistName: "Unknown",
		Date:        w.draft.Date,
		Time:        w.draft.Time,
	}

	for _, id := range w.draft.ServiceIDs {
		svc, ok := w.service(id)
		if !ok {
			continue
		}
		s.ServiceCount++
		s.ServiceNames = append(s.ServiceNames, svc.Name)
		s.TotalPrice += svc.Price
		s.TotalDuration += svc.Duration
	}

	switch {
	case w.draft.StylistID == viewmodel.AnyStylistID:
		s.StylistName = viewmodel.AnyStylist().Name
	case w.draft.StylistID != "":
		if st, ok := w.stylist(w.draft.StylistID); ok {
			s.StylistName = st.Name
		}
	}
	return s
}

// ResolveStylist maps the "any" choice to the first fetched stylist. This is
// a fixed fallback, not an availability check.
func (w *Wizard) ResolveStylist() (string, error) {
	if w.draft.StylistID != viewmodel.AnyStylistID {
		return w.draft.StylistID, nil
	}
	if len(w.stylists.Data) == 0 {
		return "", ErrNoStylistAvailable
	}
	return w.stylists.Data[0].ID, nil
}

// BuildRequest produces the submission body. Only the first selected service
// is sent.
func (w *Wizard) BuildRequest(c Contact) (dto.CreateBookingRequest, error) {
	if err := validators.Struct(c); err != nil {
		return dto.CreateBookingRequest{}, fmt.Errorf("%w: %s", ErrInvalidContact, strings.ToLower(validators.FirstField(err)))
	}
	if len(w.draft.ServiceIDs) == 0 {
		return dto.CreateBookingRequest{}, ErrNoServices
	}

	stylistID, err := w.ResolveStylist()
	if err != nil {
		return dto.CreateBookingRequest{}, err
	}

	req := dto.CreateBookingRequest{
		UserName:  strings.TrimSpace(c.Name),
		UserEmail: strings.TrimSpace(c.Email),
		UserPhone: strings.TrimSpace(c.Phone),
		ServiceID: w.draft.ServiceIDs[0],
		StylistID: stylistID,
		Date:      w.draft.Date.Format("2006-01-02"),
		Time:      w.draft.Time,
	}
	if notes := strings.TrimSpace(c.Notes); notes != "" {
		req.Notes = &notes
	}
	return req, nil
}

// Submit sends the booking. On failure the wizard stays on confirm with the
// error in Err; on success the draft is discarded.
func (w *Wizard) Submit(ctx context.Context, c Contact) (*models.Booking, error) {
	if w.step != StepConfirm {
		return nil, ErrWrongStep
	}
	w.err = nil

	req, err := w.BuildRequest(c)
	if err != nil {
		w.err = err
		return nil, err
	}

	b, err := w.port.SubmitBooking(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("booking submission failed")
		w.err = err
		return nil, err
	}

	w.confirmed = b
	w.draft = Draft{}
	w.step = StepDone
	return b, nil
}

func (w *Wizard) service(id string) (models.Service, bool) {
	for _, s := range w.services.Data {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}

func (w *Wizard) stylist(id string) (models.Stylist, bool) {
	for _, s := range w.stylists.Data {
		if s.ID == id {
			return s, true
		}
	}
	return models.Stylist{}, false
}

func normalizeIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
