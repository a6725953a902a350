package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/harramos25/GlamBook/internal/audit"
	domain "github.com/harramos25/GlamBook/internal/domain/booking"
	"github.com/harramos25/GlamBook/internal/models"
	"github.com/harramos25/GlamBook/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserName  string
	UserEmail string `validate:"required"`
	UserPhone string

	ServiceID string `validate:"required"`
	StylistID string `validate:"required"`

	Date  string `validate:"required"`
	Time  string `validate:"required,clock"`
	Notes *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute finds or creates the CLIENT user by email and stores the booking
// as CONFIRMED. There is no availability or overlap check.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if err := validators.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid booking %s: %w", validators.FirstField(err), err)
	}

	// --------------------------------------------------
	// Date
	// --------------------------------------------------
	date, err := ParseBookingDate(in.Date)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// User (find or create)
	// --------------------------------------------------
	user, err := uc.findOrCreateUser(ctx, in)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Booking
	// --------------------------------------------------
	b := &models.Booking{
		UserID:    user.ID,
		StylistID: in.StylistID,
		ServiceID: in.ServiceID,
		Date:      date,
		Time:      in.Time,
		Notes:     in.Notes,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   audit.StrPtr(user.ID),
			Action:   audit.ActionBookingCreated,
			Entity:   "booking",
			EntityID: audit.StrPtr(b.ID),
			Metadata: map[string]any{
				"stylistId": b.StylistID,
				"serviceId": b.ServiceID,
				"date":      in.Date,
				"time":      b.Time,
			},
		})
	}

	return b, nil
}

func (uc *CreateBooking) findOrCreateUser(
	ctx context.Context,
	in CreateBookingInput,
) (*models.User, error) {

	email := strings.TrimSpace(in.UserEmail)

	user, err := uc.repo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	user = &models.User{
		Email: email,
		Name:  in.UserName,
		Role:  models.RoleClient,
	}
	if in.UserPhone != "" {
		phone := in.UserPhone
		user.Phone = &phone
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		// a concurrent booking may have created the same email
		if existing, ferr := uc.repo.FindUserByEmail(ctx, email); ferr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}
