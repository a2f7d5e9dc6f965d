package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"komani-booking/internal/domain/booking"
	"komani-booking/internal/infra/sessions"
	"komani-booking/internal/pkg/clock"
	"komani-booking/internal/pkg/config"
	"komani-booking/internal/pkg/errs"
	"komani-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound       = errs.New("booking session not found")
	ErrTourNotFound          = errs.New("tour not found")
	ErrGuestMinimum          = errs.New("at least one adult is required")
	ErrAddOnNotSelectable    = errs.New("add-on not selectable for this tour")
	ErrNotEditable           = errs.New("booking is no longer editable")
	ErrSubmissionInProgress  = errs.New("submission already in progress")
	ErrValidationFailed      = errs.New("booking validation failed")
	ErrInvalidAdjustment     = errs.New("invalid guest adjustment")
	ErrSubmissionInterrupted = errs.New("submission interrupted")
)

// ValidationError aggregates every violated constraint; submission gating
// reports them all at once rather than stopping at the first.
type ValidationError struct {
	Violations []booking.Violation
}

func (e *ValidationError) Error() string {
	fields := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		fields[i] = v.Field
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

type UpdateSelectionParams struct {
	TourSlug        *string
	Date            *time.Time
	PaymentMethod   *string
	Name            *string
	Email           *string
	Phone           *string
	SpecialRequests *string
}

type SubmitParams struct {
	Name            string
	Email           string
	Phone           string
	SpecialRequests string
	PaymentMethod   *string
}

type BookingCommands interface {
	Open(ctx context.Context, seed booking.Seed, locale string) (*queries.BookingView, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateSelectionParams, locale string) (*queries.BookingView, error)
	AdjustGuests(ctx context.Context, id uuid.UUID, category booking.GuestCategory, direction booking.Direction, locale string) (*queries.BookingView, error)
	SetAddOn(ctx context.Context, id uuid.UUID, addOn booking.AddOn, enabled bool, locale string) (*queries.BookingView, error)
	Submit(ctx context.Context, id uuid.UUID, params SubmitParams, locale string) (*queries.ConfirmationView, error)
}

type bookingCommandsImpl struct {
	sessions       SessionRepository
	catalog        TourCatalog
	calculator     booking.PriceCalculator
	translator     Translator
	bookingQueries queries.BookingQueries
	clock          clock.Clock
	cfg            config.BookingConfig
}

func NewBookingCommands(
	sessions SessionRepository,
	catalog TourCatalog,
	calculator booking.PriceCalculator,
	translator Translator,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		sessions:       sessions,
		catalog:        catalog,
		calculator:     calculator,
		translator:     translator,
		bookingQueries: bookingQueries,
		clock:          clk,
		cfg:            cfg.Booking,
	}
}

// Open starts a booking session, optionally seeded from page-entry values.
// Seeds that do not resolve (unknown tour, unparsable date) fall back to the
// defaults instead of failing: opening the booking page never errors over a
// bad deep link.
func (c *bookingCommandsImpl) Open(ctx context.Context, seed booking.Seed, locale string) (*queries.BookingView, error) {
	if seed.TourSlug != "" {
		if _, ok := c.catalog.BySlug(seed.TourSlug); !ok {
			slog.Warn("ignoring unknown tour seed", "tour", seed.TourSlug)
			seed.TourSlug = ""
		}
	}

	sel := booking.NewSelection(seed, c.clock.Now())
	if err := c.sessions.Create(sel); err != nil {
		return nil, errs.Wrap(err, "create booking session")
	}

	slog.Info("booking session opened", "booking_id", sel.ID(), "tour", sel.TourSlug(), "adults", sel.Adults())
	return c.bookingQueries.Get(ctx, sel.ID(), locale)
}

func (c *bookingCommandsImpl) Update(ctx context.Context, id uuid.UUID, params UpdateSelectionParams, locale string) (*queries.BookingView, error) {
	if params.TourSlug != nil {
		if _, ok := c.catalog.BySlug(*params.TourSlug); !ok {
			return nil, ErrTourNotFound
		}
	}

	now := c.clock.Now()
	_, err := c.sessions.Update(id, func(s *booking.Selection) error {
		if params.TourSlug != nil {
			if err := s.SetTour(*params.TourSlug, now); err != nil {
				return err
			}
		}
		if params.Date != nil {
			if err := s.SetDate(*params.Date, now); err != nil {
				return err
			}
		}
		if params.PaymentMethod != nil {
			if err := s.SetPaymentMethod(booking.PaymentMethod(*params.PaymentMethod), now); err != nil {
				return err
			}
		}
		return c.applyContact(s, params, now)
	})
	if err != nil {
		return nil, c.mapSessionError(err)
	}
	return c.bookingQueries.Get(ctx, id, locale)
}

// applyContact patches contact fields without enforcing the full contact
// constraints; those gate submission, not editing.
func (c *bookingCommandsImpl) applyContact(s *booking.Selection, params UpdateSelectionParams, now time.Time) error {
	if params.Name == nil && params.Email == nil && params.Phone == nil && params.SpecialRequests == nil {
		return nil
	}

	contact := s.Contact()
	name := contact.Name()
	email := contact.Email()
	phone := contact.Phone()
	requests := contact.SpecialRequests()

	if params.Name != nil {
		name = *params.Name
	}
	if params.Email != nil {
		email = *params.Email
	}
	if params.Phone != nil {
		phone = *params.Phone
	}
	if params.SpecialRequests != nil {
		requests = *params.SpecialRequests
	}
	return s.SetContact(booking.DraftContactInfo(name, email, phone, requests), now)
}

func (c *bookingCommandsImpl) AdjustGuests(ctx context.Context, id uuid.UUID, category booking.GuestCategory, direction booking.Direction, locale string) (*queries.BookingView, error) {
	now := c.clock.Now()
	_, err := c.sessions.Update(id, func(s *booking.Selection) error {
		return s.AdjustGuests(category, direction, now)
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrAdultRequired):
			return nil, errs.Mark(err, ErrGuestMinimum)
		case errors.Is(err, booking.ErrInvalidCategory), errors.Is(err, booking.ErrInvalidDirection):
			return nil, errs.Mark(err, ErrInvalidAdjustment)
		default:
			return nil, c.mapSessionError(err)
		}
	}
	return c.bookingQueries.Get(ctx, id, locale)
}

func (c *bookingCommandsImpl) SetAddOn(ctx context.Context, id uuid.UUID, addOn booking.AddOn, enabled bool, locale string) (*queries.BookingView, error) {
	now := c.clock.Now()
	_, err := c.sessions.Update(id, func(s *booking.Selection) error {
		t, _ := c.catalog.BySlug(s.TourSlug())
		return s.SetAddOn(addOn, enabled, t, now)
	})
	if err != nil {
		if errors.Is(err, booking.ErrAddOnNotSelectable) {
			return nil, errs.Mark(err, ErrAddOnNotSelectable)
		}
		return nil, c.mapSessionError(err)
	}
	return c.bookingQueries.Get(ctx, id, locale)
}

// Submit runs the whole workflow: validation gate, Editing to Submitting,
// the simulated latency, Submitting to Confirmed. The status guard runs
// under the store lock, so a second submit while one is pending is rejected
// and the confirmation fires exactly once.
func (c *bookingCommandsImpl) Submit(ctx context.Context, id uuid.UUID, params SubmitParams, locale string) (*queries.ConfirmationView, error) {
	now := c.clock.Now()
	accepted, err := c.sessions.Update(id, func(s *booking.Selection) error {
		if params.PaymentMethod != nil {
			if err := s.SetPaymentMethod(booking.PaymentMethod(*params.PaymentMethod), now); err != nil {
				return err
			}
		}
		if err := s.SetContact(booking.DraftContactInfo(params.Name, params.Email, params.Phone, params.SpecialRequests), now); err != nil {
			return err
		}
		if violations := s.Validate(); len(violations) > 0 {
			return &ValidationError{Violations: violations}
		}
		return s.BeginSubmission(now)
	})
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			return nil, err
		}
		return nil, c.mapSessionError(err)
	}

	slog.Info("booking submission accepted", "booking_id", id, "tour", accepted.TourSlug(), "payment_method", accepted.PaymentMethod())

	if err := c.waitConfirmDelay(ctx); err != nil {
		return nil, err
	}

	confirmed, err := c.sessions.Update(id, func(s *booking.Selection) error {
		return s.Confirm(c.clock.Now())
	})
	if err != nil {
		return nil, c.mapSessionError(err)
	}

	view := c.buildConfirmation(confirmed, locale)

	// Confirmed is terminal; the session has served its purpose.
	if err := c.sessions.Delete(id); err != nil {
		slog.Warn("failed to drop confirmed booking session", "booking_id", id, "error", err)
	}

	slog.Info("booking confirmed", "booking_id", id, "tour", confirmed.TourSlug(), "email", confirmed.Contact().Email())
	return view, nil
}

// waitConfirmDelay stands in for the reservation backend round-trip. The
// delay is not user-cancellable in the product; the context check only
// covers server shutdown.
func (c *bookingCommandsImpl) waitConfirmDelay(ctx context.Context) error {
	if c.cfg.ConfirmDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(c.cfg.ConfirmDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return errs.Mark(ctx.Err(), ErrSubmissionInterrupted)
	case <-timer.C:
		return nil
	}
}

func (c *bookingCommandsImpl) buildConfirmation(sel *booking.Selection, locale string) *queries.ConfirmationView {
	lang := c.translator.Normalize(locale)

	t, _ := c.catalog.BySlug(sel.TourSlug())
	quote := c.calculator.Quote(sel, t)

	title := c.translator.T(lang, "ToursData."+sel.TourSlug()+".title", nil)
	if title == "ToursData."+sel.TourSlug()+".title" {
		if t != nil {
			title = t.Title()
		} else {
			title = sel.TourSlug()
		}
	}

	contact := sel.Contact()
	view := &queries.ConfirmationView{
		BookingID: sel.ID(),
		Title:     c.translator.T(lang, "Booking.successTitle", nil),
		Message: c.translator.T(lang, "Booking.successMessage", map[string]string{
			"name":  contact.Name(),
			"tour":  title,
			"email": contact.Email(),
		}),
		TourSlug:  sel.TourSlug(),
		TourTitle: title,
		Name:      contact.Name(),
		Email:     contact.Email(),
		Quote:     queries.NewQuoteView(quote, lang, c.translator.T(lang, "Booking.callPrice", nil)),
	}

	// No payment gateway exists; paying up front means manual PayPal
	// instructions with the fixed recipient.
	if sel.PaymentMethod() == booking.PayNow {
		view.Payment = &queries.PaymentInstructionsView{
			Title:        c.translator.T(lang, "Booking.payNowTitle", nil),
			Instructions: c.translator.T(lang, "Booking.payNowInstructions", nil),
			Recipient:    c.cfg.PaymentRecipient,
		}
	}
	return view
}

func (c *bookingCommandsImpl) mapSessionError(err error) error {
	switch {
	case errors.Is(err, sessions.ErrNotFound):
		return errs.Mark(err, ErrSessionNotFound)
	case errors.Is(err, booking.ErrNotEditing):
		return errs.Mark(err, ErrSubmissionInProgress)
	case errors.Is(err, booking.ErrNotSubmitting):
		return errs.Mark(err, ErrNotEditable)
	case errors.Is(err, booking.ErrInvalidPayment),
		errors.Is(err, booking.ErrEmptyTourSlug),
		errors.Is(err, booking.ErrZeroDate),
		errors.Is(err, booking.ErrInvalidAddOn):
		return errs.Mark(err, ErrValidationFailed)
	default:
		return err
	}
}
