package request

import (
	"strconv"
	"strings"
	"time"

	"komani-booking/internal/domain/booking"
	"komani-booking/internal/usecase/commands"
)

// OpenBookingRequest carries the optional page-entry seed accepted as query
// parameters. Every value is best-effort: anything unparsable is dropped and
// the session opens with defaults.
type OpenBookingRequest struct {
	Tour   string `form:"tour"`
	Date   string `form:"date"`
	Guests string `form:"guests"`
}

func (r OpenBookingRequest) ToSeed() booking.Seed {
	seed := booking.Seed{TourSlug: strings.TrimSpace(r.Tour)}

	if r.Date != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if d, err := time.Parse(layout, r.Date); err == nil {
				seed.Date = &d
				break
			}
		}
	}

	if r.Guests != "" {
		// The widget's guest picker tops out at a "9+" sentinel.
		raw := strings.TrimSpace(r.Guests)
		if raw == "9+" {
			raw = "9"
		}
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			seed.Guests = &n
		}
	}
	return seed
}

type UpdateBookingRequest struct {
	Tour            *string    `json:"tour,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	PaymentMethod   *string    `json:"paymentMethod,omitempty" binding:"omitempty,oneof=payNow payInPerson"`
	Name            *string    `json:"name,omitempty"`
	Email           *string    `json:"email,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	SpecialRequests *string    `json:"specialRequests,omitempty"`
}

func (r UpdateBookingRequest) ToParams() commands.UpdateSelectionParams {
	return commands.UpdateSelectionParams{
		TourSlug:        r.Tour,
		Date:            r.Date,
		PaymentMethod:   r.PaymentMethod,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		SpecialRequests: r.SpecialRequests,
	}
}

type AdjustGuestsRequest struct {
	Category  string `json:"category" binding:"required,oneof=adults children seniors"`
	Direction string `json:"direction" binding:"required,oneof=increment decrement"`
}

type SetAddOnRequest struct {
	AddOn   string `json:"addOn" binding:"required,oneof=transfer kayak ferry extraDay"`
	Enabled bool   `json:"enabled"`
}

// SubmitBookingRequest is the validation schema gating submission. Binding
// reports all violated constraints together, one message per field.
type SubmitBookingRequest struct {
	Name            string  `json:"name" binding:"required,min=2"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone" binding:"required,min=8"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	PaymentMethod   *string `json:"paymentMethod,omitempty" binding:"omitempty,oneof=payNow payInPerson"`
}

func (r SubmitBookingRequest) ToParams() commands.SubmitParams {
	params := commands.SubmitParams{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		PaymentMethod: r.PaymentMethod,
	}
	if r.SpecialRequests != nil {
		params.SpecialRequests = *r.SpecialRequests
	}
	return params
}
