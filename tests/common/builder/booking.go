//go:build unit

package builder

import (
	"time"

	"komani-booking/internal/domain/booking"

	"github.com/google/uuid"
)

var fixedNow = time.Date(2026, 7, 15, 10, 0, 0, 0, time.UTC)

// SelectionBuilder assembles a booking selection in an arbitrary state for
// domain tests.
type SelectionBuilder struct {
	id            uuid.UUID
	tourSlug      string
	date          time.Time
	adults        int
	children      int
	seniors       int
	addTransfer   bool
	addKayak      bool
	addFerry      bool
	addExtraDay   bool
	paymentMethod booking.PaymentMethod
	contact       booking.ContactInfo
	status        booking.Status
	now           time.Time
}

func NewSelectionBuilder() *SelectionBuilder {
	return &SelectionBuilder{
		id:            uuid.New(),
		tourSlug:      booking.DefaultTourSlug,
		date:          fixedNow.AddDate(0, 0, 7),
		adults:        booking.DefaultAdults,
		paymentMethod: booking.PayInPerson,
		contact:       booking.DraftContactInfo("Arben Hoxha", "arben@example.com", "+355691234567", ""),
		status:        booking.StatusEditing,
		now:           fixedNow,
	}
}

func (b *SelectionBuilder) WithTour(slug string) *SelectionBuilder {
	b.tourSlug = slug
	return b
}

func (b *SelectionBuilder) WithDate(date time.Time) *SelectionBuilder {
	b.date = date
	return b
}

func (b *SelectionBuilder) WithGuests(adults, children, seniors int) *SelectionBuilder {
	b.adults = adults
	b.children = children
	b.seniors = seniors
	return b
}

func (b *SelectionBuilder) WithAddOn(a booking.AddOn) *SelectionBuilder {
	switch a {
	case booking.AddOnTransfer:
		b.addTransfer = true
	case booking.AddOnKayak:
		b.addKayak = true
	case booking.AddOnFerry:
		b.addFerry = true
	case booking.AddOnExtraDay:
		b.addExtraDay = true
	}
	return b
}

func (b *SelectionBuilder) WithPaymentMethod(m booking.PaymentMethod) *SelectionBuilder {
	b.paymentMethod = m
	return b
}

func (b *SelectionBuilder) WithContact(name, email, phone string) *SelectionBuilder {
	b.contact = booking.DraftContactInfo(name, email, phone, "")
	return b
}

func (b *SelectionBuilder) WithStatus(s booking.Status) *SelectionBuilder {
	b.status = s
	return b
}

func (b *SelectionBuilder) Build() *booking.Selection {
	return booking.ReconstructSelection(
		b.id,
		b.tourSlug,
		b.date,
		b.adults, b.children, b.seniors,
		b.addTransfer, b.addKayak, b.addFerry, b.addExtraDay,
		b.paymentMethod,
		b.contact,
		b.status,
		b.now, b.now,
	)
}
