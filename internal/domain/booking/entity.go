package booking

import (
	"errors"
	"time"

	"komani-booking/internal/domain/tour"

	"github.com/google/uuid"
)

var (
	ErrAdultRequired      = errors.New("a booking requires at least one adult")
	ErrInvalidCategory    = errors.New("invalid guest category")
	ErrInvalidDirection   = errors.New("invalid adjustment direction")
	ErrInvalidAddOn       = errors.New("invalid add-on")
	ErrAddOnNotSelectable = errors.New("add-on is not selectable for this tour")
	ErrInvalidPayment     = errors.New("invalid payment method")
	ErrNotEditing         = errors.New("selection is no longer editable")
	ErrNotSubmitting      = errors.New("selection is not awaiting confirmation")
	ErrEmptyTourSlug      = errors.New("tour slug cannot be empty")
	ErrZeroDate           = errors.New("travel date cannot be zero")
)

const (
	DefaultTourSlug = "boat-tour"
	DefaultAdults   = 2
)

// Seed carries optional values accepted at booking-page entry. Anything
// unset or unusable falls back to the defaults.
type Seed struct {
	TourSlug string
	Date     *time.Time
	Guests   *int
}

// Selection is the in-session record of an in-progress booking. It is owned
// by exactly one logical session; all mutation goes through its methods so
// the guest and status invariants hold at the boundary.
type Selection struct {
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
	paymentMethod PaymentMethod
	contact       ContactInfo
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

func NewSelection(seed Seed, now time.Time) *Selection {
	s := &Selection{
		id:            uuid.New(),
		tourSlug:      DefaultTourSlug,
		date:          now,
		adults:        DefaultAdults,
		paymentMethod: PayInPerson,
		status:        StatusEditing,
		createdAt:     now,
		updatedAt:     now,
	}

	if seed.TourSlug != "" {
		s.tourSlug = seed.TourSlug
	}
	if seed.Date != nil && !seed.Date.IsZero() {
		s.date = *seed.Date
	}
	if seed.Guests != nil && *seed.Guests >= 1 {
		s.adults = *seed.Guests
	}
	return s
}

func (s *Selection) ID() uuid.UUID                { return s.id }
func (s *Selection) TourSlug() string             { return s.tourSlug }
func (s *Selection) Date() time.Time              { return s.date }
func (s *Selection) Adults() int                  { return s.adults }
func (s *Selection) Children() int                { return s.children }
func (s *Selection) Seniors() int                 { return s.seniors }
func (s *Selection) PaymentMethod() PaymentMethod { return s.paymentMethod }
func (s *Selection) Contact() ContactInfo         { return s.contact }
func (s *Selection) Status() Status               { return s.status }
func (s *Selection) CreatedAt() time.Time         { return s.createdAt }
func (s *Selection) UpdatedAt() time.Time         { return s.updatedAt }

func (s *Selection) TotalGuests() int {
	return s.adults + s.children + s.seniors
}

func (s *Selection) AddOn(a AddOn) bool {
	switch a {
	case AddOnTransfer:
		return s.addTransfer
	case AddOnKayak:
		return s.addKayak
	case AddOnFerry:
		return s.addFerry
	case AddOnExtraDay:
		return s.addExtraDay
	default:
		return false
	}
}

// SelectableAddOns is the capability set for the current tour: transfer is
// absent entirely when the tour already includes it, and the extra day is
// offered only on the Local Experience.
func (s *Selection) SelectableAddOns() []AddOn {
	out := make([]AddOn, 0, 4)
	if !tour.IsTransferIncluded(s.tourSlug) {
		out = append(out, AddOnTransfer)
	}
	out = append(out, AddOnKayak, AddOnFerry)
	if s.tourSlug == "local-experience" {
		out = append(out, AddOnExtraDay)
	}
	return out
}

// AdjustGuests applies a single counter transition. Decrements floor at
// zero, except adults: a decrement that would drop below one adult is
// rejected outright and the count is left untouched.
func (s *Selection) AdjustGuests(category GuestCategory, direction Direction, now time.Time) error {
	if s.status != StatusEditing {
		return ErrNotEditing
	}
	if !category.IsValid() {
		return ErrInvalidCategory
	}
	if !direction.IsValid() {
		return ErrInvalidDirection
	}

	var count *int
	switch category {
	case CategoryAdults:
		count = &s.adults
	case CategoryChildren:
		count = &s.children
	case CategorySeniors:
		count = &s.seniors
	}

	if direction == Increment {
		*count++
	} else {
		if category == CategoryAdults && *count <= 1 {
			return ErrAdultRequired
		}
		if *count > 0 {
			*count--
		}
	}
	s.updatedAt = now
	return nil
}

// SetAddOn toggles an add-on flag. The transfer add-on is gated: for tours
// that bundle the transfer it is not part of the selectable state at all, so
// setting it is an error rather than a silent no-op. A stale extra-day flag
// on a non-Local-Experience tour stays inert in pricing instead.
func (s *Selection) SetAddOn(a AddOn, enabled bool, t *tour.Tour, now time.Time) error {
	if s.status != StatusEditing {
		return ErrNotEditing
	}
	if !a.IsValid() {
		return ErrInvalidAddOn
	}
	if a == AddOnTransfer && t != nil && t.TransferIncluded() {
		return ErrAddOnNotSelectable
	}

	switch a {
	case AddOnTransfer:
		s.addTransfer = enabled
	case AddOnKayak:
		s.addKayak = enabled
	case AddOnFerry:
		s.addFerry = enabled
	case AddOnExtraDay:
		s.addExtraDay = enabled
	}
	s.updatedAt = now
	return nil
}

func (s *Selection) SetTour(slug string, now time.Time) error {
	if s.status != StatusEditing {
		return ErrNotEditing
	}
	if slug == "" {
		return ErrEmptyTourSlug
	}
	s.tourSlug = slug
	s.updatedAt = now
	return nil
}

func (s *Selection) SetDate(date time.Time, now time.Time) error {
	if s.status != StatusEditing {
		return ErrNotEditing
	}
	if date.IsZero() {
		return ErrZeroDate
	}
	s.date = date
	s.updatedAt = now
	return nil
}

func (s *Selection) SetPaymentMethod(m PaymentMethod, now time.Time) error {
	if s.status != StatusEditing {
		return ErrNotEditing
	}
	if !m.IsValid() {
		return ErrInvalidPayment
	}
	s.paymentMethod = m
	s.updatedAt = now
	return nil
}

func (s *Selection) SetContact(c ContactInfo, now time.Time) error {
	if s.status != StatusEditing {
		return ErrNotEditing
	}
	s.contact = c
	s.updatedAt = now
	return nil
}

// Violation is a single field-level constraint failure. Validate reports
// every violation at once; submission never short-circuits on the first.
type Violation struct {
	Field   string
	Message string
}

func (s *Selection) Validate() []Violation {
	var out []Violation
	if s.tourSlug == "" {
		out = append(out, Violation{Field: "tour", Message: "Please select a tour."})
	}
	if s.date.IsZero() {
		out = append(out, Violation{Field: "date", Message: "Please select a date."})
	}
	if s.adults < 1 {
		out = append(out, Violation{Field: "adults", Message: "At least 1 adult is required."})
	}
	if len(s.contact.Name()) < 2 {
		out = append(out, Violation{Field: "name", Message: "Name must be at least 2 characters."})
	}
	if !emailRegex.MatchString(s.contact.Email()) {
		out = append(out, Violation{Field: "email", Message: "Invalid email address."})
	}
	if len(s.contact.Phone()) < 8 {
		out = append(out, Violation{Field: "phone", Message: "Please enter a valid phone number (including country code)."})
	}
	return out
}

// BeginSubmission moves Editing to Submitting. Any other starting state is
// rejected, which is what keeps duplicate submits out while one is pending.
func (s *Selection) BeginSubmission(now time.Time) error {
	if s.status != StatusEditing {
		return ErrNotEditing
	}
	s.status = StatusSubmitting
	s.updatedAt = now
	return nil
}

// Confirm moves Submitting to Confirmed, the terminal state.
func (s *Selection) Confirm(now time.Time) error {
	if s.status != StatusSubmitting {
		return ErrNotSubmitting
	}
	s.status = StatusConfirmed
	s.updatedAt = now
	return nil
}

// Clone returns an independent copy so reads never alias store-held state.
func (s *Selection) Clone() *Selection {
	dup := *s
	return &dup
}

func ReconstructSelection(
	id uuid.UUID,
	tourSlug string,
	date time.Time,
	adults, children, seniors int,
	addTransfer, addKayak, addFerry, addExtraDay bool,
	paymentMethod PaymentMethod,
	contact ContactInfo,
	status Status,
	createdAt, updatedAt time.Time,
) *Selection {
	return &Selection{
		id:            id,
		tourSlug:      tourSlug,
		date:          date,
		adults:        adults,
		children:      children,
		seniors:       seniors,
		addTransfer:   addTransfer,
		addKayak:      addKayak,
		addFerry:      addFerry,
		addExtraDay:   addExtraDay,
		paymentMethod: paymentMethod,
		contact:       contact,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}
