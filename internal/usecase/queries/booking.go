package queries

import (
	"context"

	"komani-booking/internal/domain/booking"
	"komani-booking/internal/domain/tour"
	"komani-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type SessionReader interface {
	Get(id uuid.UUID) (*booking.Selection, error)
}

type TourCatalog interface {
	BySlug(slug string) (*tour.Tour, bool)
	All() []*tour.Tour
}

type Translator interface {
	Normalize(locale string) string
	T(lang, key string, args map[string]string) string
	StringList(lang, key string) []string
}

type BookingQueries interface {
	Get(ctx context.Context, id uuid.UUID, locale string) (*BookingView, error)
	Quote(ctx context.Context, id uuid.UUID, locale string) (*QuoteView, error)
}

type bookingQueriesImpl struct {
	sessions   SessionReader
	catalog    TourCatalog
	calculator booking.PriceCalculator
	translator Translator
}

func NewBookingQueries(
	sessions SessionReader,
	catalog TourCatalog,
	calculator booking.PriceCalculator,
	translator Translator,
) BookingQueries {
	return &bookingQueriesImpl{
		sessions:   sessions,
		catalog:    catalog,
		calculator: calculator,
		translator: translator,
	}
}

func (q *bookingQueriesImpl) Get(_ context.Context, id uuid.UUID, locale string) (*BookingView, error) {
	sel, err := q.sessions.Get(id)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingNotFound)
	}
	return q.buildView(sel, locale), nil
}

func (q *bookingQueriesImpl) Quote(_ context.Context, id uuid.UUID, locale string) (*QuoteView, error) {
	sel, err := q.sessions.Get(id)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingNotFound)
	}
	view := q.quoteView(sel, q.translator.Normalize(locale))
	return &view, nil
}

func (q *bookingQueriesImpl) buildView(sel *booking.Selection, locale string) *BookingView {
	lang := q.translator.Normalize(locale)

	selectable := sel.SelectableAddOns()
	addOns := make([]string, len(selectable))
	for i, a := range selectable {
		addOns[i] = string(a)
	}

	contact := sel.Contact()
	return &BookingView{
		ID:               sel.ID(),
		TourSlug:         sel.TourSlug(),
		TourTitle:        q.tourTitle(sel.TourSlug(), lang),
		Date:             sel.Date(),
		Adults:           sel.Adults(),
		Children:         sel.Children(),
		Seniors:          sel.Seniors(),
		AddTransfer:      sel.AddOn(booking.AddOnTransfer),
		AddKayak:         sel.AddOn(booking.AddOnKayak),
		AddFerry:         sel.AddOn(booking.AddOnFerry),
		AddExtraDay:      sel.AddOn(booking.AddOnExtraDay),
		TransferIncluded: tour.IsTransferIncluded(sel.TourSlug()),
		SelectableAddOns: addOns,
		PaymentMethod:    sel.PaymentMethod().String(),
		Name:             contact.Name(),
		Email:            contact.Email(),
		Phone:            contact.Phone(),
		SpecialRequests:  contact.SpecialRequests(),
		Status:           sel.Status().String(),
		Quote:            q.quoteView(sel, lang),
		CreatedAt:        sel.CreatedAt(),
		UpdatedAt:        sel.UpdatedAt(),
	}
}

func (q *bookingQueriesImpl) quoteView(sel *booking.Selection, lang string) QuoteView {
	t, _ := q.catalog.BySlug(sel.TourSlug())
	// A lookup miss yields a nil tour; the calculator degrades that to an
	// on-request quote so nothing priced is ever rendered for it.
	quote := q.calculator.Quote(sel, t)
	return NewQuoteView(quote, lang, q.translator.T(lang, "Booking.callPrice", nil))
}

func (q *bookingQueriesImpl) tourTitle(slug, lang string) string {
	title := q.translator.T(lang, "ToursData."+slug+".title", nil)
	if title != "ToursData."+slug+".title" {
		return title
	}
	if t, ok := q.catalog.BySlug(slug); ok {
		return t.Title()
	}
	return slug
}
