package queries

import (
	"strconv"
	"strings"
	"time"

	"komani-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type QuoteView struct {
	// OnRequest means no numeric total exists; Display carries the
	// localized contact-us label instead of an amount.
	OnRequest bool     `json:"on_request"`
	TotalEUR  *float64 `json:"total_eur,omitempty"`
	TotalLek  *int64   `json:"total_lek,omitempty"`
	Display   string   `json:"display"`
}

type BookingView struct {
	ID               uuid.UUID `json:"id"`
	TourSlug         string    `json:"tour_slug"`
	TourTitle        string    `json:"tour_title"`
	Date             time.Time `json:"date"`
	Adults           int       `json:"adults"`
	Children         int       `json:"children"`
	Seniors          int       `json:"seniors"`
	AddTransfer      bool      `json:"add_transfer"`
	AddKayak         bool      `json:"add_kayak"`
	AddFerry         bool      `json:"add_ferry"`
	AddExtraDay      bool      `json:"add_extra_day"`
	TransferIncluded bool      `json:"transfer_included"`
	SelectableAddOns []string  `json:"selectable_add_ons"`
	PaymentMethod    string    `json:"payment_method"`
	Name             string    `json:"name,omitempty"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	SpecialRequests  string    `json:"special_requests,omitempty"`
	Status           string    `json:"status"`
	Quote            QuoteView `json:"quote"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type TourView struct {
	Slug             string   `json:"slug"`
	Title            string   `json:"title"`
	Price            string   `json:"price"`
	BasePriceEUR     *float64 `json:"base_price_eur,omitempty"`
	OnRequest        bool     `json:"on_request"`
	Currency         string   `json:"currency"`
	Duration         string   `json:"duration"`
	Category         string   `json:"category"`
	TransferIncluded bool     `json:"transfer_included"`
	Inclusions       []string `json:"inclusions"`
}

type PaymentInstructionsView struct {
	Title        string `json:"title"`
	Instructions string `json:"instructions"`
	Recipient    string `json:"recipient"`
}

type ConfirmationView struct {
	BookingID uuid.UUID                `json:"booking_id"`
	Title     string                   `json:"title"`
	Message   string                   `json:"message"`
	TourSlug  string                   `json:"tour_slug"`
	TourTitle string                   `json:"tour_title"`
	Name      string                   `json:"name"`
	Email     string                   `json:"email"`
	Quote     QuoteView                `json:"quote"`
	Payment   *PaymentInstructionsView `json:"payment,omitempty"`
}

// NewQuoteView renders a domain quote for a locale. Conversion to Lek is
// display-only; the EUR total is carried unchanged.
func NewQuoteView(q booking.Quote, lang string, callLabel string) QuoteView {
	if q.OnRequest {
		return QuoteView{OnRequest: true, Display: callLabel}
	}

	eur := q.Total.EUR()
	view := QuoteView{TotalEUR: &eur}
	if lang == "sq" {
		lek := q.Total.Lek()
		view.TotalLek = &lek
		view.Display = formatLek(lek) + " Lek"
	} else {
		view.Display = "€" + strconv.FormatFloat(eur, 'f', -1, 64)
	}
	return view
}

// formatLek groups thousands the way Albanian amounts are written: 15455
// becomes "15.455".
func formatLek(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
