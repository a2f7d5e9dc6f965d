package response

import (
	"time"

	"komani-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type QuoteResponse struct {
	OnRequest bool     `json:"onRequest"`
	TotalEUR  *float64 `json:"totalEur,omitempty"`
	TotalLek  *int64   `json:"totalLek,omitempty"`
	Display   string   `json:"display"`
}

type BookingResponse struct {
	ID               uuid.UUID     `json:"id"`
	TourSlug         string        `json:"tourSlug"`
	TourTitle        string        `json:"tourTitle"`
	Date             time.Time     `json:"date"`
	Adults           int           `json:"adults"`
	Children         int           `json:"children"`
	Seniors          int           `json:"seniors"`
	AddTransfer      bool          `json:"addTransfer"`
	AddKayak         bool          `json:"addKayak"`
	AddFerry         bool          `json:"addFerry"`
	AddExtraDay      bool          `json:"addExtraDay"`
	TransferIncluded bool          `json:"transferIncluded"`
	SelectableAddOns []string      `json:"selectableAddOns"`
	PaymentMethod    string        `json:"paymentMethod"`
	Name             string        `json:"name,omitempty"`
	Email            string        `json:"email,omitempty"`
	Phone            string        `json:"phone,omitempty"`
	SpecialRequests  string        `json:"specialRequests,omitempty"`
	Status           string        `json:"status"`
	Quote            QuoteResponse `json:"quote"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

type PaymentInstructionsResponse struct {
	Title        string `json:"title"`
	Instructions string `json:"instructions"`
	Recipient    string `json:"recipient"`
}

type ConfirmationResponse struct {
	BookingID uuid.UUID                    `json:"bookingId"`
	Title     string                       `json:"title"`
	Message   string                       `json:"message"`
	TourSlug  string                       `json:"tourSlug"`
	TourTitle string                       `json:"tourTitle"`
	Name      string                       `json:"name"`
	Email     string                       `json:"email"`
	Quote     QuoteResponse                `json:"quote"`
	Payment   *PaymentInstructionsResponse `json:"payment,omitempty"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	var resp QuoteResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromConfirmationView(view *queries.ConfirmationView) *ConfirmationResponse {
	var resp ConfirmationResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
