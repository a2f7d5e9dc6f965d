//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"komani-booking/internal/domain/booking"
	"komani-booking/internal/handler/api"
	resdto "komani-booking/internal/handler/dto/response"
	"komani-booking/internal/usecase/commands"
	"komani-booking/internal/usecase/queries"
	"komani-booking/tests/common/httptest"
	"komani-booking/tests/common/testutil"
	commandsmock "komani-booking/tests/mock/commands"
	queriesmock "komani-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.Open)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.PATCH("/bookings/:id", s.handler.Update)
	s.router.POST("/bookings/:id/guests", s.handler.AdjustGuests)
	s.router.POST("/bookings/:id/addons", s.handler.SetAddOn)
	s.router.GET("/bookings/:id/quote", s.handler.Quote)
	s.router.POST("/bookings/:id/submit", s.handler.Submit)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func sampleBookingView() *queries.BookingView {
	total := 108.0
	now := time.Date(2026, 7, 15, 10, 0, 0, 0, time.UTC)
	return &queries.BookingView{
		ID:               uuid.New(),
		TourSlug:         "boat-tour",
		TourTitle:        "Komani Lake Boat Tour",
		Date:             now.AddDate(0, 0, 7),
		Adults:           2,
		TransferIncluded: true,
		SelectableAddOns: []string{"kayak", "ferry"},
		PaymentMethod:    "payInPerson",
		Status:           "editing",
		Quote:            queries.QuoteView{TotalEUR: &total, Display: "€108"},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// ================================================================================
// TestOpen
// ================================================================================

func (s *BookingHandlerTestSuite) TestOpen() {
	s.Run("opens a session and points at it", func() {
		view := sampleBookingView()
		s.mockCommands.EXPECT().
			Open(gomock.Any(), booking.Seed{}, "").
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, "POST", "/bookings", nil)

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal("boat-tour", resp.TourSlug)
		s.Equal("/api/bookings/"+view.ID.String(), w.Header().Get("Location"))
	})

	s.Run("forwards the deep-link seed", func() {
		view := sampleBookingView()
		guests := 4
		s.mockCommands.EXPECT().
			Open(gomock.Any(), gomock.Cond(func(seed booking.Seed) bool {
				return seed.TourSlug == "shkoder-valbona" && seed.Guests != nil && *seed.Guests == guests
			}), "sq").
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, "POST", "/bookings?tour=shkoder-valbona&guests=4&locale=sq", nil)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)
	})

	s.Run("the 9+ picker sentinel seeds nine guests", func() {
		view := sampleBookingView()
		s.mockCommands.EXPECT().
			Open(gomock.Any(), gomock.Cond(func(seed booking.Seed) bool {
				return seed.Guests != nil && *seed.Guests == 9
			}), "").
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, "POST", "/bookings?guests=9%2B", nil)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("returns the current state", func() {
		view := sampleBookingView()
		s.mockQueries.EXPECT().
			Get(gomock.Any(), view.ID, "").
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, "GET", "/bookings/"+view.ID.String(), nil)

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(2, resp.Adults)
		s.True(resp.TransferIncluded)
		s.Equal([]string{"kayak", "ferry"}, resp.SelectableAddOns)
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, "GET", "/bookings/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("unknown session", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().
			Get(gomock.Any(), id, "").
			Return(nil, queries.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, "GET", "/bookings/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking session not found")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/bookings/" + id.String()

	s.Run("patches the tour", func() {
		view := sampleBookingView()
		s.mockCommands.EXPECT().
			Update(gomock.Any(), id, gomock.Cond(func(p commands.UpdateSelectionParams) bool {
				return p.TourSlug != nil && *p.TourSlug == "local-experience"
			}), "").
			Return(view, nil)

		body := map[string]any{"tour": "local-experience"}
		w := httptest.PerformRequest(s.T(), s.router, "PATCH", url, body)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	s.Run("rejects an unknown payment method at binding", func() {
		body := map[string]any{"paymentMethod": "barter"}
		w := httptest.PerformRequest(s.T(), s.router, "PATCH", url, body)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
		httptest.AssertErrorDetail(s.T(), w, "paymentMethod")
	})

	s.Run("tour switched to an unknown slug", func() {
		s.mockCommands.EXPECT().
			Update(gomock.Any(), id, gomock.Any(), "").
			Return(nil, commands.ErrTourNotFound)

		body := map[string]any{"tour": "no-such-tour"}
		w := httptest.PerformRequest(s.T(), s.router, "PATCH", url, body)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Tour not found")
	})

	s.Run("frozen while a submission is pending", func() {
		s.mockCommands.EXPECT().
			Update(gomock.Any(), id, gomock.Any(), "").
			Return(nil, commands.ErrSubmissionInProgress)

		body := map[string]any{"name": "Arben"}
		w := httptest.PerformRequest(s.T(), s.router, "PATCH", url, body)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Booking is no longer editable")
	})
}

// ================================================================================
// TestAdjustGuests
// ================================================================================

func (s *BookingHandlerTestSuite) TestAdjustGuests() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/guests"

	s.Run("applies a transition", func() {
		view := sampleBookingView()
		s.mockCommands.EXPECT().
			AdjustGuests(gomock.Any(), id, booking.CategoryChildren, booking.Increment, "").
			Return(view, nil)

		body := map[string]any{"category": "children", "direction": "increment"}
		w := httptest.PerformRequest(s.T(), s.router, "POST", url, body)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	s.Run("binding rejects unknown categories", func() {
		body := map[string]any{"category": "infants", "direction": "increment"}
		w := httptest.PerformRequest(s.T(), s.router, "POST", url, body)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
		httptest.AssertErrorDetail(s.T(), w, "category")
	})

	s.Run("the last adult cannot be removed", func() {
		s.mockCommands.EXPECT().
			AdjustGuests(gomock.Any(), id, booking.CategoryAdults, booking.Decrement, "").
			Return(nil, commands.ErrGuestMinimum)

		body := map[string]any{"category": "adults", "direction": "decrement"}
		w := httptest.PerformRequest(s.T(), s.router, "POST", url, body)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "At least 1 adult is required")
	})
}

// ================================================================================
// TestSetAddOn
// ================================================================================

func (s *BookingHandlerTestSuite) TestSetAddOn() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/addons"

	s.Run("toggles an add-on", func() {
		view := sampleBookingView()
		s.mockCommands.EXPECT().
			SetAddOn(gomock.Any(), id, booking.AddOnFerry, true, "").
			Return(view, nil)

		body := map[string]any{"addOn": "ferry", "enabled": true}
		w := httptest.PerformRequest(s.T(), s.router, "POST", url, body)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	s.Run("binding rejects unknown add-ons", func() {
		body := map[string]any{"addOn": "jetski", "enabled": true}
		w := httptest.PerformRequest(s.T(), s.router, "POST", url, body)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("transfer gated on a transfer-included tour", func() {
		s.mockCommands.EXPECT().
			SetAddOn(gomock.Any(), id, booking.AddOnTransfer, true, "").
			Return(nil, commands.ErrAddOnNotSelectable)

		body := map[string]any{"addOn": "transfer", "enabled": true}
		w := httptest.PerformRequest(s.T(), s.router, "POST", url, body)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Add-on is not selectable for this tour")
	})
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *BookingHandlerTestSuite) TestQuote() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/quote"

	s.Run("returns the localized quote", func() {
		lek := int64(11448)
		eur := 108.0
		s.mockQueries.EXPECT().
			Quote(gomock.Any(), id, "sq").
			Return(&queries.QuoteView{TotalEUR: &eur, TotalLek: &lek, Display: "11.448 Lek"}, nil)

		w := httptest.PerformRequest(s.T(), s.router, "GET", url+"?locale=sq", nil)

		var resp resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("11.448 Lek", resp.Display)
		s.Require().NotNil(resp.TotalLek)
		s.Equal(int64(11448), *resp.TotalLek)
	})

	s.Run("unknown session", func() {
		s.mockQueries.EXPECT().
			Quote(gomock.Any(), id, "").
			Return(nil, queries.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, "GET", url, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking session not found")
	})
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *BookingHandlerTestSuite) TestSubmit() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/submit"

	validBody := func() map[string]any {
		return map[string]any{
			"name":  "Arben Hoxha",
			"email": "arben@example.com",
			"phone": "+355691234567",
		}
	}

	s.Run("confirms the booking", func() {
		total := 108.0
		confirmation := &queries.ConfirmationView{
			BookingID: id,
			Title:     "Booking Request Sent!",
			Message:   "Thank you Arben Hoxha!",
			TourSlug:  "boat-tour",
			TourTitle: "Komani Lake Boat Tour",
			Name:      "Arben Hoxha",
			Email:     "arben@example.com",
			Quote:     queries.QuoteView{TotalEUR: &total, Display: "€108"},
		}
		s.mockCommands.EXPECT().
			Submit(gomock.Any(), id, gomock.Cond(func(p commands.SubmitParams) bool {
				return p.Name == "Arben Hoxha" && p.Email == "arben@example.com"
			}), "").
			Return(confirmation, nil)

		w := httptest.PerformRequest(s.T(), s.router, "POST", url, validBody())

		var resp resdto.ConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("Booking Request Sent!", resp.Title)
		s.Nil(resp.Payment)
	})

	s.Run("binding boundary sits at two name characters", func() {
		okBody := testutil.DtoMap(s.T(), validBody(), testutil.Field("name", "Jo"))
		s.mockCommands.EXPECT().
			Submit(gomock.Any(), id, gomock.Any(), "").
			Return(&queries.ConfirmationView{BookingID: id}, nil)
		w := httptest.PerformRequest(s.T(), s.router, "POST", url, okBody)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

		shortBody := testutil.DtoMap(s.T(), validBody(), testutil.Field("name", "J"))
		w = httptest.PerformRequest(s.T(), s.router, "POST", url, shortBody)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
		httptest.AssertErrorDetail(s.T(), w, "name")
	})

	s.Run("every binding violation is reported together", func() {
		body := map[string]any{
			"name":  "A",
			"email": "not-an-email",
			"phone": "123",
		}
		w := httptest.PerformRequest(s.T(), s.router, "POST", url, body)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
		httptest.AssertErrorDetail(s.T(), w, "name")
		httptest.AssertErrorDetail(s.T(), w, "email")
		httptest.AssertErrorDetail(s.T(), w, "phone")
	})

	s.Run("selection-level violations map to 422", func() {
		s.mockCommands.EXPECT().
			Submit(gomock.Any(), id, gomock.Any(), "").
			Return(nil, &commands.ValidationError{Violations: []booking.Violation{
				{Field: "adults", Message: "At least 1 adult is required."},
			}})

		w := httptest.PerformRequest(s.T(), s.router, "POST", url, validBody())
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Booking validation failed")
		httptest.AssertErrorDetail(s.T(), w, "adults")
	})

	s.Run("a duplicate submit conflicts", func() {
		s.mockCommands.EXPECT().
			Submit(gomock.Any(), id, gomock.Any(), "").
			Return(nil, commands.ErrSubmissionInProgress)

		w := httptest.PerformRequest(s.T(), s.router, "POST", url, validBody())
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Booking is no longer editable")
	})
}
