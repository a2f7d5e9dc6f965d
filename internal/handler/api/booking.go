package api

import (
	"errors"
	"net/http"

	"komani-booking/internal/domain/booking"
	reqdto "komani-booking/internal/handler/dto/request"
	resdto "komani-booking/internal/handler/dto/response"
	"komani-booking/internal/handler/httperr"
	"komani-booking/internal/usecase/commands"
	"komani-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Open booking session
// @Description Open a booking session, optionally seeded from deep-link query parameters
// @Tags bookings
// @Produce json
// @Param tour query string false "Tour slug"
// @Param date query string false "Travel date (ISO)"
// @Param guests query string false "Guest count, 9+ accepted"
// @Param locale query string false "Display locale (en|sq)"
// @Success 201 {object} resdto.BookingResponse
// @Router /bookings [post]
func (h *BookingHandler) Open(c *gin.Context) {
	var req reqdto.OpenBookingRequest
	// Seed values are best-effort; a malformed deep link still opens a
	// session with defaults.
	_ = c.ShouldBindQuery(&req)

	view, err := h.bookingCommands.Open(c.Request.Context(), req.ToSeed(), c.Query("locale"))
	if err != nil {
		h.abortWithMappedError(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking session
// @Description Current selection state with the live quote
// @Tags bookings
// @Produce json
// @Param id path string true "Booking session ID"
// @Param locale query string false "Display locale (en|sq)"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.Get(c.Request.Context(), id, c.Query("locale"))
	if err != nil {
		h.abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking session
// @Description Patch tour, date, payment method or contact fields
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking session ID"
// @Param request body reqdto.UpdateBookingRequest true "Fields to update"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", reqdto.ValidationDetail(err))
		return
	}

	view, err := h.bookingCommands.Update(c.Request.Context(), id, req.ToParams(), c.Query("locale"))
	if err != nil {
		h.abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Adjust guest count
// @Description Apply a single increment/decrement to a guest category
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking session ID"
// @Param request body reqdto.AdjustGuestsRequest true "Adjustment"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/guests [post]
func (h *BookingHandler) AdjustGuests(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req reqdto.AdjustGuestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", reqdto.ValidationDetail(err))
		return
	}

	view, err := h.bookingCommands.AdjustGuests(
		c.Request.Context(),
		id,
		booking.GuestCategory(req.Category),
		booking.Direction(req.Direction),
		c.Query("locale"),
	)
	if err != nil {
		h.abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Toggle add-on
// @Description Enable or disable an add-on, subject to tour eligibility
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking session ID"
// @Param request body reqdto.SetAddOnRequest true "Add-on toggle"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/addons [post]
func (h *BookingHandler) SetAddOn(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req reqdto.SetAddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", reqdto.ValidationDetail(err))
		return
	}

	view, err := h.bookingCommands.SetAddOn(c.Request.Context(), id, booking.AddOn(req.AddOn), req.Enabled, c.Query("locale"))
	if err != nil {
		h.abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get live quote
// @Description Derived total for the current selection, converted for display
// @Tags bookings
// @Produce json
// @Param id path string true "Booking session ID"
// @Param locale query string false "Display locale (en|sq)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/quote [get]
func (h *BookingHandler) Quote(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.Quote(c.Request.Context(), id, c.Query("locale"))
	if err != nil {
		h.abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Submit booking
// @Description Validate the selection and run the submission workflow to confirmation
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking session ID"
// @Param request body reqdto.SubmitBookingRequest true "Contact details"
// @Success 200 {object} resdto.ConfirmationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/submit [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req reqdto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", reqdto.ValidationDetail(err))
		return
	}

	view, err := h.bookingCommands.Submit(c.Request.Context(), id, req.ToParams(), c.Query("locale"))
	if err != nil {
		h.abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfirmationView(view))
}

func (h *BookingHandler) bookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *BookingHandler) abortWithMappedError(c *gin.Context, err error) {
	var vErr *commands.ValidationError
	if errors.As(err, &vErr) {
		detail := make(map[string]string, len(vErr.Violations))
		for _, v := range vErr.Violations {
			detail[v.Field] = v.Message
		}
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking validation failed", detail)
		return
	}

	switch {
	case errors.Is(err, commands.ErrSessionNotFound), errors.Is(err, queries.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking session not found", nil)
	case errors.Is(err, commands.ErrTourNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Tour not found", nil)
	case errors.Is(err, commands.ErrGuestMinimum):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "At least 1 adult is required", nil)
	case errors.Is(err, commands.ErrAddOnNotSelectable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Add-on is not selectable for this tour", nil)
	case errors.Is(err, commands.ErrInvalidAdjustment), errors.Is(err, commands.ErrValidationFailed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	case errors.Is(err, commands.ErrSubmissionInProgress), errors.Is(err, commands.ErrNotEditable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking is no longer editable", nil)
	case errors.Is(err, commands.ErrSubmissionInterrupted):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Submission interrupted", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
