package api

import (
	"errors"
	"net/http"

	reqdto "lanebook/internal/handler/dto/request"
	resdto "lanebook/internal/handler/dto/response"
	"lanebook/internal/handler/httperr"
	"lanebook/internal/pkg/errs"
	"lanebook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Get booking
// @Description Get one reservation by ID.
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	rm, err := h.bookingUseCase.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(rm))
}

// @Summary List bookings
// @Description List reservations with optional venue, date range, status and email filters.
// @Tags bookings
// @Produce json
// @Param venue_id query string false "Venue ID"
// @Param date_from query string false "First day (YYYY-MM-DD)"
// @Param date_to query string false "Last day (YYYY-MM-DD)"
// @Param status query string false "Status filter"
// @Param email query string false "Customer email"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	filter, err := q.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date filter", nil)
		return
	}

	items, err := h.bookingUseCase.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	out := make([]*resdto.BookingListResponse, 0, len(items))
	for _, item := range items {
		out = append(out, resdto.FromBookingListItem(item))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Cancel booking
// @Description Cancel the whole reservation group the booking belongs to. Denied inside the cutoff window.
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	if err := h.bookingUseCase.Cancel(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, errs.ErrCancellationDenied):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cancellation denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Confirm payment
// @Description Record a payment confirmation reported by the payment provider.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.ConfirmPaymentRequest true "Payment reference"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/payment [post]
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	var req reqdto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.bookingUseCase.ConfirmPayment(c.Request.Context(), id, req.PaymentRef); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, errs.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking is not awaiting payment", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
