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

type HoldHandler struct {
	holdUseCase    usecase.HoldUseCase
	bookingUseCase usecase.BookingUseCase
}

func NewHoldHandler(holdUseCase usecase.HoldUseCase, bookingUseCase usecase.BookingUseCase) *HoldHandler {
	return &HoldHandler{
		holdUseCase:    holdUseCase,
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Create hold
// @Description Claim the lowest-numbered free lanes for a window. The hold expires unless committed.
// @Tags holds
// @Accept json
// @Produce json
// @Param request body reqdto.CreateHoldRequest true "Hold request"
// @Success 201 {object} resdto.HoldResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /holds [post]
func (h *HoldHandler) CreateHold(c *gin.Context) {
	var req reqdto.CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.holdUseCase.Create(c.Request.Context(), usecase.CreateHoldCommand{
		VenueID:         req.VenueID,
		Date:            req.Date,
		StartMinute:     req.StartMinute,
		DurationMinutes: req.Duration,
		LanesRequested:  req.Lanes,
		PartySize:       req.PartySize,
		Note:            req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Requested lanes are no longer available", nil)
		case errors.Is(err, errs.ErrVenueNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Venue not found", nil)
		case errors.Is(err, errs.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hold request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHoldRM(rm))
}

// @Summary Release hold
// @Description Drop a hold before it expires, freeing its lanes immediately.
// @Tags holds
// @Produce json
// @Param token path string true "Hold token"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /holds/{token} [delete]
func (h *HoldHandler) ReleaseHold(c *gin.Context) {
	token, err := uuid.Parse(c.Param("token"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hold token", nil)
		return
	}

	if err := h.holdUseCase.Release(c.Request.Context(), token); err != nil {
		switch {
		case errors.Is(err, errs.ErrHoldNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hold not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Commit hold
// @Description Convert a hold into reservations, one per held lane. Committing the same token again returns the same set.
// @Tags holds
// @Accept json
// @Produce json
// @Param token path string true "Hold token"
// @Param request body reqdto.CommitHoldRequest true "Customer details"
// @Success 201 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /holds/{token}/commit [post]
func (h *HoldHandler) CommitHold(c *gin.Context) {
	token, err := uuid.Parse(c.Param("token"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hold token", nil)
		return
	}

	var req reqdto.CommitHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rms, err := h.bookingUseCase.Commit(c.Request.Context(), usecase.CommitHoldCommand{
		HoldToken:     token,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		PaymentMethod: req.PaymentMethod,
		Note:          req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrHoldNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hold not found", nil)
		case errors.Is(err, errs.ErrHoldExpired):
			httperr.AbortWithError(c, http.StatusGone, err, "Hold has expired", nil)
		case errors.Is(err, errs.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Lanes are no longer available", nil)
		case errors.Is(err, errs.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid customer details", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingRMs(rms))
}
