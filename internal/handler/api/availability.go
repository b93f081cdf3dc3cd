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
)

type AvailabilityHandler struct {
	availabilityUseCase usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availabilityUseCase usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUseCase: availabilityUseCase,
	}
}

// @Summary Availability grid
// @Description Compute bookable start times for one day. Advisory only; holds are claimed separately.
// @Tags availability
// @Produce json
// @Param venue_id query string true "Venue ID"
// @Param date query string true "Day (YYYY-MM-DD, venue timezone)"
// @Param duration query int true "Session length in minutes"
// @Param lanes query int true "Number of lanes requested"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	rm, err := h.availabilityUseCase.GetGrid(c.Request.Context(), usecase.AvailabilityQuery{
		VenueID:         q.VenueID,
		Date:            q.Date,
		DurationMinutes: q.Duration,
		LanesRequested:  q.Lanes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrVenueNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Venue not found", nil)
		case errors.Is(err, errs.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid availability request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityRM(rm))
}
