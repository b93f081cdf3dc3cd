//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"lanebook/internal/handler/api"
	resdto "lanebook/internal/handler/dto/response"
	"lanebook/internal/pkg/errs"
	"lanebook/internal/usecase/readmodel"
	"lanebook/tests/common/httptest"
	usecasemock "lanebook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAvailability *usecasemock.MockAvailabilityUseCase
	handler          *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvailability = usecasemock.NewMockAvailabilityUseCase(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockAvailability)

	s.router.GET("/availability", s.handler.GetAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailability() {
	venueID := uuid.New()
	url := fmt.Sprintf("/availability?venue_id=%s&date=2026-09-05&duration=60&lanes=2", venueID)

	s.Run("success: returns 200 with slots", func() {
		rm := &readmodel.AvailabilityRM{
			VenueID:         venueID,
			Date:            "2026-09-05",
			DurationMinutes: 60,
			LanesRequested:  2,
			OpenMinute:      13 * 60,
			CloseMinute:     22 * 60,
			Slots: []readmodel.SlotRM{
				{StartMinute: 13 * 60, EndMinute: 14 * 60, Lanes: []int{1, 2}, EstimatedAmountCents: 3600},
			},
		}
		s.mockAvailability.EXPECT().GetGrid(gomock.Any(), gomock.Any()).Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(venueID, body.VenueID)
		s.Len(body.Slots, 1)
		s.Equal([]int{1, 2}, body.Slots[0].Lanes)
	})

	s.Run("error: 400 when required parameters missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2026-09-05", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "unknown venue", err: errs.ErrVenueNotFound, expectCode: http.StatusNotFound, expectMsg: "Venue not found"},
			{name: "rejected request", err: errs.ErrInvalidInput, expectCode: http.StatusBadRequest, expectMsg: "Invalid availability request"},
			{name: "store failure", err: errs.ErrStoreUnavailable, expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockAvailability.EXPECT().GetGrid(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}
