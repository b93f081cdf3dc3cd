//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"lanebook/internal/handler/api"
	resdto "lanebook/internal/handler/dto/response"
	"lanebook/internal/pkg/errs"
	"lanebook/internal/usecase/readmodel"
	"lanebook/tests/common/builder"
	"lanebook/tests/common/httptest"
	usecasemock "lanebook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HoldHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockHolds   *usecasemock.MockHoldUseCase
	mockBooking *usecasemock.MockBookingUseCase
	handler     *api.HoldHandler
}

func (s *HoldHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockHolds = usecasemock.NewMockHoldUseCase(s.mockCtrl)
	s.mockBooking = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.handler = api.NewHoldHandler(s.mockHolds, s.mockBooking)

	s.router.POST("/holds", s.handler.CreateHold)
	s.router.DELETE("/holds/:token", s.handler.ReleaseHold)
	s.router.POST("/holds/:token/commit", s.handler.CommitHold)
}

func (s *HoldHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHoldHandlerSuite(t *testing.T) {
	suite.Run(t, new(HoldHandlerTestSuite))
}

func (s *HoldHandlerTestSuite) TestCreateHold() {
	url := "/holds"
	reqBody := builder.NewHoldBuilder().WithNote("birthday party").BuildCreateRequestMap()
	returnRM := builder.NewHoldBuilder().WithNote("birthday party").BuildRM()

	s.Run("success: returns 201 with hold token", func() {
		s.mockHolds.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(returnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnRM.Token, body.Token)
		s.Equal(returnRM.Lanes, body.Lanes)
		s.Equal(returnRM.AmountCents, body.AmountCents)
		s.Equal(returnRM.Note, body.Note)
	})

	s.Run("error: 400 on malformed body", func() {
		bad := map[string]any{"venue_id": "not-a-uuid"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "slot race lost", err: errs.ErrSlotUnavailable, expectCode: http.StatusConflict, expectMsg: "no longer available"},
			{name: "unknown venue", err: errs.ErrVenueNotFound, expectCode: http.StatusNotFound, expectMsg: "Venue not found"},
			{name: "rejected input", err: errs.ErrInvalidInput, expectCode: http.StatusBadRequest, expectMsg: "Invalid hold request"},
			{name: "store failure", err: errs.ErrStoreUnavailable, expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockHolds.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

func (s *HoldHandlerTestSuite) TestReleaseHold() {
	token := uuid.New()

	s.Run("success: returns 204", func() {
		s.mockHolds.EXPECT().Release(gomock.Any(), token).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/holds/"+token.String(), nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for unknown token", func() {
		s.mockHolds.EXPECT().Release(gomock.Any(), token).Return(errs.ErrHoldNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/holds/"+token.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hold not found")
	})

	s.Run("error: 400 for malformed token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/holds/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid hold token")
	})
}

func (s *HoldHandlerTestSuite) TestCommitHold() {
	token := uuid.New()
	url := "/holds/" + token.String() + "/commit"
	reqBody := builder.NewBookingBuilder().BuildCommitRequestMap()

	s.Run("success: returns 201 with one booking per lane", func() {
		rm1 := builder.NewBookingBuilder().WithLane(1).WithHoldToken(token).BuildRM()
		rm2 := builder.NewBookingBuilder().WithLane(2).WithHoldToken(token).BuildRM()
		s.mockBooking.EXPECT().Commit(gomock.Any(), gomock.Any()).
			Return([]*readmodel.BookingRM{rm1, rm2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Len(body, 2)
		s.Equal(token, body[0].GroupToken)
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "unknown hold", err: errs.ErrHoldNotFound, expectCode: http.StatusNotFound, expectMsg: "Hold not found"},
			{name: "expired hold", err: errs.ErrHoldExpired, expectCode: http.StatusGone, expectMsg: "expired"},
			{name: "lanes already taken", err: errs.ErrSlotUnavailable, expectCode: http.StatusConflict, expectMsg: "no longer available"},
			{name: "bad customer details", err: errs.ErrInvalidInput, expectCode: http.StatusUnprocessableEntity, expectMsg: "Invalid customer details"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockBooking.EXPECT().Commit(gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})

	s.Run("error: 400 when customer email missing", func() {
		bad := builder.NewBookingBuilder().BuildCommitRequestMap()
		delete(bad, "customer_email")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
