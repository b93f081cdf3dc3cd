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

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockBooking *usecasemock.MockBookingUseCase
	handler     *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockBooking)

	s.router.GET("/bookings", s.handler.ListBookings)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
	s.router.POST("/bookings/:id/cancel", s.handler.CancelBooking)
	s.router.POST("/bookings/:id/payment", s.handler.ConfirmPayment)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	rm := builder.NewBookingBuilder().BuildRM()

	s.Run("success: returns 200 with booking", func() {
		s.mockBooking.EXPECT().Get(gomock.Any(), rm.ID).Return(rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+rm.ID.String(), nil)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(rm.ID, body.ID)
		s.Equal(rm.CustomerEmail, body.CustomerEmail)
	})

	s.Run("error: 404 for unknown booking", func() {
		id := uuid.New()
		s.mockBooking.EXPECT().Get(gomock.Any(), id).Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/nope", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: returns 200 with items", func() {
		items := []*readmodel.BookingListItemRM{
			{ID: uuid.New(), Lane: 1, Status: "confirmed"},
			{ID: uuid.New(), Lane: 2, Status: "pending"},
		}
		s.mockBooking.EXPECT().List(gomock.Any(), gomock.Any()).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=confirmed", nil)

		var body []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("error: 400 on bad status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=archived", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 400 on bad date filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?date_from=05.09.2026", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date filter")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/cancel"

	s.Run("success: returns 204", func() {
		s.mockBooking.EXPECT().Cancel(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 when inside the cutoff window", func() {
		s.mockBooking.EXPECT().Cancel(gomock.Any(), id).Return(errs.ErrCancellationDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Cancellation denied")
	})

	s.Run("error: 404 for unknown booking", func() {
		s.mockBooking.EXPECT().Cancel(gomock.Any(), id).Return(errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestConfirmPayment() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/payment"
	reqBody := map[string]any{"payment_ref": "pay_123"}

	s.Run("success: returns 204", func() {
		s.mockBooking.EXPECT().ConfirmPayment(gomock.Any(), id, "pay_123").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 when payment_ref missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 422 when booking is not pending", func() {
		s.mockBooking.EXPECT().ConfirmPayment(gomock.Any(), id, "pay_123").Return(errs.ErrInvalidInput).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not awaiting payment")
	})
}
