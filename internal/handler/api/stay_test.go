//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"loft-booking/internal/handler/api"
	resdto "loft-booking/internal/handler/dto/response"
	"loft-booking/internal/pkg/errs"
	"loft-booking/internal/usecase/queries"
	"loft-booking/internal/usecase/shared"
	"loft-booking/tests/common/httptest"
	queriesmock "loft-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StayHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAvailability *queriesmock.MockAvailabilityQueries
	mockPricing      *queriesmock.MockPricingQueries
	mockCalendar     *queriesmock.MockCalendarQueries
	loftID           uuid.UUID
}

func (s *StayHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockPricing = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.mockCalendar = queriesmock.NewMockCalendarQueries(s.mockCtrl)
	s.loftID = uuid.New()

	h := api.NewStayHandler(s.mockAvailability, s.mockPricing, s.mockCalendar)
	s.router.GET("/lofts/:id/availability", h.Availability)
	s.router.GET("/lofts/:id/pricing", h.Pricing)
	s.router.GET("/lofts/:id/calendar", h.Calendar)
}

func (s *StayHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStayHandlerSuite(t *testing.T) {
	suite.Run(t, new(StayHandlerTestSuite))
}

func (s *StayHandlerTestSuite) url(endpoint, query string) string {
	return "/lofts/" + s.loftID.String() + "/" + endpoint + "?" + query
}

func (s *StayHandlerTestSuite) TestAvailability() {
	s.Run("空きあり: restrictionsは空配列", func() {
		view := &queries.AvailabilityView{LoftID: s.loftID, CheckIn: "2030-06-01", CheckOut: "2030-06-05", Nights: 4, IsAvailable: true}
		s.mockAvailability.EXPECT().Check(gomock.Any(), s.loftID, "2030-06-01", "2030-06-05").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("availability", "checkIn=2030-06-01&checkOut=2030-06-05"), nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{
			"loft_id": "`+s.loftID.String()+`",
			"check_in": "2030-06-01",
			"check_out": "2030-06-05",
			"nights": 4,
			"is_available": true,
			"restrictions": []
		}`, rec.Body.String())
	})

	s.Run("空きなし: 衝突期間を返す", func() {
		in, out := "2030-06-01", "2030-06-05"
		view := &queries.AvailabilityView{
			LoftID: s.loftID, CheckIn: "2030-06-03", CheckOut: "2030-06-07", Nights: 4,
			Restrictions: []queries.RestrictionView{{Kind: "booking_conflict", Message: "overlaps", ConflictCheckIn: &in, ConflictCheckOut: &out}},
		}
		s.mockAvailability.EXPECT().Check(gomock.Any(), s.loftID, "2030-06-03", "2030-06-07").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("availability", "checkIn=2030-06-03&checkOut=2030-06-07"), nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.IsAvailable)
		if diff := cmp.Diff(view.Restrictions, body.Restrictions); diff != "" {
			s.Failf("restrictions mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("400: クエリ欠落はユースケースを呼ばない", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("availability", "checkIn=2030-06-01"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "checkIn and checkOut are required")
	})

	s.Run("400: 不正な期間は詳細付き", func() {
		err := shared.InvalidDateRange(errs.New("check-out must be after check-in"))
		s.mockAvailability.EXPECT().Check(gomock.Any(), s.loftID, "2030-06-05", "2030-06-01").Return(nil, err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("availability", "checkIn=2030-06-05&checkOut=2030-06-01"), nil, "")

		var body struct {
			Detail []string `json:"detail"`
		}
		httptest.DecodeJSON(s.T(), rec, &body)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(body.Detail, "check-out must be after check-in")
	})

	s.Run("404と503", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), s.loftID, gomock.Any(), gomock.Any()).Return(nil, queries.ErrLoftNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("availability", "checkIn=2030-06-01&checkOut=2030-06-05"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Loft not found")

		s.mockAvailability.EXPECT().Check(gomock.Any(), s.loftID, gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection refused"), queries.ErrAvailabilityFetchFailed))
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("availability", "checkIn=2030-06-01&checkOut=2030-06-05"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Availability temporarily unavailable")
	})
}

func (s *StayHandlerTestSuite) TestPricing() {
	s.Run("成功", func() {
		view := &queries.PricingView{
			LoftID: s.loftID, CheckIn: "2030-06-01", CheckOut: "2030-06-04", Nights: 3,
			SubtotalCents: 30000, CleaningFeeCents: 2000, ServiceFeeCents: 3000, TaxesCents: 3500, TotalCents: 38500,
			Currency: "USD",
		}
		s.mockPricing.EXPECT().Calculate(gomock.Any(), s.loftID, "2030-06-01", "2030-06-04").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("pricing", "checkIn=2030-06-01&checkOut=2030-06-04"), nil, "")

		var body resdto.PricingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(38500), body.TotalCents)
		s.NotNil(body.Overrides)
	})

	s.Run("503", func() {
		s.mockPricing.EXPECT().Calculate(gomock.Any(), s.loftID, gomock.Any(), gomock.Any()).Return(nil, queries.ErrPricingFetchFailed)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("pricing", "checkIn=2030-06-01&checkOut=2030-06-04"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Pricing temporarily unavailable")
	})
}

func (s *StayHandlerTestSuite) TestCalendar() {
	s.Run("成功", func() {
		view := &queries.CalendarView{LoftID: s.loftID, From: "2030-06-01", To: "2030-06-03", Currency: "USD", Days: []queries.CalendarDayView{
			{Date: "2030-06-01", Available: true, PriceCents: 10000},
			{Date: "2030-06-02", Available: false, PriceCents: 10000},
		}}
		s.mockCalendar.EXPECT().Get(gomock.Any(), s.loftID, "2030-06-01", "2030-06-03").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("calendar", "from=2030-06-01&to=2030-06-03"), nil, "")

		var body resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Days, 2)
		s.False(body.Days[1].Available)
	})

	s.Run("400: 90日超", func() {
		s.mockCalendar.EXPECT().Get(gomock.Any(), s.loftID, "2030-01-01", "2030-06-01").
			Return(nil, shared.InvalidDateRange(errs.New("calendar window cannot exceed 90 days")))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("calendar", "from=2030-01-01&to=2030-06-01"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})
}
