package api

import (
	"net/http"

	reqdto "loft-booking/internal/handler/dto/request"
	resdto "loft-booking/internal/handler/dto/response"
	"loft-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// StayHandler serves the read-only stay endpoints: availability, pricing and calendar.
type StayHandler struct {
	availability queries.AvailabilityQueries
	pricing      queries.PricingQueries
	calendar     queries.CalendarQueries
}

func NewStayHandler(a queries.AvailabilityQueries, p queries.PricingQueries, cal queries.CalendarQueries) *StayHandler {
	return &StayHandler{availability: a, pricing: p, calendar: cal}
}

// @Summary Check availability
// @Description Check whether a loft can be booked for a stay. Restrictions list every reason it cannot.
// @Tags availability
// @Produce json
// @Param id path string true "Loft ID"
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /lofts/{id}/availability [get]
func (h *StayHandler) Availability(c *gin.Context) {
	loftID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var q reqdto.StayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "checkIn and checkOut are required")
		return
	}

	view, err := h.availability.Check(c.Request.Context(), loftID, q.CheckIn, q.CheckOut)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Calculate pricing
// @Description Price a stay night by night, with cleaning fee, service fee and taxes
// @Tags pricing
// @Produce json
// @Param id path string true "Loft ID"
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.PricingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /lofts/{id}/pricing [get]
func (h *StayHandler) Pricing(c *gin.Context) {
	loftID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var q reqdto.StayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "checkIn and checkOut are required")
		return
	}

	view, err := h.pricing.Calculate(c.Request.Context(), loftID, q.CheckIn, q.CheckOut)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingView(view))
}

// @Summary Availability calendar
// @Description Per-night availability and effective price for a window of at most 90 nights
// @Tags availability
// @Produce json
// @Param id path string true "Loft ID"
// @Param from query string true "First night (YYYY-MM-DD)"
// @Param to query string true "Day after the last night (YYYY-MM-DD)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /lofts/{id}/calendar [get]
func (h *StayHandler) Calendar(c *gin.Context) {
	loftID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var q reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "from and to are required")
		return
	}

	view, err := h.calendar.Get(c.Request.Context(), loftID, q.From, q.To)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarView(view))
}
