package api

import (
	"net/http"

	reqdto "loft-booking/internal/handler/dto/request"
	resdto "loft-booking/internal/handler/dto/response"
	"loft-booking/internal/handler/middleware"
	"loft-booking/internal/usecase/commands"
	"loft-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LoftHandler struct {
	lofts queries.LoftQueries
	rates commands.SeasonalRateCommands
}

func NewLoftHandler(lofts queries.LoftQueries, rates commands.SeasonalRateCommands) *LoftHandler {
	return &LoftHandler{lofts: lofts, rates: rates}
}

// @Summary Get loft
// @Description Get a loft with its rates and stay rules
// @Tags lofts
// @Produce json
// @Param id path string true "Loft ID"
// @Success 200 {object} resdto.LoftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lofts/{id} [get]
func (h *LoftHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.lofts.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoftView(view))
}

// @Summary List seasonal rates
// @Description List the seasonal rate overrides of a loft ordered by check-in
// @Tags seasonal-rates
// @Produce json
// @Param id path string true "Loft ID"
// @Success 200 {array} resdto.SeasonalRateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lofts/{id}/seasonal-rates [get]
func (h *LoftHandler) ListSeasonalRates(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	views, err := h.lofts.ListSeasonalRates(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSeasonalRateViews(views))
}

// @Summary Create seasonal rate
// @Description Add a nightly price override for a date range. Ranges of one loft cannot overlap.
// @Tags seasonal-rates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loft ID"
// @Param request body reqdto.CreateSeasonalRateRequest true "Seasonal rate"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /lofts/{id}/seasonal-rates [post]
func (h *LoftHandler) CreateSeasonalRate(c *gin.Context) {
	loftID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.CreateSeasonalRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	rateID, err := h.rates.CreateSeasonalRate(c.Request.Context(), loftID, req.ToCommand(), actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/lofts/"+loftID.String()+"/seasonal-rates/"+rateID.String())
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: rateID.String()})
}

// @Summary Delete seasonal rate
// @Tags seasonal-rates
// @Security BearerAuth
// @Param id path string true "Loft ID"
// @Param rateId path string true "Seasonal rate ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lofts/{id}/seasonal-rates/{rateId} [delete]
func (h *LoftHandler) DeleteSeasonalRate(c *gin.Context) {
	loftID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	rateID, ok := parseUUIDParam(c, "rateId")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	if err := h.rates.DeleteSeasonalRate(c.Request.Context(), loftID, rateID, actor); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortBadRequest(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
