package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
)

// ColorResolver picks the display color of a bear.
type ColorResolver interface {
	ColorFor(b *domain.Bear) string
}

// BearHandler handles HTTP requests for bears and their journeys.
type BearHandler struct {
	bears    ports.BearService
	journeys ports.JourneyService
	overview ports.OverviewService
	colors   ColorResolver
}

func NewBearHandler(bears ports.BearService, journeys ports.JourneyService, overview ports.OverviewService, colors ColorResolver) *BearHandler {
	return &BearHandler{bears: bears, journeys: journeys, overview: overview, colors: colors}
}

// List handles GET /v1/bears.
//
// @Summary      List bears with their latest position
// @Tags         bears
// @Produce      json
// @Success      200  {object}  listBearsResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/bears [get]
func (h *BearHandler) List(c echo.Context) error {
	summaries, err := h.overview.ListBears(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]bearSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		data = append(data, toBearSummaryResponse(s))
	}
	return c.JSON(http.StatusOK, listBearsResponse{Data: data})
}

// Get handles GET /v1/bears/:id.
//
// @Summary      Get a bear's journey
// @Tags         bears
// @Produce      json
// @Param        id   path      string  true  "Bear id"
// @Success      200  {object}  journeyResponse
// @Failure      404  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/bears/{id} [get]
func (h *BearHandler) Get(c echo.Context) error {
	detail, err := h.journeys.GetJourney(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJourneyResponse(detail))
}

// Create handles POST /v1/bears.
//
// @Summary      Register a bear
// @Tags         bears
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBearRequest  true  "Bear details"
// @Success      201   {object}  bearResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/bears [post]
func (h *BearHandler) Create(c echo.Context) error {
	var req createBearRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	bear, err := h.bears.CreateBear(c.Request().Context(), toCreateBearInput(req))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/v1/bears/"+bear.ID)
	return c.JSON(http.StatusCreated, toBearResponse(bear, h.colors.ColorFor(bear)))
}
