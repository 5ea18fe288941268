package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
)

// SightingHandler handles sighting submission and listing.
type SightingHandler struct {
	service ports.SightingService
}

func NewSightingHandler(service ports.SightingService) *SightingHandler {
	return &SightingHandler{service: service}
}

// List handles GET /v1/bears/:id/sightings.
//
// @Summary      List a bear's sightings, newest first
// @Tags         sightings
// @Produce      json
// @Param        id   path      string  true  "Bear id"
// @Success      200  {object}  listSightingsResponse
// @Failure      404  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/bears/{id}/sightings [get]
func (h *SightingHandler) List(c echo.Context) error {
	sightings, err := h.service.List(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listSightingsResponse{Data: toSightingResponses(sightings)})
}

// Submit handles POST /v1/bears/:id/sightings.
//
// @Summary      Report where a bear was seen
// @Description  The city and country are geocoded; the sighting is stored only when
// @Description  the best match is a city in the entered country.
// @Tags         sightings
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Bear id"
// @Param        body  body      submitSightingRequest  true  "Where the bear was seen"
// @Success      201   {object}  sightingResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/bears/{id}/sightings [post]
func (h *SightingHandler) Submit(c echo.Context) error {
	var req submitSightingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sighting, err := h.service.Submit(c.Request().Context(), ports.SubmitSightingInput{
		BearID:  c.Param("id"),
		City:    req.City,
		Country: req.Country,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toSightingResponse(*sighting))
}
