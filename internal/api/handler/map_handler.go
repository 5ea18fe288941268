package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/ports"
)

const mimeGeoJSON = "application/geo+json"

// MapHandler serves rendered maps as GeoJSON.
type MapHandler struct {
	journeys ports.JourneyService
	overview ports.OverviewService
}

func NewMapHandler(journeys ports.JourneyService, overview ports.OverviewService) *MapHandler {
	return &MapHandler{journeys: journeys, overview: overview}
}

// Bear handles GET /v1/bears/:id/map.
//
// @Summary      Render a bear's journey map
// @Tags         maps
// @Produce      application/geo+json
// @Param        id             path    string  true   "Bear id"
// @Param        If-None-Match  header  string  false  "ETag of a previously fetched map"
// @Success      200
// @Success      304
// @Failure      404  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/bears/{id}/map [get]
func (h *MapHandler) Bear(c echo.Context) error {
	scene, err := h.journeys.RenderMap(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return writeScene(c, scene)
}

// Dismiss handles DELETE /v1/bears/:id/map.
//
// @Summary      Release a bear's live map
// @Tags         maps
// @Param        id   path  string  true  "Bear id"
// @Success      204
// @Router       /v1/bears/{id}/map [delete]
func (h *MapHandler) Dismiss(c echo.Context) error {
	h.journeys.DismissMap(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// Overview handles GET /v1/bears/map.
//
// @Summary      Render every bear on one map
// @Tags         maps
// @Produce      application/geo+json
// @Param        If-None-Match  header  string  false  "ETag of a previously fetched map"
// @Success      200
// @Success      304
// @Failure      503  {object}  errorResponse
// @Router       /v1/bears/map [get]
func (h *MapHandler) Overview(c echo.Context) error {
	scene, err := h.overview.RenderOverview(c.Request().Context())
	if err != nil {
		return err
	}
	return writeScene(c, scene)
}

func writeScene(c echo.Context, scene *ports.MapScene) error {
	etag := `"` + scene.Fingerprint + `"`
	header := c.Response().Header()
	header.Set("ETag", etag)
	header.Set("Cache-Control", "no-cache")

	if etagMatches(c.Request().Header.Get("If-None-Match"), etag) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.Blob(http.StatusOK, mimeGeoJSON, scene.GeoJSON)
}

func etagMatches(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
