package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// Messages shown to the person who submitted a place.
const (
	msgNoMatch         = "Could not find that location. Check city and country."
	msgWrongPlaceKind  = "That looks like a landmark or region, not a city. Enter the nearest city."
	msgLowConfidence   = "We are not sure which place you meant. Check the spelling of the city and country."
	msgCountryMismatch = "That city is not in the country you entered. Check city and country."
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps known domain
// errors to their HTTP status codes, logs unexpected errors without leaking
// details to the client and renders the {"error": "<message>"} envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			log.Debug().Err(he.Internal).Str("path", c.Path()).Msg("request rejected")
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrBearNotFound):
		return http.StatusNotFound, "bear not found"
	case errors.Is(err, domain.ErrNoMatch), errors.Is(err, domain.ErrNoCandidate):
		return http.StatusUnprocessableEntity, msgNoMatch
	case errors.Is(err, domain.ErrWrongPlaceKind):
		return http.StatusUnprocessableEntity, msgWrongPlaceKind
	case errors.Is(err, domain.ErrLowConfidence):
		return http.StatusUnprocessableEntity, msgLowConfidence
	case errors.Is(err, domain.ErrCountryMismatch):
		return http.StatusUnprocessableEntity, msgCountryMismatch
	case errors.Is(err, domain.ErrInvalidPlace), errors.Is(err, domain.ErrInvalidBear):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrGeocodeUnavailable):
		log.Warn().Err(err).Str("path", c.Path()).Msg("geocoder unavailable")
		return http.StatusBadGateway, "location lookup is unavailable, try again later"
	case errors.Is(err, domain.ErrStoreUnavailable):
		log.Error().Err(err).Str("path", c.Path()).Msg("store unavailable")
		return http.StatusServiceUnavailable, "service temporarily unavailable"
	case errors.Is(err, domain.ErrBearExists):
		return http.StatusConflict, "bear already exists"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
