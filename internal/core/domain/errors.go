package domain

import (
	"errors"
	"fmt"
)

var ErrBearNotFound = errors.New("bear not found")
var ErrBearExists = errors.New("bear already exists")
var ErrStoreUnavailable = errors.New("store unavailable")

// Geocoding failures.
var (
	ErrGeocodeUnavailable = errors.New("geocoding service unavailable")
	ErrNoMatch            = errors.New("no geocoding match")
)

// Location validation failures.
var (
	ErrNoCandidate     = errors.New("no candidate location")
	ErrWrongPlaceKind  = errors.New("location is not a city")
	ErrLowConfidence   = errors.New("location match confidence too low")
	ErrCountryMismatch = errors.New("location is not in the entered country")
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrForbidden = errors.New("access forbidden")

// RejectionError is returned when a geocode candidate fails a location check.
type RejectionError struct {
	Check  string
	Reason string
	Err    error
}

func (e *RejectionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %v", e.Check, e.Err)
	}
	return fmt.Sprintf("%s: %v (%s)", e.Check, e.Err, e.Reason)
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}

// IsRejection reports whether err means the submitted place could not be
// accepted, as opposed to an infrastructure failure.
func IsRejection(err error) bool {
	var re *RejectionError
	return errors.As(err, &re) || errors.Is(err, ErrNoMatch)
}

// ErrInvalidPlace is returned when a submission leaves city or country blank.
var ErrInvalidPlace = errors.New("city and country are required")

// ErrInvalidBear is returned when a bear is registered without a name or
// with unusable origin coordinates.
var ErrInvalidBear = errors.New("bear needs a name and a valid origin")
