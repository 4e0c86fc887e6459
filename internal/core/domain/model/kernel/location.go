package kernel

import (
	"errors"
	"fmt"
	"math"

	"orderhub/internal/pkg/errs"
	"orderhub/internal/pkg/guard"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// ErrLocationIsNotConstructed is returned when validating a zero-value Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location must be created via NewLocation")

// Location is a point reported by a delivery person's device.
type Location struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewLocation validates both coordinates and reports every violation at once.
func NewLocation(lat float64, lng float64) (Location, error) {
	loc := Location{guard: guard.NewConstructorGuard()}

	if err := errors.Join(loc.setLat(lat), loc.setLng(lng)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

func (l Location) Lat() float64 {
	return l.lat
}

func (l Location) Lng() float64 {
	return l.lng
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) IsEqual(other Location) bool {
	return l.lat == other.lat && l.lng == other.lng
}

func (l Location) String() string {
	return fmt.Sprintf("Location(%.6f,%.6f)", l.lat, l.lng)
}

func (l *Location) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}
	l.lat = lat
	return nil
}

func (l *Location) setLng(lng float64) error {
	if math.IsNaN(lng) || lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lng", lng, LongitudeMin, LongitudeMax)
	}
	l.lng = lng
	return nil
}
