// Package geo implements the proximity estimator: great-circle distance,
// fixed-speed travel time estimates and Montevideo transit zone lookup.
// Everything here is a pure function over coordinates; callers are expected
// to reject out-of-range inputs upstream.
package geo

import (
	"fmt"
	"math"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// Average urban travel speeds in km/h, calibrated for Montevideo traffic.
const (
	walkingSpeedKmh = 4.5
	bikingSpeedKmh  = 15
	drivingSpeedKmh = 25
)

// DistanceKm returns the great-circle distance in kilometers between two
// coordinates via the haversine formula.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// TravelEstimate holds formatted walking/biking/driving ETAs for a distance.
type TravelEstimate struct {
	Walking ModeEstimate `json:"walking"`
	Biking  ModeEstimate `json:"biking"`
	Driving ModeEstimate `json:"driving"`
}

// ModeEstimate is a single mode-of-travel estimate.
type ModeEstimate struct {
	Minutes int    `json:"minutes"` // ETA rounded to the nearest minute.
	Label   string `json:"label"`   // Formatted as "Nm" or "Hh Mm".
}

// EstimateTravel converts a distance into per-mode ETAs using the fixed
// average speeds above.
func EstimateTravel(distanceKm float64) TravelEstimate {
	return TravelEstimate{
		Walking: newModeEstimate(distanceKm, walkingSpeedKmh),
		Biking:  newModeEstimate(distanceKm, bikingSpeedKmh),
		Driving: newModeEstimate(distanceKm, drivingSpeedKmh),
	}
}

func newModeEstimate(distanceKm, speedKmh float64) ModeEstimate {
	minutes := int(math.Round(distanceKm / speedKmh * 60))

	return ModeEstimate{Minutes: minutes, Label: FormatMinutes(minutes)}
}

// FormatMinutes renders a minute count as "Nm" under an hour, "Hh Mm" above,
// and "Hh" on a whole hour.
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatDistance renders a distance as meters under a kilometer, otherwise
// as kilometers with one decimal.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm", int(math.Round(km*1000)))
	}

	return fmt.Sprintf("%.1fkm", km)
}
