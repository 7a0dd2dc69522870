package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	assert.Zero(t, DistanceKm(-34.9055, -56.1645, -34.9055, -56.1645))
}

func TestDistanceKm_OneDegreeOfLatitude(t *testing.T) {
	// One degree of latitude is ~111.19 km on a 6371 km sphere.
	d := DistanceKm(-34, -56, -35, -56)
	assert.InDelta(t, 111.19, d, 0.1)
}

func TestDistanceKm_AlongParallel(t *testing.T) {
	// 0.01 degrees of longitude at latitude -34.9055.
	d := DistanceKm(-34.9055, -56.1645, -34.9055, -56.1745)
	assert.InDelta(t, 0.912, d, 0.01)
}

func TestDistanceKm_Symmetry(t *testing.T) {
	a := DistanceKm(-34.9055, -56.1914, -34.9201, -56.1507)
	b := DistanceKm(-34.9201, -56.1507, -34.9055, -56.1914)
	assert.InEpsilon(t, a, b, 1e-12)
}

func TestEstimateTravel(t *testing.T) {
	est := EstimateTravel(4.5)

	assert.Equal(t, 60, est.Walking.Minutes)
	assert.Equal(t, "1h", est.Walking.Label)
	assert.Equal(t, 18, est.Biking.Minutes)
	assert.Equal(t, "18m", est.Biking.Label)
	assert.Equal(t, 11, est.Driving.Minutes)
	assert.Equal(t, "11m", est.Driving.Label)
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{59, "59m"},
		{60, "1h"},
		{65, "1h 5m"},
		{125, "2h 5m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.minutes))
	}
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "500m", FormatDistance(0.5))
	assert.Equal(t, "2.3km", FormatDistance(2.34))
}

func TestNearestZone_InsideBound(t *testing.T) {
	match := NearestZone(-34.905, -56.19) // Avenida 18 de Julio

	assert.Equal(t, "Centro", match.Name)
	assert.False(t, match.Approximate)
	assert.NotEmpty(t, match.Lines)
}

func TestNearestZone_OutsideEveryBound(t *testing.T) {
	match := NearestZone(-34.95, -54.95) // Punta del Este, well outside Montevideo

	assert.True(t, match.Approximate)
	assert.Equal(t, "Carrasco", match.Name)
}
