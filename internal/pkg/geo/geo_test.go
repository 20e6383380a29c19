package geo

import (
	"math"
	"testing"
)

func TestHaversineDistanceZero(t *testing.T) {
	d := HaversineDistance(52.5200, 13.4050, 52.5200, 13.4050)
	if d != 0 {
		t.Errorf("distance between identical points = %v, want 0", d)
	}
	if !WithinRadius(52.5200, 13.4050, 52.5200, 13.4050, 0) {
		t.Error("identical points must validate for radius 0")
	}
}

// One degree of latitude is roughly 111,195 m on the reference sphere; the
// computed distance must stay within 1% of that.
func TestHaversineDistanceOneDegreeLatitude(t *testing.T) {
	d := HaversineDistance(50.0, 10.0, 51.0, 10.0)
	const want = 111195.0
	if math.Abs(d-want)/want > 0.01 {
		t.Errorf("one degree latitude distance = %v, want within 1%% of %v", d, want)
	}
	if WithinRadius(50.0, 10.0, 51.0, 10.0, 50) {
		t.Error("points 111 km apart must not validate for a 50 m radius")
	}
}

func TestWithinRadiusNearBoundary(t *testing.T) {
	// ~78 m east of the reference at this latitude.
	refLat, refLon := 52.5200, 13.4050
	candLat, candLon := 52.5200, 13.40615

	if !WithinRadius(candLat, candLon, refLat, refLon, 100) {
		t.Error("point ~78 m away must validate for a 100 m radius")
	}
	if WithinRadius(candLat, candLon, refLat, refLon, 50) {
		t.Error("point ~78 m away must not validate for a 50 m radius")
	}
}

func TestHaversineAntipodal(t *testing.T) {
	d := HaversineDistance(0, 0, 0, 180)
	want := math.Pi * EarthRadiusMeters
	if math.Abs(d-want) > 1 {
		t.Errorf("antipodal distance = %v, want %v", d, want)
	}
}
