package geo

import (
	"math"
	"testing"
)

func TestDistanceKmZero(t *testing.T) {
	if d := DistanceKm(28.63, 77.22, 28.63, 77.22); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}
}

func TestDistanceKmKnownPairs(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		wantKm                 float64
		tolKm                  float64
	}{
		// Connaught Place -> Dwarka Sector 10 (seed coordinates), ~20 km.
		{"delhi-dwarka", 28.6324, 77.2199, 28.5992, 77.0188, 20.0, 1.0},
		// One degree of latitude along a meridian is ~111.19 km.
		{"one-degree-lat", 0, 0, 1, 0, 111.19, 0.1},
		// Paris -> London, ~343 km.
		{"paris-london", 48.8566, 2.3522, 51.5074, -0.1278, 343.5, 2.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DistanceKm(tc.lat1, tc.lng1, tc.lat2, tc.lng2)
			if math.Abs(got-tc.wantKm) > tc.tolKm {
				t.Fatalf("DistanceKm = %v, want %v ± %v", got, tc.wantKm, tc.tolKm)
			}
		})
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := DistanceKm(28.63, 77.22, 28.5992, 77.0188)
	b := DistanceKm(28.5992, 77.0188, 28.63, 77.22)
	if a != b {
		t.Fatalf("distance not symmetric: %v vs %v", a, b)
	}
}

func TestBoundingBoxEnclosesRadius(t *testing.T) {
	lat, lng, radius := 28.63, 77.22, 100.0
	minLat, maxLat, minLng, maxLng := BoundingBox(lat, lng, radius)

	// Points on the cardinal edges of the circle must fall inside the box.
	north := lat + radius/EarthRadiusKm*180/math.Pi
	if north > maxLat {
		t.Fatalf("north edge %v outside box max lat %v", north, maxLat)
	}
	if minLat >= lat || maxLat <= lat || minLng >= lng || maxLng <= lng {
		t.Fatalf("center not strictly inside box: [%v,%v]x[%v,%v]", minLat, maxLat, minLng, maxLng)
	}
}

func TestBoundingBoxNearPole(t *testing.T) {
	_, _, minLng, maxLng := BoundingBox(89.9999, 10, 100)
	if minLng != -180 || maxLng != 180 {
		t.Fatalf("polar box should span all longitudes, got [%v,%v]", minLng, maxLng)
	}
}
