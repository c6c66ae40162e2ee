package repository

import (
	"testing"

	"github.com/SAI-RANDIVE-BTECH/MyFuel/internal/model"
)

// Seed coordinates around Delhi; distances from Connaught Place (28.6324,
// 77.2199) range from ~11 km (Delhi Cantt) to ~45 km (Gurgaon).
func delhiStations() []model.Station {
	return []model.Station{
		{ID: 1, Name: "Connaught Place", Latitude: 28.6324, Longitude: 77.2199},
		{ID: 2, Name: "Dwarka", Latitude: 28.5992, Longitude: 77.0188},
		{ID: 3, Name: "Gurgaon", Latitude: 28.4595, Longitude: 77.0266},
		{ID: 4, Name: "Noida", Latitude: 28.5355, Longitude: 77.3910},
		{ID: 5, Name: "Ghaziabad", Latitude: 28.6692, Longitude: 77.4538},
		{ID: 6, Name: "Delhi Cantt", Latitude: 28.6010, Longitude: 77.1278},
	}
}

func TestRankByDistanceSortsAscending(t *testing.T) {
	ranked := rankByDistance(delhiStations(), 28.6324, 77.2199, 100, 10)
	if len(ranked) != 6 {
		t.Fatalf("got %d stations, want all 6 within 100 km", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].DistanceKm < ranked[i-1].DistanceKm {
			t.Fatalf("results not sorted: %v before %v",
				ranked[i-1].DistanceKm, ranked[i].DistanceKm)
		}
	}
	if ranked[0].Station.ID != 1 {
		t.Fatalf("closest station = %q, want Connaught Place itself", ranked[0].Station.Name)
	}
}

func TestRankByDistanceRadiusFilter(t *testing.T) {
	// 20 km radius from Connaught Place keeps CP, Delhi Cantt (~11 km) and
	// Noida (~19.5 km) but drops Dwarka (~20 km), Gurgaon and Ghaziabad.
	ranked := rankByDistance(delhiStations(), 28.6324, 77.2199, 20, 10)
	for _, r := range ranked {
		if r.DistanceKm > 20 {
			t.Fatalf("station %q at %.2f km exceeds the 20 km radius", r.Station.Name, r.DistanceKm)
		}
	}
	if len(ranked) != 3 {
		names := make([]string, 0, len(ranked))
		for _, r := range ranked {
			names = append(names, r.Station.Name)
		}
		t.Fatalf("got %d stations %v, want 3 within 20 km", len(ranked), names)
	}
}

func TestRankByDistanceCap(t *testing.T) {
	ranked := rankByDistance(delhiStations(), 28.6324, 77.2199, 100, 2)
	if len(ranked) != 2 {
		t.Fatalf("got %d stations, want cap of 2", len(ranked))
	}
	// The cap must keep the nearest, not the first scanned.
	if ranked[0].Station.ID != 1 || ranked[1].Station.ID != 6 {
		t.Fatalf("cap kept %d,%d; want the two nearest (1, 6)",
			ranked[0].Station.ID, ranked[1].Station.ID)
	}
}

func TestRankByDistanceEmpty(t *testing.T) {
	if got := rankByDistance(nil, 0, 0, 100, 10); len(got) != 0 {
		t.Fatalf("nil input should rank to empty, got %d", len(got))
	}
}
