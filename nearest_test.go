package kenyaloc

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func lineGazetteer() Gazetteer {
	return Gazetteer{
		{Name: "X", Towns: []Town{
			{Name: "A", Lat: 0, Lon: 0},
			{Name: "B", Lat: 0, Lon: 1},
		}},
		{Name: "Y", Towns: []Town{
			{Name: "C", Lat: 0, Lon: 2},
		}},
	}
}

func TestNearestTown(t *testing.T) {
	idx := BuildIndex(lineGazetteer())

	tests := []struct {
		name     string
		origin   Point
		opts     []NearestOption
		wantTown string
		wantOK   bool
	}{
		{"global", Point{0, 1.9}, nil, "C", true},
		{"on a town", Point{0, 0}, nil, "A", true},
		{"within county", Point{0, 1.9}, []NearestOption{WithinCounty("x")}, "B", true},
		{"within county by display name", Point{0, -5}, []NearestOption{WithinCounty(" Y ")}, "C", true},
		{"unknown county", Point{0, 1.9}, []NearestOption{WithinCounty("Z")}, "", false},
		{"empty county", Point{0, 1.9}, []NearestOption{WithinCounty("")}, "", false},
		{"latitude out of range", Point{91, 0}, nil, "", false},
		{"longitude out of range", Point{0, 181}, nil, "", false},
		{"NaN", Point{math.NaN(), 0}, nil, "", false},
		{"Inf", Point{0, math.Inf(1)}, nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := idx.NearestTown(tt.origin, tt.opts...)
			if ok != tt.wantOK {
				t.Fatalf("NearestTown(%v) ok = %v, want %v", tt.origin, ok, tt.wantOK)
			}
			if n.Town.Name != tt.wantTown {
				t.Errorf("NearestTown(%v) = %q, want %q", tt.origin, n.Town.Name, tt.wantTown)
			}
		})
	}
}

func TestNearestTownDistance(t *testing.T) {
	idx := BuildIndex(lineGazetteer())
	n, ok := idx.NearestTown(Point{0, 1.9})
	if !ok {
		t.Fatal("NearestTown found nothing")
	}
	want := KmBetween(Point{0, 1.9}, Point{0, 2})
	if n.DistanceKm != want {
		t.Errorf("DistanceKm = %v, want %v", n.DistanceKm, want)
	}
	if n.Label() != "C, Y" {
		t.Errorf("Label() = %q, want %q", n.Label(), "C, Y")
	}
}

func TestNearestTownTieKeepsFirst(t *testing.T) {
	idx := BuildIndex(Gazetteer{
		{Name: "First", Towns: []Town{{Name: "Twin One", Lat: 1, Lon: 1}}},
		{Name: "Second", Towns: []Town{{Name: "Twin Two", Lat: 1, Lon: 1}}},
	})
	n, ok := idx.NearestTown(Point{0, 0})
	if !ok || n.Town.Name != "Twin One" {
		t.Errorf("NearestTown tie = %q, %v; want Twin One", n.Town.Name, ok)
	}
}

func TestNearestTownKnownPoints(t *testing.T) {
	idx := Default()
	for _, tc := range knownPoints {
		n, ok := idx.NearestTown(Point{Lat: tc.lat, Lon: tc.lon})
		if !ok || n.Town.Name != tc.wantTown {
			t.Errorf("NearestTown(%v, %v) = %q, want %q", tc.lat, tc.lon, n.Town.Name, tc.wantTown)
		}
	}
}

func TestTownsWithin(t *testing.T) {
	idx := Default()
	cbd := Point{Lat: -1.2864, Lon: 36.8172}

	got := idx.TownsWithin(cbd, 5)
	var names []string
	for _, n := range got {
		names = append(names, n.Town.Name)
	}
	want := []string{"Nairobi CBD", "Westlands", "Kilimani", "Eastleigh", "Kibera"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("TownsWithin(CBD, 5) mismatch (-want +got):\n%s", diff)
	}
	if len(got) > 0 && got[0].DistanceKm != 0 {
		t.Errorf("first result distance = %v, want 0", got[0].DistanceKm)
	}
	for i := 1; i < len(got); i++ {
		if got[i].DistanceKm < got[i-1].DistanceKm {
			t.Errorf("results not sorted by distance at %d: %v < %v", i, got[i].DistanceKm, got[i-1].DistanceKm)
		}
		if got[i].DistanceKm > 5 {
			t.Errorf("%s is %.2f km away, beyond the radius", got[i].Label(), got[i].DistanceKm)
		}
	}
}

func TestTownsWithinMatchesLinearScan(t *testing.T) {
	idx := Default()
	origins := []Point{
		{Lat: -1.2864, Lon: 36.8172},
		{Lat: 0.52, Lon: 35.27},
		{Lat: -4.05, Lon: 39.67},
		{Lat: 3.5, Lon: 35.5},
	}
	for _, origin := range origins {
		for _, radius := range []float64{1, 25, 150, 600} {
			want := 0
			for _, e := range idx.entries {
				if KmBetween(origin, e.ref.Town.Point()) <= radius {
					want++
				}
			}
			if got := len(idx.TownsWithin(origin, radius)); got != want {
				t.Errorf("TownsWithin(%v, %v) = %d towns, linear scan finds %d", origin, radius, got, want)
			}
		}
	}
}

func TestTownsWithinEmpty(t *testing.T) {
	idx := Default()
	cbd := Point{Lat: -1.2864, Lon: 36.8172}

	if got := idx.TownsWithin(cbd, 0); got != nil {
		t.Errorf("TownsWithin(radius 0) = %v, want nil", got)
	}
	if got := idx.TownsWithin(cbd, -1); got != nil {
		t.Errorf("TownsWithin(radius -1) = %v, want nil", got)
	}
	if got := idx.TownsWithin(cbd, math.NaN()); got != nil {
		t.Errorf("TownsWithin(radius NaN) = %v, want nil", got)
	}
	if got := idx.TownsWithin(Point{Lat: 100, Lon: 0}, 10); got != nil {
		t.Errorf("TownsWithin(invalid origin) = %v, want nil", got)
	}
	// Indian Ocean, far from any town.
	if got := idx.TownsWithin(Point{Lat: -10, Lon: 50}, 5); len(got) != 0 {
		t.Errorf("TownsWithin(ocean) = %v, want none", got)
	}
}

func TestKmBetween(t *testing.T) {
	oneDegree := KmBetween(Point{0, 0}, Point{1, 0})
	if math.Abs(oneDegree-111.195) > 0.05 {
		t.Errorf("KmBetween one degree of latitude = %.3f, want ~111.195", oneDegree)
	}

	nbiMsa := KmBetween(Point{-1.2864, 36.8172}, Point{-4.0435, 39.6682})
	if nbiMsa < 435 || nbiMsa > 447 {
		t.Errorf("KmBetween Nairobi-Mombasa = %.1f, want 435-447", nbiMsa)
	}

	if d := KmBetween(Point{1, 1}, Point{1, 1}); d != 0 {
		t.Errorf("KmBetween same point = %v, want 0", d)
	}
}

func TestPointValid(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{-45.5, 120}, true},
		{Point{-90.1, 0}, false},
		{Point{0, 180.5}, false},
		{Point{math.NaN(), 0}, false},
		{Point{0, math.Inf(-1)}, false},
	}
	for _, tt := range tests {
		if got := tt.p.Valid(); got != tt.want {
			t.Errorf("%v.Valid() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func BenchmarkNearestTown(b *testing.B) {
	idx := Default()
	p := Point{Lat: -0.30, Lon: 36.08}
	for i := 0; i < b.N; i++ {
		idx.NearestTown(p)
	}
}

func BenchmarkTownsWithin(b *testing.B) {
	idx := Default()
	p := Point{Lat: -1.2864, Lon: 36.8172}
	for i := 0; i < b.N; i++ {
		idx.TownsWithin(p, 50)
	}
}
