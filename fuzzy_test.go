package kenyaloc

import (
	"testing"
)

func TestTypoTier(t *testing.T) {
	idx := BuildIndex(tierGazetteer(), WithTypoTolerance(1))

	tests := []struct {
		query    string
		wantTown string
	}{
		{"Hiltop", "Hilltop"},    // Missing 'l' (distance 1)
		{"Lakevew", "Lakeview"},  // Missing 'i' (distance 1)
		{"Seatowm", "Seatown"},   // Substitution (distance 1)
		{"rdge", "Hilltop"},      // Alias with missing 'i'
		{"Portsidde", "Portside"}, // Extra 'd'
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			m, ok := idx.BestMatchTown(tt.query)
			if !ok {
				t.Fatalf("BestMatchTown(%q, typo=1) found nothing, want %q", tt.query, tt.wantTown)
			}
			if m.Town.Name != tt.wantTown {
				t.Errorf("BestMatchTown(%q, typo=1) = %q, want %q", tt.query, m.Town.Name, tt.wantTown)
			}
			if m.Score != ScoreTypo {
				t.Errorf("BestMatchTown(%q, typo=1) score = %d, want %d", tt.query, m.Score, ScoreTypo)
			}
		})
	}
}

func TestTypoTierDisabledByDefault(t *testing.T) {
	idx := BuildIndex(tierGazetteer())
	if m, ok := idx.BestMatchTown("Hiltop"); ok {
		t.Errorf("BestMatchTown(%q) = %q without typo tolerance, want no match", "Hiltop", m.Town.Name)
	}
}

func TestTypoTierDistance(t *testing.T) {
	one := BuildIndex(tierGazetteer(), WithTypoTolerance(1))
	two := BuildIndex(tierGazetteer(), WithTypoTolerance(2))

	const query = "Hiltp" // missing 'l' and 'o'
	if _, ok := one.BestMatchTown(query); ok {
		t.Errorf("BestMatchTown(%q, typo=1) matched, want no match", query)
	}
	m, ok := two.BestMatchTown(query)
	if !ok || m.Town.Name != "Hilltop" {
		t.Errorf("BestMatchTown(%q, typo=2) = %q, %v; want Hilltop", query, m.Town.Name, ok)
	}
}

func TestTypoTierShortQuery(t *testing.T) {
	idx := BuildIndex(tierGazetteer(), WithTypoTolerance(2))
	if m, ok := idx.BestMatchTown("xq"); ok {
		t.Errorf("BestMatchTown(%q) = %q, want no match for queries under %d runes", "xq", m.Town.Name, minTypoQueryLen)
	}
}

func TestTypoToleranceClamped(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{2, 2},
		{9, maxTypoDistance},
	}
	for _, tt := range tests {
		idx := BuildIndex(tierGazetteer(), WithTypoTolerance(tt.in))
		if idx.config.TypoDistance != tt.want {
			t.Errorf("WithTypoTolerance(%d) = %d, want %d", tt.in, idx.config.TypoDistance, tt.want)
		}
	}
}

func TestWithinEditDistance(t *testing.T) {
	tests := []struct {
		a, b    string
		maxDist int
		want    bool
	}{
		// Exact matches (distance 0)
		{"lodwar", "lodwar", 0, true},
		{"lodwr", "lodwar", 0, false},

		// Distance 1
		{"lodwr", "lodwar", 1, true},   // Missing 'a'
		{"ksumu", "kisumu", 1, true},   // Missing 'i'
		{"nakurru", "nakuru", 1, true}, // Extra 'r'
		{"nakiru", "nakuru", 1, true},  // Substitution

		// Distance 2
		{"nkru", "nakuru", 2, true},
		{"nkru", "nakuru", 1, false},
		{"nakruu", "nakuru", 2, true}, // Transposition counts as two edits

		// Length gap alone rules it out
		{"el", "eldoret", 2, false},
		{"voi", "wundanyi", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			got := withinEditDistance(tt.a, tt.b, tt.maxDist)
			if got != tt.want {
				t.Errorf("withinEditDistance(%q, %q, %d) = %v, want %v", tt.a, tt.b, tt.maxDist, got, tt.want)
			}
		})
	}
}

func BenchmarkBestMatchTown(b *testing.B) {
	idx := Default()
	typo := BuildIndex(Kenya(), WithTypoTolerance(1))

	b.Run("Exact", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			idx.BestMatchTown("Westlands, Nairobi")
		}
	})

	b.Run("Prefix", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			idx.BestMatchTown("Kisum")
		}
	})

	b.Run("Typo", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			typo.BestMatchTown("Naivsha")
		}
	})
}
