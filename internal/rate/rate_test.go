package rate

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func mustCompute(t *testing.T, w, d float64, c, g string) float64 {
	t.Helper()
	q, err := Compute(w, d, c, g)
	if err != nil {
		t.Fatalf("Compute(%v, %v, %q, %q): %v", w, d, c, g, err)
	}
	return q.Amount
}

func TestCompute_SmallGeneral(t *testing.T) {
	q, err := Compute(1000, 100, "20ft", "general")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 0.5 * 1t * 100km * 1 * 1
	if q.Amount != 50 {
		t.Fatalf("unexpected amount: %v", q.Amount)
	}
	if q.Currency != "USD" || q.ContainerSize != ContainerSmall || q.GoodsType != GoodsGeneral {
		t.Fatalf("unexpected quote: %+v", q)
	}
	if got := q.Display(); got != "Estimated Sea Freight Rate: $50.00" {
		t.Fatalf("unexpected display: %q", got)
	}
}

func TestCompute_LargeHazardous(t *testing.T) {
	q, err := Compute(2000, 500, "40ft", "hazardous")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 0.5 * 2t * 500km * 1.5 * 2
	if q.Amount != 1500 {
		t.Fatalf("unexpected amount: %v", q.Amount)
	}
	if got := q.Display(); got != "Estimated Sea Freight Rate: $1500.00" {
		t.Fatalf("unexpected display: %q", got)
	}
}

func TestCompute_NormalizesCase(t *testing.T) {
	q, err := Compute(1000, 100, "  40FT ", "Perishable\t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ContainerSize != ContainerLarge || q.GoodsType != GoodsPerishable {
		t.Fatalf("unexpected normalization: %+v", q)
	}
	if !almostEqual(q.Amount, 112.5) {
		t.Fatalf("unexpected amount: %v", q.Amount)
	}
}

func TestCompute_InvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		w, d  float64
		c, g  string
		field string
	}{
		{"zero weight", 0, 100, "20ft", "general", "weight_kg"},
		{"negative weight", -5, 100, "20ft", "general", "weight_kg"},
		{"zero distance", 1000, 0, "20ft", "general", "distance_km"},
		{"negative distance", 1000, -1, "40ft", "general", "distance_km"},
		{"nan weight", math.NaN(), 100, "20ft", "general", "weight_kg"},
		{"infinite distance", 1000, math.Inf(1), "20ft", "general", "distance_km"},
		{"unknown container", 1000, 100, "30ft", "general", "container_size"},
		{"empty container", 1000, 100, "", "general", "container_size"},
		{"unknown goods", 1000, 100, "20ft", "toxic", "goods_type"},
		{"empty goods", 1000, 100, "40ft", " ", "goods_type"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := Compute(tc.w, tc.d, tc.c, tc.g)
			if err == nil {
				t.Fatalf("expected error, got quote %+v", q)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			var ie *InvalidInputError
			if !errors.As(err, &ie) {
				t.Fatalf("expected *InvalidInputError, got %T", err)
			}
			if ie.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, ie.Field)
			}
			if q != (Quote{}) {
				t.Fatalf("expected zero quote on error, got %+v", q)
			}
		})
	}
}

func TestCompute_OverflowRejected(t *testing.T) {
	q, err := Compute(1e200, 1e200, "40ft", "hazardous")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got quote %+v, err %v", q, err)
	}
	var ie *InvalidInputError
	if !errors.As(err, &ie) || ie.Field != "weight_kg" || ie.Reason != "weight and distance are too large" {
		t.Fatalf("unexpected error: %#v", err)
	}
	if q != (Quote{}) {
		t.Fatalf("expected zero quote on error, got %+v", q)
	}
	// largest finite product still succeeds
	q, err = Compute(math.MaxFloat64, 1, "20ft", "general")
	if err != nil || math.IsInf(q.Amount, 0) {
		t.Fatalf("unexpected result: %+v, %v", q, err)
	}
	if q.Display() == "" {
		t.Fatalf("expected a display string")
	}
}

func TestCompute_ValidationOrder(t *testing.T) {
	// every field is wrong; weight/distance are reported first
	_, err := Compute(0, 0, "30ft", "toxic")
	if err == nil || err.Error() != "weight and distance must be positive numbers" {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = Compute(1, 1, "30ft", "toxic")
	if err == nil || err.Error() != "container size must be '20ft' or '40ft'" {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = Compute(1, 1, "20ft", "toxic")
	if err == nil || err.Error() != "goods type must be 'general', 'hazardous', or 'perishable'" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCompute_ContainerRatio(t *testing.T) {
	for _, g := range GoodsTypes() {
		for _, in := range [][2]float64{{1, 1}, {750, 12.5}, {1234.5, 9876}, {25000, 18000}} {
			small := mustCompute(t, in[0], in[1], string(ContainerSmall), string(g))
			large := mustCompute(t, in[0], in[1], string(ContainerLarge), string(g))
			if !almostEqual(large, 1.5*small) {
				t.Fatalf("%s %v: large=%v small=%v", g, in, large, small)
			}
		}
	}
}

func TestCompute_GoodsRatio(t *testing.T) {
	for _, c := range ContainerSizes() {
		for _, in := range [][2]float64{{1, 1}, {750, 12.5}, {1234.5, 9876}, {25000, 18000}} {
			general := mustCompute(t, in[0], in[1], string(c), "general")
			hazardous := mustCompute(t, in[0], in[1], string(c), "hazardous")
			perishable := mustCompute(t, in[0], in[1], string(c), "perishable")
			if !almostEqual(hazardous, 2*general) {
				t.Fatalf("%s %v: hazardous=%v general=%v", c, in, hazardous, general)
			}
			if !almostEqual(perishable, 1.5*general) {
				t.Fatalf("%s %v: perishable=%v general=%v", c, in, perishable, general)
			}
		}
	}
}

func TestCompute_Monotonic(t *testing.T) {
	values := []float64{0.001, 0.5, 1, 10, 999.99, 1000, 1000.01, 1e6}
	for _, c := range ContainerSizes() {
		for _, g := range GoodsTypes() {
			for i := 1; i < len(values); i++ {
				lo, hi := values[i-1], values[i]
				if mustCompute(t, hi, 100, string(c), string(g)) < mustCompute(t, lo, 100, string(c), string(g)) {
					t.Fatalf("not monotonic in weight at %v -> %v", lo, hi)
				}
				if mustCompute(t, 100, hi, string(c), string(g)) < mustCompute(t, 100, lo, string(c), string(g)) {
					t.Fatalf("not monotonic in distance at %v -> %v", lo, hi)
				}
			}
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	first := mustCompute(t, 1234.567, 8901.23, "40ft", "perishable")
	for i := 0; i < 100; i++ {
		if got := mustCompute(t, 1234.567, 8901.23, "40ft", "perishable"); math.Float64bits(got) != math.Float64bits(first) {
			t.Fatalf("call %d returned %v, want %v", i, got, first)
		}
	}
}

func TestSeaFreightEstimatorByName(t *testing.T) {
	for _, name := range []string{"", "sea", " SEA-FREIGHT "} {
		est, err := NewByName(name)
		if err != nil {
			t.Fatalf("NewByName(%q): %v", name, err)
		}
		if _, ok := est.(*SeaFreight); !ok {
			t.Fatalf("expected *SeaFreight from NewByName(%q)", name)
		}
		q, err := est.Estimate(Request{WeightKg: 1000, DistanceKm: 100, ContainerSize: "20ft", GoodsType: "general"})
		if err != nil || q.Amount != 50 {
			t.Fatalf("unexpected estimate: %+v, %v", q, err)
		}
	}
}

func TestNewByName_Unknown(t *testing.T) {
	if _, err := NewByName("air"); !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
}

func TestFactors(t *testing.T) {
	if ContainerSmall.Factor() != 1.0 || ContainerLarge.Factor() != 1.5 || ContainerSize("30ft").Factor() != 0 {
		t.Fatalf("unexpected container factors")
	}
	if GoodsGeneral.Factor() != 1.0 || GoodsPerishable.Factor() != 1.5 || GoodsHazardous.Factor() != 2.0 || GoodsType("toxic").Factor() != 0 {
		t.Fatalf("unexpected goods factors")
	}
}
