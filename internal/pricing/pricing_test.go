package pricing

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestCalculate_BasePriceFloor(t *testing.T) {
	for _, sqft := range []int{100, 500, 1000, 1499, 1500} {
		b := Calculate(sqft, FrequencyOnce, nil)
		if !almostEqual(b.Base, 30.0) {
			t.Errorf("sqft=%d: expected base 30.0, got %v", sqft, b.Base)
		}
	}
}

func TestCalculate_BasePriceAboveFloor(t *testing.T) {
	b := Calculate(5000, FrequencyOnce, nil)
	if !almostEqual(b.Base, 100.0) {
		t.Errorf("expected base 100.0, got %v", b.Base)
	}
}

func TestCalculate_WeeklyWithEdging(t *testing.T) {
	b := Calculate(5000, FrequencyWeekly, []string{"edging"})

	if !almostEqual(b.Base, 100.0) {
		t.Errorf("expected base 100.0, got %v", b.Base)
	}
	if !almostEqual(b.Discount, 10.0) {
		t.Errorf("expected discount 10.0, got %v", b.Discount)
	}
	if !almostEqual(b.ExtrasTotal, 10.0) {
		t.Errorf("expected extras total 10.0, got %v", b.ExtrasTotal)
	}
	if !almostEqual(b.Total, 103.99) {
		t.Errorf("expected total 103.99, got %v", b.Total)
	}
}

func TestCalculate_OnceNeverDiscounted(t *testing.T) {
	for _, sqft := range []int{100, 1500, 5000, 100000} {
		b := Calculate(sqft, FrequencyOnce, nil)
		if !almostEqual(b.Discount, 0.0) {
			t.Errorf("sqft=%d: expected zero discount, got %v", sqft, b.Discount)
		}
	}
}

func TestCalculate_DiscountRates(t *testing.T) {
	tests := []struct {
		frequency    string
		wantDiscount float64
	}{
		{FrequencyOnce, 0.0},
		{FrequencyBiweekly, 5.0},
		{FrequencyWeekly, 10.0},
		{"monthly", 0.0}, // unrecognized cadence gets no discount
	}

	for _, tt := range tests {
		t.Run(tt.frequency, func(t *testing.T) {
			b := Calculate(5000, tt.frequency, nil)
			if !almostEqual(b.Discount, tt.wantDiscount) {
				t.Errorf("expected discount %v, got %v", tt.wantDiscount, b.Discount)
			}
		})
	}
}

func TestCalculate_UnknownExtrasPriceAtZero(t *testing.T) {
	b := Calculate(5000, FrequencyOnce, []string{"gold_plating", "edging", "unicorns"})
	if !almostEqual(b.ExtrasTotal, 10.0) {
		t.Errorf("expected extras total 10.0, got %v", b.ExtrasTotal)
	}
}

func TestCalculate_AllExtras(t *testing.T) {
	b := Calculate(1000, FrequencyOnce, []string{"edging", "leaf_cleanup", "pet_waste"})
	if !almostEqual(b.ExtrasTotal, 38.0) {
		t.Errorf("expected extras total 38.0, got %v", b.ExtrasTotal)
	}
	if !almostEqual(b.Total, 30.0+38.0+ServiceFee) {
		t.Errorf("expected total %v, got %v", 30.0+38.0+ServiceFee, b.Total)
	}
}

func TestCalculate_TotalInvariant(t *testing.T) {
	tests := []struct {
		name      string
		sqft      int
		frequency string
		extras    []string
	}{
		{"minimum lawn once", 100, FrequencyOnce, nil},
		{"large lawn weekly", 100000, FrequencyWeekly, []string{"pet_waste"}},
		{"biweekly with all extras", 7500, FrequencyBiweekly, []string{"edging", "leaf_cleanup", "pet_waste"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Calculate(tt.sqft, tt.frequency, tt.extras)
			want := b.Base - b.Discount + b.ExtrasTotal + ServiceFee
			if !almostEqual(b.Total, want) {
				t.Errorf("total invariant broken: got %v, want %v", b.Total, want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{103.98999999999998, 103.99},
		{30.0, 30.0},
		{28.505, 28.51},
		{0.004, 0.0},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); !almostEqual(got, tt.want) {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKnownExtras(t *testing.T) {
	known := KnownExtras()
	if len(known) != 3 {
		t.Fatalf("expected 3 known extras, got %d: %v", len(known), known)
	}
}
