// Package pricing computes the price breakdown for a mowing service.
// The calculation is deterministic and pure; callers validate input
// before asking for a price.
package pricing

import "math"

// ServiceFee is the flat charge added to every total.
const ServiceFee = 3.99

const (
	FrequencyOnce     = "once"
	FrequencyBiweekly = "biweekly"
	FrequencyWeekly   = "weekly"
)

const (
	minBasePrice = 30.0
	ratePerSqft  = 0.02
)

// extraPrices is the flat price table for named add-ons. Names not in
// the table price at zero.
var extraPrices = map[string]float64{
	"edging":       10.0,
	"leaf_cleanup": 20.0,
	"pet_waste":    8.0,
}

// frequencyDiscounts maps service cadence to the discount rate applied
// to the base price. Unknown cadences get no discount.
var frequencyDiscounts = map[string]float64{
	FrequencyOnce:     0.0,
	FrequencyBiweekly: 0.05,
	FrequencyWeekly:   0.10,
}

type Breakdown struct {
	Base        float64
	ExtrasTotal float64
	Discount    float64
	Total       float64
}

// Calculate prices a lawn of the given size at the given cadence with
// the requested extras. Values are raw floats; rounding happens where
// the breakdown is written into a document, not here, so discount and
// extras math does not compound rounding error.
func Calculate(lawnSizeSqft int, frequency string, extras []string) Breakdown {
	base := math.Max(minBasePrice, float64(lawnSizeSqft)*ratePerSqft)

	extrasTotal := 0.0
	for _, extra := range extras {
		extrasTotal += extraPrices[extra]
	}

	discount := base * frequencyDiscounts[frequency]

	return Breakdown{
		Base:        base,
		ExtrasTotal: extrasTotal,
		Discount:    discount,
		Total:       base - discount + extrasTotal + ServiceFee,
	}
}

// Round2 rounds a monetary value to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// KnownExtras lists the add-on names the price table covers.
func KnownExtras() []string {
	names := make([]string, 0, len(extraPrices))
	for name := range extraPrices {
		names = append(names, name)
	}
	return names
}
