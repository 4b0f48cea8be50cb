package tax

import "math"

// Band is one progressive rate band. Ceiling is the cumulative upper bound of
// the taxable amount the band covers; the final band uses math.Inf(1) and is
// unbounded. Bands are supplied in ascending ceiling order.
type Band struct {
	Name    string
	Ceiling float64
	Rate    float64
}

// BandAmount is the portion of an amount that fell into one band and the tax
// it attracted.
type BandAmount struct {
	Name    string
	Taxable float64
	Tax     float64
	Rate    float64
}

// DistributeAcrossBands spreads a non-negative amount left-to-right across the
// bands: each band taxes min(remaining, band width) at its rate and consumes
// that slice. Every tax type routes its banding through here so boundary
// behaviour is identical everywhere.
func DistributeAcrossBands(amount float64, bands []Band) ([]BandAmount, float64) {
	out := make([]BandAmount, len(bands))
	remaining := math.Max(0, amount)
	floor := 0.0
	var total float64

	for i, b := range bands {
		width := b.Ceiling - floor
		slice := math.Min(remaining, width)
		if slice < 0 {
			// A band whose ceiling sits at or below the previous one has zero
			// width; it taxes nothing.
			slice = 0
		}
		out[i] = BandAmount{Name: b.Name, Taxable: slice, Tax: slice * b.Rate, Rate: b.Rate}
		total += slice * b.Rate
		remaining -= slice
		if b.Ceiling > floor {
			floor = b.Ceiling
		}
	}

	return out, total
}

// Band names shared by the three-band tax types.
const (
	bandBasic      = "basic"
	bandHigher     = "higher"
	bandAdditional = "additional"
)
