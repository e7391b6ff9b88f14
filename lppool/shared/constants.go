package shared

const (
	MaxBasisPoint = 10_000

	// PriceScale is the fixed-point scale of Price: one point is 1/100 of a unit.
	PriceScale = 100
)
