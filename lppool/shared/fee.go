package shared

import (
	"cmp"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Arkko002/liquidity-pool-go/lppool/math"
	"github.com/Arkko002/liquidity-pool-go/u128"
)

// Fee is a fee expressed in basis points, 10_000 being 100%.
//
// A Fee is not validated when constructed; call Check before relying on it.
type Fee struct {
	basisPoints uint32
}

func FeeFromBasisPoints(basisPoints uint32) Fee {
	return Fee{basisPoints: basisPoints}
}

func (f Fee) BasisPoints() uint32 {
	return f.basisPoints
}

func (f Fee) Check() error {
	if f.basisPoints > MaxBasisPoint {
		return fmt.Errorf("%w: %d", ErrBasisPointsOverflow, f.basisPoints)
	}
	return nil
}

// Apply deducts the fee from lamports and returns what is left:
// lamports - floor(lamports * bps / 10_000).
func (f Fee) Apply(lamports uint64) (uint64, error) {
	fee, err := u128.Div64(u128.Mul64(lamports, uint64(f.basisPoints)), MaxBasisPoint)
	if err != nil {
		return 0, fmt.Errorf("%w: fee %s on %d: %w", math.ErrCalculation, f, lamports, err)
	}
	return math.Sub(lamports, fee)
}

// Cmp compares fees by basis points.
func (f Fee) Cmp(other Fee) int {
	return cmp.Compare(f.basisPoints, other.basisPoints)
}

func (f Fee) String() string {
	return decimal.New(int64(f.basisPoints), -2).StringFixed(2) + "%"
}
