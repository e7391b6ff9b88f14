package u128

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"

	binary "github.com/gagliardetto/binary"
)

var (
	ErrOverflow       = errors.New("value overflows uint64")
	ErrDivisionByZero = errors.New("division by zero")
)

type Uint128 binary.Uint128

func (u *Uint128) Scan(s fmt.ScanState, ch rune) error {
	i := new(big.Int)
	if err := i.Scan(s, ch); err != nil {
		return err
	} else if i.Sign() < 0 {
		return errors.New("value cannot be negative")
	} else if i.BitLen() > 128 {
		return errors.New("value overflows Uint128")
	}
	u.Lo = i.Uint64()
	u.Hi = i.Rsh(i, 64).Uint64()
	return nil
}

// FromString parses a base-10 unsigned integer of at most 128 bits.
func FromString(num string) (binary.Uint128, error) {
	u := binary.NewUint128LittleEndian()
	if _, err := fmt.Sscan(num, (*Uint128)(u)); err != nil {
		return binary.Uint128{}, err
	}
	return *u, nil
}

// Mul64 returns the full 128-bit product a*b.
func Mul64(a, b uint64) binary.Uint128 {
	hi, lo := bits.Mul64(a, b)
	return binary.Uint128{Lo: lo, Hi: hi}
}

// Div64 returns floor(v/d) narrowed to 64 bits.
func Div64(v binary.Uint128, d uint64) (uint64, error) {
	if d == 0 {
		return 0, ErrDivisionByZero
	}
	// the quotient fits in 64 bits iff the high word is below the divisor
	if v.Hi >= d {
		return 0, fmt.Errorf("%w: %s / %d", ErrOverflow, v.BigInt(), d)
	}
	q, _ := bits.Div64(v.Hi, v.Lo, d)
	return q, nil
}

// Uint64 narrows v, failing when the high word is set.
func Uint64(v binary.Uint128) (uint64, error) {
	if v.Hi != 0 {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, v.BigInt())
	}
	return v.Lo, nil
}
