package u128

import (
	"math"
	"testing"

	binary "github.com/gagliardetto/binary"
	"github.com/stretchr/testify/require"
)

func TestMul64(t *testing.T) {
	require := require.New(t)

	p := Mul64(math.MaxUint64, 2)
	require.Equal(uint64(1), p.Hi)
	require.Equal(uint64(math.MaxUint64-1), p.Lo)

	p = Mul64(12, 10)
	require.Zero(p.Hi)
	require.Equal(uint64(120), p.Lo)
}

func TestDiv64(t *testing.T) {
	require := require.New(t)

	q, err := Div64(Mul64(math.MaxUint64, 3), 3)
	require.NoError(err)
	require.Equal(uint64(math.MaxUint64), q)

	_, err = Div64(Mul64(math.MaxUint64, 3), 2)
	require.ErrorIs(err, ErrOverflow)

	_, err = Div64(Mul64(1, 1), 0)
	require.ErrorIs(err, ErrDivisionByZero)
}

func TestUint64(t *testing.T) {
	require := require.New(t)

	v, err := Uint64(binary.Uint128{Lo: 42})
	require.NoError(err)
	require.Equal(uint64(42), v)

	_, err = Uint64(binary.Uint128{Lo: 1, Hi: 1})
	require.ErrorIs(err, ErrOverflow)
}

func TestFromString(t *testing.T) {
	require := require.New(t)

	v, err := FromString("18446744073709551617")
	require.NoError(err)
	require.Equal(uint64(1), v.Hi)
	require.Equal(uint64(1), v.Lo)

	_, err = FromString("-1")
	require.Error(err)

	_, err = FromString("340282366920938463463374607431768211456")
	require.Error(err)
}
