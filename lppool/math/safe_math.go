package math

import (
	"errors"
	"fmt"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

var ErrCalculation = errors.New("calculation error")

func Add(a, b uint64) (uint64, error) {
	sum, err := smath.Add(a, b)
	if err != nil {
		return 0, fmt.Errorf("%w: %d + %d: %w", ErrCalculation, a, b, err)
	}
	return sum, nil
}

func Sub(a, b uint64) (uint64, error) {
	diff, err := smath.Sub(a, b)
	if err != nil {
		return 0, fmt.Errorf("%w: %d - %d: %w", ErrCalculation, a, b, err)
	}
	return diff, nil
}

func Mul(a, b uint64) (uint64, error) {
	prod, err := smath.Mul(a, b)
	if err != nil {
		return 0, fmt.Errorf("%w: %d * %d: %w", ErrCalculation, a, b, err)
	}
	return prod, nil
}

func Div(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: %d / 0: division by zero", ErrCalculation, a)
	}
	return a / b, nil
}
