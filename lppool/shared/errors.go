package shared

import "errors"

var (
	ErrBasisPointsOverflow    = errors.New("basis points overflow")
	ErrPriceConversionFailure = errors.New("price conversion failure")
)
