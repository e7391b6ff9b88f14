package shared

import (
	"cmp"
	"strconv"

	"github.com/Arkko002/liquidity-pool-go/lppool/math"
)

// TokenAmount, LpTokenAmount and StakedTokenAmount are lamport counts of
// different currencies. They only convert into each other through the
// constructors below, and their arithmetic fails instead of wrapping.

type TokenAmount struct {
	lamports uint64
}

func TokenAmountFromLamports(lamports uint64) TokenAmount {
	return TokenAmount{lamports: lamports}
}

// TokenAmountFromStakedTokens values staked tokens at price.
func TokenAmountFromStakedTokens(staked StakedTokenAmount, price Price) (TokenAmount, error) {
	return price.Multiply(staked)
}

func (a TokenAmount) Lamports() uint64 { return a.lamports }

func (a TokenAmount) IsZero() bool { return a.lamports == 0 }

func (a TokenAmount) Add(b TokenAmount) (TokenAmount, error) {
	v, err := math.Add(a.lamports, b.lamports)
	return TokenAmount{lamports: v}, err
}

func (a TokenAmount) Sub(b TokenAmount) (TokenAmount, error) {
	v, err := math.Sub(a.lamports, b.lamports)
	return TokenAmount{lamports: v}, err
}

func (a TokenAmount) Div(b TokenAmount) (TokenAmount, error) {
	v, err := math.Div(a.lamports, b.lamports)
	return TokenAmount{lamports: v}, err
}

func (a TokenAmount) Cmp(b TokenAmount) int {
	return cmp.Compare(a.lamports, b.lamports)
}

func (a TokenAmount) String() string {
	return strconv.FormatUint(a.lamports, 10)
}

type LpTokenAmount struct {
	lamports uint64
}

func LpTokenAmountFromLamports(lamports uint64) LpTokenAmount {
	return LpTokenAmount{lamports: lamports}
}

// LpTokenAmountFromTokens mints LP tokens 1:1 with amount.
func LpTokenAmountFromTokens(amount TokenAmount) LpTokenAmount {
	return LpTokenAmount{lamports: amount.lamports}
}

// LpTokenAmountFromTokensWithFee mints LP tokens 1:1 with amount after fee.
func LpTokenAmountFromTokensWithFee(amount TokenAmount, fee Fee) (LpTokenAmount, error) {
	v, err := fee.Apply(amount.lamports)
	if err != nil {
		return LpTokenAmount{}, err
	}
	return LpTokenAmount{lamports: v}, nil
}

func (a LpTokenAmount) Lamports() uint64 { return a.lamports }

func (a LpTokenAmount) IsZero() bool { return a.lamports == 0 }

func (a LpTokenAmount) Add(b LpTokenAmount) (LpTokenAmount, error) {
	v, err := math.Add(a.lamports, b.lamports)
	return LpTokenAmount{lamports: v}, err
}

func (a LpTokenAmount) Sub(b LpTokenAmount) (LpTokenAmount, error) {
	v, err := math.Sub(a.lamports, b.lamports)
	return LpTokenAmount{lamports: v}, err
}

func (a LpTokenAmount) Div(b LpTokenAmount) (LpTokenAmount, error) {
	v, err := math.Div(a.lamports, b.lamports)
	return LpTokenAmount{lamports: v}, err
}

func (a LpTokenAmount) Cmp(b LpTokenAmount) int {
	return cmp.Compare(a.lamports, b.lamports)
}

func (a LpTokenAmount) String() string {
	return strconv.FormatUint(a.lamports, 10)
}

type StakedTokenAmount struct {
	lamports uint64
}

func StakedTokenAmountFromLamports(lamports uint64) StakedTokenAmount {
	return StakedTokenAmount{lamports: lamports}
}

// StakedTokenAmountFromTokens converts token lamports to staked lamports at price.
func StakedTokenAmountFromTokens(amount TokenAmount, price Price) (StakedTokenAmount, error) {
	return price.Divide(amount)
}

func (a StakedTokenAmount) Lamports() uint64 { return a.lamports }

func (a StakedTokenAmount) IsZero() bool { return a.lamports == 0 }

func (a StakedTokenAmount) Add(b StakedTokenAmount) (StakedTokenAmount, error) {
	v, err := math.Add(a.lamports, b.lamports)
	return StakedTokenAmount{lamports: v}, err
}

func (a StakedTokenAmount) Sub(b StakedTokenAmount) (StakedTokenAmount, error) {
	v, err := math.Sub(a.lamports, b.lamports)
	return StakedTokenAmount{lamports: v}, err
}

func (a StakedTokenAmount) Div(b StakedTokenAmount) (StakedTokenAmount, error) {
	v, err := math.Div(a.lamports, b.lamports)
	return StakedTokenAmount{lamports: v}, err
}

func (a StakedTokenAmount) Cmp(b StakedTokenAmount) int {
	return cmp.Compare(a.lamports, b.lamports)
}

func (a StakedTokenAmount) String() string {
	return strconv.FormatUint(a.lamports, 10)
}
