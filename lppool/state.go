package lppool

import (
	"bytes"
	"fmt"

	binary "github.com/gagliardetto/binary"

	"github.com/Arkko002/liquidity-pool-go/lppool/shared"
)

// State is a plain snapshot of a pool, laid out for Borsh encoding.
type State struct {
	PricePoints       uint64
	LiquidityTarget   uint64
	MinFeeBps         uint32
	MaxFeeBps         uint32
	TokenAmount       uint64
	StakedTokenAmount uint64
	LpTokenAmount     uint64
}

func (p *Pool) State() State {
	return State{
		PricePoints:       p.price.Points(),
		LiquidityTarget:   p.liquidityTarget.Lamports(),
		MinFeeBps:         p.minFee.BasisPoints(),
		MaxFeeBps:         p.maxFee.BasisPoints(),
		TokenAmount:       p.tokenAmount.Lamports(),
		StakedTokenAmount: p.stakedTokenAmount.Lamports(),
		LpTokenAmount:     p.lpTokenAmount.Lamports(),
	}
}

// FromState rebuilds a pool from a snapshot. The configuration goes through
// the same validation as Init.
func FromState(s State, opts ...Option) (*Pool, error) {
	p, err := Init(
		shared.PriceFromPoints(s.PricePoints),
		shared.FeeFromBasisPoints(s.MinFeeBps),
		shared.FeeFromBasisPoints(s.MaxFeeBps),
		shared.TokenAmountFromLamports(s.LiquidityTarget),
		opts...,
	)
	if err != nil {
		return nil, err
	}
	p.commit(Reserves{
		TokenAmount:       shared.TokenAmountFromLamports(s.TokenAmount),
		StakedTokenAmount: shared.StakedTokenAmountFromLamports(s.StakedTokenAmount),
		LpTokenAmount:     shared.LpTokenAmountFromLamports(s.LpTokenAmount),
	})
	return p, nil
}

func (s State) MarshalBorsh() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.NewBorshEncoder(buf).Encode(s); err != nil {
		return nil, fmt.Errorf("encode pool state: %w", err)
	}
	return buf.Bytes(), nil
}

func DecodeState(data []byte) (State, error) {
	var s State
	if err := binary.NewBorshDecoder(data).Decode(&s); err != nil {
		return State{}, fmt.Errorf("decode pool state: %w", err)
	}
	return s, nil
}
