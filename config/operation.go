package config

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/Arkko002/liquidity-pool-go/lppool"
	"github.com/Arkko002/liquidity-pool-go/lppool/shared"
)

type OperationKind string

const (
	OpAddLiquidity    OperationKind = "add_liquidity"
	OpRemoveLiquidity OperationKind = "remove_liquidity"
	OpSwap            OperationKind = "swap"
)

// Operation is one step of a scenario. Amount is in token lamports for
// add_liquidity, LP lamports for remove_liquidity and staked lamports for swap.
type Operation struct {
	Kind   OperationKind
	Amount uint64
}

// Outcome holds what an operation paid out.
type Outcome struct {
	LpTokens     shared.LpTokenAmount
	Tokens       shared.TokenAmount
	StakedTokens shared.StakedTokenAmount
}

func (o Operation) Apply(p *lppool.Pool) (Outcome, error) {
	switch o.Kind {
	case OpAddLiquidity:
		lp, err := p.AddLiquidity(shared.TokenAmountFromLamports(o.Amount))
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{LpTokens: lp}, nil
	case OpRemoveLiquidity:
		tokens, staked, err := p.RemoveLiquidity(shared.LpTokenAmountFromLamports(o.Amount))
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Tokens: tokens, StakedTokens: staked}, nil
	case OpSwap:
		tokens, err := p.Swap(shared.StakedTokenAmountFromLamports(o.Amount))
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Tokens: tokens}, nil
	default:
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownOperation, o.Kind)
	}
}

func (o Operation) String() string {
	return fmt.Sprintf("%s(%d)", o.Kind, o.Amount)
}

func parseOperation(r gjson.Result) (Operation, error) {
	if !r.IsObject() {
		return Operation{}, fmt.Errorf("%w: operation must be an object", ErrInvalidConfig)
	}
	kind := OperationKind(r.Get("op").String())
	switch kind {
	case OpAddLiquidity, OpRemoveLiquidity, OpSwap:
	default:
		return Operation{}, fmt.Errorf("%w: %q", ErrUnknownOperation, kind)
	}
	amount, err := uintField(r.Get("amount"), "amount")
	if err != nil {
		return Operation{}, err
	}
	return Operation{Kind: kind, Amount: amount}, nil
}
