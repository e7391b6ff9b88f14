package lppool

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Arkko002/liquidity-pool-go/lppool/math"
	"github.com/Arkko002/liquidity-pool-go/lppool/shared"
)

// Pool is a single-asset unstake liquidity pool. Liquidity providers deposit
// tokens for LP shares; stakers swap staked tokens for tokens at a fixed price
// and pay a fee that grows as the token reserve drains below the liquidity
// target.
//
// Price of mSOL = total_staked / tokens_minted, see
// https://github.com/marinade-finance/liquid-staking-program
//
// A Pool is not safe for concurrent use.
type Pool struct {
	price           shared.Price
	liquidityTarget shared.TokenAmount
	minFee          shared.Fee
	maxFee          shared.Fee

	tokenAmount       shared.TokenAmount
	stakedTokenAmount shared.StakedTokenAmount
	lpTokenAmount     shared.LpTokenAmount

	logger *zap.Logger
}

// Reserves are the balances held by a pool.
type Reserves struct {
	TokenAmount       shared.TokenAmount
	StakedTokenAmount shared.StakedTokenAmount
	LpTokenAmount     shared.LpTokenAmount
}

// Init creates an empty pool. Fees must satisfy minFee <= maxFee <= 100%, and
// both the liquidity target and the price must be non-zero.
func Init(
	price shared.Price,
	minFee shared.Fee,
	maxFee shared.Fee,
	liquidityTarget shared.TokenAmount,
	opts ...Option,
) (*Pool, error) {
	if minFee.Cmp(maxFee) > 0 {
		return nil, fmt.Errorf("%w: min %s, max %s", ErrMinFeeGreaterThanMaxFee, minFee, maxFee)
	}
	if liquidityTarget.IsZero() {
		return nil, fmt.Errorf("%w: %s", ErrLiquidityTargetIncorrect, liquidityTarget)
	}
	if price.IsZero() {
		return nil, fmt.Errorf("%w: %s", ErrPriceIncorrect, price)
	}
	if err := maxFee.Check(); err != nil {
		return nil, err
	}

	p := &Pool{
		price:           price,
		liquidityTarget: liquidityTarget,
		minFee:          minFee,
		maxFee:          maxFee,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// CalculateFee returns the fee charged when an operation leaves amountAfter
// tokens in the pool:
//
//	unstake_fee = max_fee - (max_fee - min_fee) * amount_after / target
//
// capped at min_fee once the target is met.
// https://docs.marinade.finance/marinade-protocol/system-overview/unstake-liquidity-pool#fee-calculation
func (p *Pool) CalculateFee(amountAfter shared.TokenAmount) (shared.Fee, error) {
	if amountAfter.Cmp(p.liquidityTarget) >= 0 {
		return p.minFee, nil
	}

	feeDelta := uint64(p.maxFee.BasisPoints() - p.minFee.BasisPoints())
	scaled, err := math.Proportional(feeDelta, amountAfter.Lamports(), p.liquidityTarget.Lamports())
	if err != nil {
		return shared.Fee{}, err
	}
	// amountAfter < target, so scaled <= feeDelta
	return shared.FeeFromBasisPoints(p.maxFee.BasisPoints() - uint32(scaled)), nil
}

// AddLiquidity deposits tokens and mints LP tokens 1:1 with the deposit left
// after fee.
func (p *Pool) AddLiquidity(tokensToAdd shared.TokenAmount) (shared.LpTokenAmount, error) {
	q, err := p.QuoteAddLiquidity(tokensToAdd)
	if err != nil {
		return shared.LpTokenAmount{}, err
	}
	p.commit(q.After)

	p.logger.Debug("added liquidity",
		zap.Uint64("tokens", tokensToAdd.Lamports()),
		zap.Stringer("fee", q.Fee),
		zap.Uint64("lpTokensMinted", q.LpTokens.Lamports()),
		zap.Uint64("tokenReserve", q.After.TokenAmount.Lamports()),
	)
	return q.LpTokens, nil
}

// RemoveLiquidity burns LP tokens and pays out their share of the token
// reserve less fee, together with the staked equivalent debited from the
// staked reserve.
func (p *Pool) RemoveLiquidity(lpTokensToRemove shared.LpTokenAmount) (shared.TokenAmount, shared.StakedTokenAmount, error) {
	q, err := p.QuoteRemoveLiquidity(lpTokensToRemove)
	if err != nil {
		return shared.TokenAmount{}, shared.StakedTokenAmount{}, err
	}
	p.commit(q.After)

	p.logger.Debug("removed liquidity",
		zap.Uint64("lpTokensBurned", lpTokensToRemove.Lamports()),
		zap.Stringer("fee", q.Fee),
		zap.Uint64("tokens", q.TokensWithFee.Lamports()),
		zap.Uint64("stakedTokens", q.StakedTokens.Lamports()),
		zap.Uint64("tokenReserve", q.After.TokenAmount.Lamports()),
	)
	return q.TokensWithFee, q.StakedTokens, nil
}

// Swap exchanges staked tokens for tokens at the pool price, less fee.
func (p *Pool) Swap(stakedTokensToSwap shared.StakedTokenAmount) (shared.TokenAmount, error) {
	q, err := p.QuoteSwap(stakedTokensToSwap)
	if err != nil {
		return shared.TokenAmount{}, err
	}
	p.commit(q.After)

	p.logger.Debug("swapped",
		zap.Uint64("stakedTokens", stakedTokensToSwap.Lamports()),
		zap.Stringer("fee", q.Fee),
		zap.Uint64("tokens", q.TokensWithFee.Lamports()),
		zap.Uint64("tokenReserve", q.After.TokenAmount.Lamports()),
	)
	return q.TokensWithFee, nil
}

func (p *Pool) commit(r Reserves) {
	p.tokenAmount = r.TokenAmount
	p.stakedTokenAmount = r.StakedTokenAmount
	p.lpTokenAmount = r.LpTokenAmount
}

func (p *Pool) reserves() Reserves {
	return Reserves{
		TokenAmount:       p.tokenAmount,
		StakedTokenAmount: p.stakedTokenAmount,
		LpTokenAmount:     p.lpTokenAmount,
	}
}

func (p *Pool) Price() shared.Price { return p.price }

func (p *Pool) LiquidityTarget() shared.TokenAmount { return p.liquidityTarget }

func (p *Pool) MinFee() shared.Fee { return p.minFee }

func (p *Pool) MaxFee() shared.Fee { return p.maxFee }

func (p *Pool) TokenAmount() shared.TokenAmount { return p.tokenAmount }

func (p *Pool) StakedTokenAmount() shared.StakedTokenAmount { return p.stakedTokenAmount }

func (p *Pool) LpTokenAmount() shared.LpTokenAmount { return p.lpTokenAmount }
