// Package config loads pool parameters and operation scenarios from JSON.
//
// Example:
//
//	{
//	  "price": "1.5",
//	  "min_fee_bps": 10,
//	  "max_fee_bps": 900,
//	  "liquidity_target": 90000,
//	  "token_mint": "So11111111111111111111111111111111111111112",
//	  "staked_token_mint": "mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So",
//	  "operations": [
//	    {"op": "add_liquidity", "amount": 100000000},
//	    {"op": "swap", "amount": 6000},
//	    {"op": "remove_liquidity", "amount": 2000}
//	  ]
//	}
package config

import (
	"errors"
	"fmt"
	stdmath "math"
	"os"
	"strconv"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/Arkko002/liquidity-pool-go/lppool"
	"github.com/Arkko002/liquidity-pool-go/lppool/shared"
)

var (
	ErrInvalidConfig    = errors.New("invalid config")
	ErrUnknownOperation = errors.New("unknown operation")
)

// MSolMint is the Marinade staked SOL mint.
var MSolMint = solana.MustPublicKeyFromBase58("mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So")

type Config struct {
	Price           shared.Price
	MinFee          shared.Fee
	MaxFee          shared.Fee
	LiquidityTarget shared.TokenAmount

	TokenMint       solana.PublicKey
	StakedTokenMint solana.PublicKey

	Operations []Operation
}

// Default is the reference scenario: price 1.5, fees 0.10%..9.00% and a
// liquidity target of 90_000 lamports.
func Default() *Config {
	return &Config{
		Price:           shared.PriceFromPoints(150),
		MinFee:          shared.FeeFromBasisPoints(10),
		MaxFee:          shared.FeeFromBasisPoints(900),
		LiquidityTarget: shared.TokenAmountFromLamports(90_000),
		TokenMint:       solana.WrappedSol,
		StakedTokenMint: MSolMint,
		Operations: []Operation{
			{Kind: OpAddLiquidity, Amount: 100_000_000},
			{Kind: OpSwap, Amount: 6_000},
			{Kind: OpAddLiquidity, Amount: 10_000},
			{Kind: OpRemoveLiquidity, Amount: 2_000},
		},
	}
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

func Load(data []byte) (*Config, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidConfig)
	}
	root := gjson.ParseBytes(data)

	price, err := parsePrice(root.Get("price"))
	if err != nil {
		return nil, err
	}
	minFee, err := feeField(root, "min_fee_bps")
	if err != nil {
		return nil, err
	}
	maxFee, err := feeField(root, "max_fee_bps")
	if err != nil {
		return nil, err
	}
	target, err := uintField(root.Get("liquidity_target"), "liquidity_target")
	if err != nil {
		return nil, err
	}
	tokenMint, err := mintField(root, "token_mint", solana.WrappedSol)
	if err != nil {
		return nil, err
	}
	stakedTokenMint, err := mintField(root, "staked_token_mint", MSolMint)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Price:           price,
		MinFee:          minFee,
		MaxFee:          maxFee,
		LiquidityTarget: shared.TokenAmountFromLamports(target),
		TokenMint:       tokenMint,
		StakedTokenMint: stakedTokenMint,
	}
	for i, op := range root.Get("operations").Array() {
		o, err := parseOperation(op)
		if err != nil {
			return nil, fmt.Errorf("operations[%d]: %w", i, err)
		}
		cfg.Operations = append(cfg.Operations, o)
	}
	return cfg, nil
}

// NewPool initialises a pool with the configured parameters.
func (c *Config) NewPool(opts ...lppool.Option) (*lppool.Pool, error) {
	return lppool.Init(c.Price, c.MinFee, c.MaxFee, c.LiquidityTarget, opts...)
}

// parsePrice accepts the price as a decimal string ("1.5") or a JSON number.
func parsePrice(r gjson.Result) (shared.Price, error) {
	if r.Type != gjson.String && r.Type != gjson.Number {
		return shared.Price{}, fmt.Errorf("%w: price is required", ErrInvalidConfig)
	}
	d, err := decimal.NewFromString(r.String())
	if err != nil {
		return shared.Price{}, fmt.Errorf("%w: price %q: %w", ErrInvalidConfig, r.String(), err)
	}
	return shared.PriceFromDecimal(d)
}

func feeField(root gjson.Result, name string) (shared.Fee, error) {
	bps, err := uintField(root.Get(name), name)
	if err != nil {
		return shared.Fee{}, err
	}
	if bps > stdmath.MaxUint32 {
		return shared.Fee{}, fmt.Errorf("%w: %s %d out of range", ErrInvalidConfig, name, bps)
	}
	return shared.FeeFromBasisPoints(uint32(bps)), nil
}

func uintField(r gjson.Result, name string) (uint64, error) {
	if r.Type != gjson.Number {
		return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidConfig, name)
	}
	v, err := strconv.ParseUint(r.Raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %s is not an unsigned integer", ErrInvalidConfig, name, r.Raw)
	}
	return v, nil
}

func mintField(root gjson.Result, name string, fallback solana.PublicKey) (solana.PublicKey, error) {
	r := root.Get(name)
	if !r.Exists() {
		return fallback, nil
	}
	key, err := solana.PublicKeyFromBase58(r.String())
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, name, err)
	}
	return key, nil
}
