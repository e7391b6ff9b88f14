package main

import (
	"fmt"
	"io"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Arkko002/liquidity-pool-go/config"
	"github.com/Arkko002/liquidity-pool-go/lppool"
)

var lamportsPerSol = decimal.NewFromInt(int64(solana.LAMPORTS_PER_SOL))

type runCmd struct {
	configPath string
	verbose    bool
}

func newRunCmd() *cobra.Command {
	r := &runCmd{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replay a sequence of pool operations",
		Long: "Replay the operations of a JSON config against a fresh pool. " +
			"Without --config the reference scenario is used.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(r.verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			cfg := config.Default()
			if r.configPath != "" {
				if cfg, err = config.LoadFile(r.configPath); err != nil {
					return err
				}
			}
			return run(cmd.OutOrStdout(), cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&r.configPath, "config", "c", "", "path to a JSON pool config")
	cmd.Flags().BoolVarP(&r.verbose, "verbose", "v", false, "log every pool operation")
	return cmd
}

func run(out io.Writer, cfg *config.Config, logger *zap.Logger) error {
	p, err := cfg.NewPool(lppool.WithLogger(logger.Named("pool")))
	if err != nil {
		return err
	}
	logger.Info("pool initialised",
		zap.Stringer("price", cfg.Price),
		zap.Stringer("minFee", cfg.MinFee),
		zap.Stringer("maxFee", cfg.MaxFee),
		zap.Uint64("liquidityTarget", cfg.LiquidityTarget.Lamports()),
		zap.Stringer("tokenMint", cfg.TokenMint),
		zap.Stringer("stakedTokenMint", cfg.StakedTokenMint),
	)

	for i, op := range cfg.Operations {
		outcome, err := op.Apply(p)
		if err != nil {
			return fmt.Errorf("operation %d %s: %w", i, op, err)
		}
		switch op.Kind {
		case config.OpAddLiquidity:
			fmt.Fprintf(out, "%-16s %12d -> %d LP\n", op.Kind, op.Amount, outcome.LpTokens.Lamports())
		case config.OpRemoveLiquidity:
			fmt.Fprintf(out, "%-16s %12d -> %d tokens, %d staked\n",
				op.Kind, op.Amount, outcome.Tokens.Lamports(), outcome.StakedTokens.Lamports())
		case config.OpSwap:
			fmt.Fprintf(out, "%-16s %12d -> %d tokens\n", op.Kind, op.Amount, outcome.Tokens.Lamports())
		}
	}

	fmt.Fprintf(out, "token reserve:  %s SOL\n", formatSol(p.TokenAmount().Lamports()))
	fmt.Fprintf(out, "staked reserve: %s SOL\n", formatSol(p.StakedTokenAmount().Lamports()))
	fmt.Fprintf(out, "lp supply:      %d\n", p.LpTokenAmount().Lamports())
	return nil
}

func formatSol(lamports uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), 0).Div(lamportsPerSol).StringFixed(9)
}
