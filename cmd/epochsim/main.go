// Command epochsim drives transaction handlers with generated epochs of candidate
// transactions and reports what each handler accepted and why it rejected the rest.
package main

import (
	"fmt"
	"os"

	"github.com/bsv-blockchain/utxoledger/settings"
	"github.com/bsv-blockchain/utxoledger/ulogger"
	"github.com/urfave/cli/v2"
)

func main() {
	tSettings := settings.NewSettings()

	logger := ulogger.New("epochsim",
		ulogger.WithLevel(tSettings.Logger.Level),
		ulogger.WithLoggerType(tSettings.Logger.Type),
		ulogger.WithPretty(tSettings.Logger.Pretty),
	)

	app := &cli.App{
		Name:  "epochsim",
		Usage: "Run generated epochs of transactions through independent ledger branches",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Seed a utxo pool and process epochs of candidate transactions",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "keys", Value: 4, Usage: "number of key pairs owning outputs"},
					&cli.IntFlag{Name: "seed-outputs", Value: 100, Usage: "number of outputs in the initial pool"},
					&cli.IntFlag{Name: "epochs", Value: 5, Usage: "number of epochs per branch"},
					&cli.IntFlag{Name: "txs", Value: 50, Usage: "candidate transactions per epoch"},
					&cli.IntFlag{Name: "branches", Value: 2, Usage: "independent handlers run in parallel"},
					&cli.Float64Flag{Name: "invalid-ratio", Value: 0.2, Usage: "share of candidates built to be invalid"},
					&cli.Uint64Flag{Name: "seed", Value: 1, Usage: "random seed"},
					&cli.StringFlag{Name: "pool-type", Value: tSettings.UtxoPool.Type, Usage: "utxo pool implementation: map, swiss or synced"},
				},
				Action: func(cCtx *cli.Context) error {
					cfg := Config{
						Keys:         cCtx.Int("keys"),
						SeedOutputs:  cCtx.Int("seed-outputs"),
						Epochs:       cCtx.Int("epochs"),
						Txs:          cCtx.Int("txs"),
						Branches:     cCtx.Int("branches"),
						InvalidRatio: cCtx.Float64("invalid-ratio"),
						Seed:         cCtx.Uint64("seed"),
					}

					tSettings.UtxoPool.Type = cCtx.String("pool-type")

					reports, err := Run(cCtx.Context, logger, tSettings, cfg)
					if err != nil {
						return err
					}

					return PrintReports(os.Stdout, reports)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "epochsim: %v\n", err)
		os.Exit(1)
	}
}
