package main

import (
	"bytes"
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/bsv-blockchain/utxoledger/errors"
	"github.com/bsv-blockchain/utxoledger/services/txhandler"
	"github.com/bsv-blockchain/utxoledger/settings"
	"github.com/bsv-blockchain/utxoledger/stores/utxo/memory"
	"github.com/bsv-blockchain/utxoledger/ulogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simSettings(poolType string) *settings.Settings {
	return &settings.Settings{
		UtxoPool: settings.UtxoPoolSettings{Type: poolType, InitialCapacity: 64},
		TxHandler: settings.TxHandlerSettings{
			LogRejections:  true,
			MetricsEnabled: false,
		},
	}
}

func smallConfig() Config {
	return Config{
		Keys:         3,
		SeedOutputs:  20,
		Epochs:       3,
		Txs:          25,
		Branches:     3,
		InvalidRatio: 0.3,
		Seed:         42,
	}
}

func TestRun(t *testing.T) {
	for _, poolType := range []string{"map", "swiss", "synced"} {
		t.Run(poolType, func(t *testing.T) {
			reports, err := Run(context.Background(), ulogger.NewVerboseTestLogger(t, ulogger.WithLevel("INFO")), simSettings(poolType), smallConfig())
			require.NoError(t, err)
			require.Len(t, reports, 3)

			for b, branch := range reports {
				assert.Equal(t, b, branch.Branch)
				require.Len(t, branch.Epochs, 3)

				for _, e := range branch.Epochs {
					assert.Equal(t, 25, e.Candidates)
					assert.Equal(t, e.Candidates, e.Accepted+e.Rejected)
					assert.Equal(t, e.Expected, e.Accepted)
					assert.Positive(t, e.PoolSize)

					var reasons int
					for _, count := range e.Reasons {
						reasons += count
					}

					assert.Equal(t, e.Rejected, reasons)
				}
			}
		})
	}
}

func TestRunIsDeterministic(t *testing.T) {
	first, err := Run(context.Background(), ulogger.TestLogger{}, simSettings("map"), smallConfig())
	require.NoError(t, err)

	second, err := Run(context.Background(), ulogger.TestLogger{}, simSettings("swiss"), smallConfig())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunInvalidConfig(t *testing.T) {
	cases := map[string]func(c *Config){
		"no keys":        func(c *Config) { c.Keys = 0 },
		"no branches":    func(c *Config) { c.Branches = 0 },
		"negative txs":   func(c *Config) { c.Txs = -1 },
		"ratio too high": func(c *Config) { c.InvalidRatio = 1.5 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := smallConfig()
			mutate(&cfg)

			_, err := Run(context.Background(), ulogger.TestLogger{}, simSettings("map"), cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
		})
	}

	t.Run("unknown pool type", func(t *testing.T) {
		_, err := Run(context.Background(), ulogger.TestLogger{}, simSettings("redis"), smallConfig())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrConfiguration))
	})
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, ulogger.TestLogger{}, simSettings("map"), smallConfig())
	require.Error(t, err)
}

func TestGeneratorInvalidKinds(t *testing.T) {
	cfg := smallConfig()
	w := newWallet(cfg.Keys, cfg.Seed)

	seed, err := SeedPool(cfg, w)
	require.NoError(t, err)

	h := txhandler.New(ulogger.TestLogger{}, simSettings("map"), seed)
	gen := newGenerator(rand.New(rand.NewPCG(1, 2)), w, h.UTXOPool(), 0)

	expected := map[invalidKind]errors.ERR{
		invalidDoubleClaim:    errors.ERR_TX_INVALID_DOUBLE_SPEND,
		invalidUnknownUTXO:    errors.ERR_UTXO_NOT_FOUND,
		invalidSignature:      errors.ERR_TX_INVALID_SIGNATURE,
		invalidNegativeOutput: errors.ERR_TX_INVALID,
		invalidOverspend:      errors.ERR_TX_INSUFFICIENT_INPUTS,
	}

	for kind, code := range expected {
		err := h.ValidateTransaction(gen.invalid(kind))
		require.Error(t, err)
		assert.Equal(t, code, errors.CodeOf(err))
	}

	assert.True(t, h.IsValidTx(gen.validTx()))
	assert.Equal(t, 1, gen.valid)
}

func TestGeneratorEmptyPool(t *testing.T) {
	w := newWallet(1, 1)
	gen := newGenerator(rand.New(rand.NewPCG(1, 1)), w, memory.NewMap(0), 0)

	txs := gen.epoch(5)
	require.Len(t, txs, 5)
	assert.Equal(t, 0, gen.valid)
}

func TestPrintReports(t *testing.T) {
	buf := &bytes.Buffer{}

	err := PrintReports(buf, []BranchReport{
		{
			Branch: 1,
			Epochs: []EpochReport{
				{Epoch: 0, Candidates: 3, Accepted: 1, Rejected: 2, PoolSize: 7, Reasons: map[string]int{"UTXO_NOT_FOUND": 1, "TX_INVALID": 1}},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "branch 1 epoch 0: 3 candidates, 1 accepted, 2 rejected, 7 utxos [TX_INVALID=1 UTXO_NOT_FOUND=1]\n", buf.String())
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}
