package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	safeconversion "github.com/bsv-blockchain/go-safe-conversion"
	bec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/bsv-blockchain/utxoledger/errors"
	"github.com/bsv-blockchain/utxoledger/model"
	"github.com/bsv-blockchain/utxoledger/services/txhandler"
	"github.com/bsv-blockchain/utxoledger/settings"
	"github.com/bsv-blockchain/utxoledger/stores/utxo"
	"github.com/bsv-blockchain/utxoledger/stores/utxo/factory"
	"github.com/bsv-blockchain/utxoledger/stores/utxo/memory"
	"github.com/bsv-blockchain/utxoledger/ulogger"
	"golang.org/x/sync/errgroup"
)

const maxSeedValue = 1000

type Config struct {
	Keys         int
	SeedOutputs  int
	Epochs       int
	Txs          int
	Branches     int
	InvalidRatio float64
	Seed         uint64
}

func (c Config) validate() error {
	switch {
	case c.Keys < 1:
		return errors.NewInvalidArgumentError("keys must be at least 1, got %d", c.Keys)
	case c.SeedOutputs < 0:
		return errors.NewInvalidArgumentError("seed-outputs must not be negative, got %d", c.SeedOutputs)
	case c.Epochs < 0:
		return errors.NewInvalidArgumentError("epochs must not be negative, got %d", c.Epochs)
	case c.Txs < 0:
		return errors.NewInvalidArgumentError("txs must not be negative, got %d", c.Txs)
	case c.Branches < 1:
		return errors.NewInvalidArgumentError("branches must be at least 1, got %d", c.Branches)
	case c.InvalidRatio < 0 || c.InvalidRatio > 1:
		return errors.NewInvalidArgumentError("invalid-ratio must be within [0,1], got %v", c.InvalidRatio)
	}

	return nil
}

type EpochReport struct {
	Epoch      int
	Candidates int
	Expected   int // candidates built to be valid
	Accepted   int
	Rejected   int
	Reasons    map[string]int
	PoolSize   int
}

type BranchReport struct {
	Branch int
	Epochs []EpochReport
}

// wallet holds every private key the simulation can sign with, by compressed public key.
type wallet struct {
	keys     []*bec.PrivateKey
	byPubKey map[string]*bec.PrivateKey
	outsider *bec.PrivateKey
}

func newWallet(n int, seed uint64) *wallet {
	w := &wallet{
		byPubKey: make(map[string]*bec.PrivateKey, n),
	}

	for i := 0; i < n; i++ {
		priv, pub := bec.PrivateKeyFromBytes(chainhash.HashB([]byte(fmt.Sprintf("epochsim/%d/%d", seed, i))))
		w.keys = append(w.keys, priv)
		w.byPubKey[string(pub.Compressed())] = priv
	}

	// never owns anything, used to forge signatures
	w.outsider, _ = bec.PrivateKeyFromBytes(chainhash.HashB([]byte(fmt.Sprintf("epochsim/%d/outsider", seed))))

	return w
}

func (w *wallet) owner(output *model.Output) *bec.PrivateKey {
	return w.byPubKey[string(output.AddressBytes())]
}

func (w *wallet) randomAddress(rng *rand.Rand) *bec.PublicKey {
	return w.keys[rng.IntN(len(w.keys))].PubKey()
}

// SeedPool builds the shared starting pool. It is a SyncedMap since every branch clones it
// from its own goroutine.
func SeedPool(cfg Config, w *wallet) (utxo.Pool, error) {
	rng := rand.New(rand.NewPCG(cfg.Seed, 0))
	pool := memory.NewSyncedMap()
	seedHash := chainhash.HashH([]byte(fmt.Sprintf("epochsim/%d/seed", cfg.Seed)))

	for i := 0; i < cfg.SeedOutputs; i++ {
		index, err := safeconversion.IntToUint32(i)
		if err != nil {
			return nil, errors.NewInvalidArgumentError("too many seed outputs", err)
		}

		pool.Add(model.NewUTXO(seedHash, index), model.NewOutput(1+rng.Int64N(maxSeedValue), w.randomAddress(rng)))
	}

	return pool, nil
}

// Run processes cfg.Epochs epochs on cfg.Branches independent handlers concurrently. Each
// branch generates its own candidates from its own pool, so the branches diverge.
func Run(ctx context.Context, logger ulogger.Logger, tSettings *settings.Settings, cfg Config) ([]BranchReport, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	w := newWallet(cfg.Keys, cfg.Seed)
	seed, err := SeedPool(cfg, w)
	if err != nil {
		return nil, err
	}

	logger.Infof("[epochsim] seeded %d outputs worth %d across %d keys", seed.Len(), utxo.TotalValue(seed), cfg.Keys)

	reports := make([]BranchReport, cfg.Branches)

	g, gCtx := errgroup.WithContext(ctx)

	for b := 0; b < cfg.Branches; b++ {
		g.Go(func() error {
			report, err := runBranch(gCtx, logger.New(fmt.Sprintf("branch-%d", b)), tSettings, cfg, w, seed, b)
			if err != nil {
				return errors.NewProcessingError("branch %d failed", b, err)
			}

			reports[b] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func runBranch(ctx context.Context, logger ulogger.Logger, tSettings *settings.Settings, cfg Config, w *wallet, seed utxo.Pool, branch int) (BranchReport, error) {
	branchPool, err := factory.New(logger, tSettings)
	if err != nil {
		return BranchReport{}, err
	}

	h := txhandler.New(logger, tSettings, seed, txhandler.WithPoolFactory(func(src utxo.Pool) utxo.Pool {
		utxo.CopyInto(branchPool, src)
		return branchPool
	}))

	stream, err := safeconversion.IntToUint64(branch)
	if err != nil {
		return BranchReport{}, err
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, stream+1))
	report := BranchReport{Branch: branch}

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		gen := newGenerator(rng, w, h.UTXOPool(), cfg.InvalidRatio)
		candidates := gen.epoch(cfg.Txs)

		result := h.ProcessEpoch(candidates)

		epochReport := EpochReport{
			Epoch:      epoch,
			Candidates: len(candidates),
			Expected:   gen.valid,
			Accepted:   len(result.Accepted),
			Rejected:   len(result.Rejected),
			Reasons:    make(map[string]int),
			PoolSize:   h.UTXOPool().Len(),
		}

		for _, rejected := range result.Rejected {
			epochReport.Reasons[errors.CodeOf(rejected.Err).String()]++
		}

		// every candidate built to be valid is ordered after what it spends
		if epochReport.Accepted != gen.valid {
			return report, errors.NewProcessingError("epoch %d accepted %d transactions, expected %d", epoch, epochReport.Accepted, gen.valid)
		}

		report.Epochs = append(report.Epochs, epochReport)
	}

	return report, nil
}

func PrintReports(out io.Writer, reports []BranchReport) error {
	for _, branch := range reports {
		for _, e := range branch.Epochs {
			reasons := make([]string, 0, len(e.Reasons))
			for reason, count := range e.Reasons {
				reasons = append(reasons, fmt.Sprintf("%s=%d", reason, count))
			}

			sort.Strings(reasons)

			if _, err := fmt.Fprintf(out, "branch %d epoch %d: %d candidates, %d accepted, %d rejected, %d utxos [%s]\n",
				branch.Branch, e.Epoch, e.Candidates, e.Accepted, e.Rejected, e.PoolSize, strings.Join(reasons, " ")); err != nil {
				return err
			}
		}
	}

	return nil
}
