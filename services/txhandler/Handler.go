// Package txhandler validates transactions against a pool of unspent outputs and applies
// batches of them, one epoch at a time.
package txhandler

import (
	"math"
	"time"

	"github.com/bsv-blockchain/utxoledger/crypto"
	"github.com/bsv-blockchain/utxoledger/errors"
	"github.com/bsv-blockchain/utxoledger/model"
	"github.com/bsv-blockchain/utxoledger/settings"
	"github.com/bsv-blockchain/utxoledger/stores/utxo"
	"github.com/bsv-blockchain/utxoledger/ulogger"
)

// Handler owns a utxo pool exclusively. It is not safe for concurrent use.
type Handler struct {
	logger    ulogger.Logger
	settings  *settings.Settings
	pool      utxo.Pool
	verifier  crypto.Verifier
	metrics   bool
	logReject bool
}

// RejectedTx is a candidate that failed validation, with its position in the batch.
type RejectedTx struct {
	Tx    *model.Tx
	Index int
	Err   error
}

// EpochResult holds the outcome of one ProcessEpoch call, both lists in batch order.
type EpochResult struct {
	Accepted []*model.Tx
	Rejected []RejectedTx
}

// New creates a handler over a private copy of pool. Later changes to pool are not seen
// by the handler, and the handler never mutates pool.
func New(logger ulogger.Logger, tSettings *settings.Settings, pool utxo.Pool, opts ...Option) *Handler {
	options := ProcessOptions(opts...)

	if tSettings == nil {
		tSettings = settings.NewSettings()
	}

	h := &Handler{
		logger:    logger,
		settings:  tSettings,
		pool:      options.poolFactory(pool),
		verifier:  options.verifier,
		metrics:   tSettings.TxHandler.MetricsEnabled,
		logReject: tSettings.TxHandler.LogRejections,
	}

	if h.metrics {
		initPrometheusMetrics()
		prometheusPoolSize.Set(float64(h.pool.Len()))
	}

	return h
}

// UTXOPool returns a copy of the current pool.
func (h *Handler) UTXOPool() utxo.Pool {
	return h.pool.Clone()
}

// IsValidTx reports whether tx can be applied to the current pool.
func (h *Handler) IsValidTx(tx *model.Tx) bool {
	return h.ValidateTransaction(tx) == nil
}

// ValidateTransaction returns nil when tx can be applied to the current pool, or the first
// reason it cannot. The pool is only read.
func (h *Handler) ValidateTransaction(tx *model.Tx) error {
	if h.metrics {
		start := time.Now()
		defer func() {
			prometheusValidateTransaction.Observe(time.Since(start).Seconds())
		}()
	}

	if tx == nil {
		return errors.NewInvalidArgumentError("[ValidateTransaction] transaction is nil")
	}

	// checked before hashing, the hash covers every input
	for i, input := range tx.Inputs {
		if input == nil {
			return errors.NewTxInvalidError("[ValidateTransaction] input %d is nil", i)
		}
	}

	txHash := tx.Hash()

	claimed := make(map[model.UTXO]struct{}, len(tx.Inputs))

	var inputTotal int64

	for i, input := range tx.Inputs {
		u := input.UTXO()

		if _, found := claimed[u]; found {
			return errors.NewUtxoErr(errors.ERR_TX_INVALID_DOUBLE_SPEND, u.TxHash, u.Index, i,
				"[ValidateTransaction][%s] input %d claims %s more than once", txHash, i, u)
		}

		claimed[u] = struct{}{}

		output, ok := h.pool.Get(u)
		if !ok || output == nil {
			return errors.NewUtxoErr(errors.ERR_UTXO_NOT_FOUND, u.TxHash, u.Index, i,
				"[ValidateTransaction][%s] input %d claims %s which is not in the utxo pool", txHash, i, u)
		}

		data, err := tx.DataToSign(i)
		if err != nil {
			return errors.NewTxInvalidSignatureError("[ValidateTransaction][%s] could not build signed data for input %d", txHash, i, err)
		}

		if !h.verifier.VerifySignature(output.Address, data, input.Signature) {
			return errors.NewUtxoErr(errors.ERR_TX_INVALID_SIGNATURE, u.TxHash, u.Index, i,
				"[ValidateTransaction][%s] input %d signature does not match the owner of %s", txHash, i, u)
		}

		if inputTotal, ok = addAmount(inputTotal, output.Value); !ok {
			return errors.NewTxInvalidError("[ValidateTransaction][%s] input total overflows at input %d", txHash, i)
		}
	}

	var outputTotal int64

	for i, output := range tx.Outputs {
		if output == nil {
			return errors.NewTxInvalidError("[ValidateTransaction][%s] output %d is nil", txHash, i)
		}

		if output.Value < 0 {
			return errors.NewTxInvalidError("[ValidateTransaction][%s] output %d has negative value %d", txHash, i, output.Value)
		}

		var ok bool
		if outputTotal, ok = addAmount(outputTotal, output.Value); !ok {
			return errors.NewTxInvalidError("[ValidateTransaction][%s] output total overflows at output %d", txHash, i)
		}
	}

	if inputTotal < outputTotal {
		return errors.NewTxInsufficientInputsError("[ValidateTransaction][%s] outputs total %d exceeds inputs total %d", txHash, outputTotal, inputTotal)
	}

	return nil
}

// HandleTxs applies every valid candidate in the given order and returns the accepted
// ones. See ProcessEpoch.
func (h *Handler) HandleTxs(possibleTxs []*model.Tx) []*model.Tx {
	return h.ProcessEpoch(possibleTxs).Accepted
}

// ProcessEpoch makes a single pass over possibleTxs. Each candidate is validated against
// the pool as left by the candidates before it. Valid ones are applied immediately, invalid
// ones leave the pool untouched. A candidate spending an output created by a later
// candidate in the same batch is rejected; there is no reordering and no retry.
func (h *Handler) ProcessEpoch(possibleTxs []*model.Tx) *EpochResult {
	start := time.Now()

	result := &EpochResult{
		Accepted: make([]*model.Tx, 0, len(possibleTxs)),
	}

	for i, tx := range possibleTxs {
		if err := h.ValidateTransaction(tx); err != nil {
			result.Rejected = append(result.Rejected, RejectedTx{Tx: tx, Index: i, Err: err})

			if h.logReject {
				h.logger.Debugf("[ProcessEpoch] rejected candidate %d: %v", i, err)
			}

			if h.metrics {
				prometheusInvalidTransactions.WithLabelValues(errors.CodeOf(err).String()).Inc()
			}

			continue
		}

		if err := h.apply(tx); err != nil {
			// validation passed, so this is a fault in the collaborators
			h.logger.Errorf("[ProcessEpoch] failed to apply candidate %d: %v", i, err)
			result.Rejected = append(result.Rejected, RejectedTx{Tx: tx, Index: i, Err: err})

			continue
		}

		result.Accepted = append(result.Accepted, tx)
	}

	if h.metrics {
		prometheusAcceptedTransactions.Add(float64(len(result.Accepted)))
		prometheusProcessEpoch.Observe(time.Since(start).Seconds())
		prometheusEpochSize.Observe(float64(len(possibleTxs)))
		prometheusPoolSize.Set(float64(h.pool.Len()))
	}

	h.logger.Infof("[ProcessEpoch] %d candidates, %d accepted, %d rejected, %d utxos in pool",
		len(possibleTxs), len(result.Accepted), len(result.Rejected), h.pool.Len())

	return result
}

// apply removes every claimed utxo and adds one per output, keyed by the tx hash.
func (h *Handler) apply(tx *model.Tx) error {
	created := make([]model.UTXO, len(tx.Outputs))

	for i := range tx.Outputs {
		u, err := tx.OutputUTXO(i)
		if err != nil {
			return errors.NewProcessingError("[apply][%s] output %d", tx.TxID(), i, err)
		}

		created[i] = u
	}

	for _, input := range tx.Inputs {
		h.pool.Remove(input.UTXO())
	}

	for i, output := range tx.Outputs {
		h.pool.Add(created[i], output)
	}

	return nil
}

// addAmount returns a+b, and false if the sum does not fit an int64.
func addAmount(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}

	return a + b, true
}
