// Package factory builds the Pool implementation selected in settings.
package factory

import (
	"github.com/bsv-blockchain/utxoledger/errors"
	"github.com/bsv-blockchain/utxoledger/settings"
	"github.com/bsv-blockchain/utxoledger/stores/utxo"
	"github.com/bsv-blockchain/utxoledger/stores/utxo/logger"
	"github.com/bsv-blockchain/utxoledger/stores/utxo/memory"
	"github.com/bsv-blockchain/utxoledger/ulogger"
)

const (
	TypeMap    = "map"
	TypeSwiss  = "swiss"
	TypeSynced = "synced"
)

// New returns an empty pool of the type named by tSettings.UtxoPool.Type, wrapped in the
// logging decorator when tSettings.UtxoPool.Logging is set.
func New(log ulogger.Logger, tSettings *settings.Settings) (utxo.Pool, error) {
	if tSettings == nil {
		return nil, errors.NewInvalidArgumentError("[UTXOPool] settings are required")
	}

	var pool utxo.Pool

	capacity := tSettings.UtxoPool.InitialCapacity

	switch tSettings.UtxoPool.Type {
	case TypeMap, "":
		pool = memory.NewMap(capacity)
	case TypeSwiss:
		pool = memory.NewSwissMap(capacity)
	case TypeSynced:
		pool = memory.NewSyncedMap()
	default:
		return nil, errors.NewConfigurationError("[UTXOPool] unknown utxo pool type %q", tSettings.UtxoPool.Type)
	}

	if tSettings.UtxoPool.Logging {
		log.Infof("[UTXOPool] using logging pool over %s", tSettings.UtxoPool.Type)
		pool = logger.New(log.New("utxo"), pool)
	}

	return pool, nil
}

// NewFrom builds a pool like New and fills it with a copy of every entry in src.
func NewFrom(log ulogger.Logger, tSettings *settings.Settings, src utxo.Pool) (utxo.Pool, error) {
	pool, err := New(log, tSettings)
	if err != nil {
		return nil, err
	}

	if src != nil {
		utxo.CopyInto(pool, src)
	}

	return pool, nil
}
