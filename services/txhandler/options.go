package txhandler

import (
	"github.com/bsv-blockchain/utxoledger/crypto"
	"github.com/bsv-blockchain/utxoledger/stores/utxo"
)

// PoolFactory turns the pool handed to New into the pool the handler owns. The result must
// share no state with src.
type PoolFactory func(src utxo.Pool) utxo.Pool

type Options struct {
	verifier    crypto.Verifier
	poolFactory PoolFactory
}

// Option is a function that sets some option on the Options struct
type Option func(*Options)

func NewDefaultOptions() *Options {
	return &Options{
		verifier: crypto.DefaultVerifier,
		poolFactory: func(src utxo.Pool) utxo.Pool {
			return src.Clone()
		},
	}
}

func ProcessOptions(opts ...Option) *Options {
	options := NewDefaultOptions()
	for _, o := range opts {
		o(options)
	}

	return options
}

// WithSignatureVerifier replaces the signature check used by validation
func WithSignatureVerifier(verifier crypto.Verifier) Option {
	return func(o *Options) {
		if verifier != nil {
			o.verifier = verifier
		}
	}
}

// WithPoolFactory replaces the default Clone of the initial pool, e.g. to move the state
// into a different pool implementation
func WithPoolFactory(factory PoolFactory) Option {
	return func(o *Options) {
		if factory != nil {
			o.poolFactory = factory
		}
	}
}
