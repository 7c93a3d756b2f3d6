// Package utxo defines the pool of unspent transaction outputs the transaction handler
// validates against and mutates.
package utxo

import (
	"slices"

	"github.com/bsv-blockchain/utxoledger/model"
)

// Pool maps UTXO identities to the outputs they represent. It is the sole record of what
// is currently spendable.
//
// Implementations are not required to be safe for concurrent use unless documented.
type Pool interface {
	// Contains reports whether u is currently spendable.
	Contains(u model.UTXO) bool

	// Get returns the output for u. The second return value is false when u is absent.
	Get(u model.UTXO) (*model.Output, bool)

	// Add inserts or overwrites the output for u.
	Add(u model.UTXO, output *model.Output)

	// Remove deletes u. It is a no-op when u is absent.
	Remove(u model.UTXO)

	// Clone returns a deep copy. Mutating either pool afterwards does not affect the other.
	Clone() Pool

	// Len returns the number of entries.
	Len() int

	// UTXOs returns every identity in the pool, sorted.
	UTXOs() []model.UTXO
}

// SortUTXOs sorts identities by hash bytes, then index.
func SortUTXOs(utxos []model.UTXO) {
	slices.SortFunc(utxos, func(a, b model.UTXO) int {
		return a.Compare(b)
	})
}

// CopyInto adds every entry of src to dst, cloning the outputs.
func CopyInto(dst Pool, src Pool) {
	for _, u := range src.UTXOs() {
		if output, ok := src.Get(u); ok {
			dst.Add(u, output.Clone())
		}
	}
}

// TotalValue sums the values of every output in the pool.
func TotalValue(pool Pool) int64 {
	var total int64

	for _, u := range pool.UTXOs() {
		if output, ok := pool.Get(u); ok {
			total += output.Value
		}
	}

	return total
}
