package memory

import (
	"github.com/bsv-blockchain/utxoledger/model"
	"github.com/bsv-blockchain/utxoledger/stores/utxo"
	"github.com/dolthub/swiss"
)

// SwissMap is a Pool over a swiss table. It is not safe for concurrent use.
type SwissMap struct {
	m *swiss.Map[model.UTXO, *model.Output]
}

func NewSwissMap(capacity int) *SwissMap {
	// the swiss map uses a lot less memory than the standard map
	return &SwissMap{
		m: swiss.NewMap[model.UTXO, *model.Output](swissCapacity(capacity)),
	}
}

func swissCapacity(capacity int) uint32 {
	switch {
	case capacity <= 0:
		return 1
	case uint64(capacity) > uint64(^uint32(0)):
		return ^uint32(0)
	default:
		return uint32(capacity)
	}
}

func (m *SwissMap) Contains(u model.UTXO) bool {
	return m.m.Has(u)
}

func (m *SwissMap) Get(u model.UTXO) (*model.Output, bool) {
	return m.m.Get(u)
}

func (m *SwissMap) Add(u model.UTXO, output *model.Output) {
	m.m.Put(u, output.Clone())
}

func (m *SwissMap) Remove(u model.UTXO) {
	m.m.Delete(u)
}

func (m *SwissMap) Clone() utxo.Pool {
	clone := NewSwissMap(m.m.Count())

	m.m.Iter(func(u model.UTXO, output *model.Output) bool {
		clone.m.Put(u, output.Clone())
		return false
	})

	return clone
}

func (m *SwissMap) Len() int {
	return m.m.Count()
}

func (m *SwissMap) UTXOs() []model.UTXO {
	utxos := make([]model.UTXO, 0, m.m.Count())

	m.m.Iter(func(u model.UTXO, _ *model.Output) bool {
		utxos = append(utxos, u)
		return false
	})

	utxo.SortUTXOs(utxos)

	return utxos
}
