// Package memory provides in-process Pool implementations.
package memory

import (
	"github.com/bsv-blockchain/utxoledger/model"
	"github.com/bsv-blockchain/utxoledger/stores/utxo"
)

// Map is a Pool over a builtin Go map. It is not safe for concurrent use.
type Map struct {
	m map[model.UTXO]*model.Output
}

func NewMap(capacity int) *Map {
	if capacity < 0 {
		capacity = 0
	}

	return &Map{
		m: make(map[model.UTXO]*model.Output, capacity),
	}
}

func (m *Map) Contains(u model.UTXO) bool {
	_, ok := m.m[u]
	return ok
}

func (m *Map) Get(u model.UTXO) (*model.Output, bool) {
	output, ok := m.m[u]
	return output, ok
}

func (m *Map) Add(u model.UTXO, output *model.Output) {
	m.m[u] = output.Clone()
}

func (m *Map) Remove(u model.UTXO) {
	delete(m.m, u)
}

func (m *Map) Clone() utxo.Pool {
	clone := NewMap(len(m.m))

	for u, output := range m.m {
		clone.m[u] = output.Clone()
	}

	return clone
}

func (m *Map) Len() int {
	return len(m.m)
}

func (m *Map) UTXOs() []model.UTXO {
	utxos := make([]model.UTXO, 0, len(m.m))

	for u := range m.m {
		utxos = append(utxos, u)
	}

	utxo.SortUTXOs(utxos)

	return utxos
}
