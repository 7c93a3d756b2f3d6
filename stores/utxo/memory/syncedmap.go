package memory

import (
	txmap "github.com/bsv-blockchain/go-tx-map"
	"github.com/bsv-blockchain/utxoledger/model"
	"github.com/bsv-blockchain/utxoledger/stores/utxo"
)

// SyncedMap is a Pool that is safe for concurrent use. It is meant for seed pools that
// several goroutines clone handlers from.
type SyncedMap struct {
	m *txmap.SyncedMap[model.UTXO, *model.Output]
}

func NewSyncedMap() *SyncedMap {
	return &SyncedMap{
		m: txmap.NewSyncedMap[model.UTXO, *model.Output](),
	}
}

func (m *SyncedMap) Contains(u model.UTXO) bool {
	return m.m.Exists(u)
}

func (m *SyncedMap) Get(u model.UTXO) (*model.Output, bool) {
	return m.m.Get(u)
}

func (m *SyncedMap) Add(u model.UTXO, output *model.Output) {
	m.m.Set(u, output.Clone())
}

func (m *SyncedMap) Remove(u model.UTXO) {
	m.m.Delete(u)
}

func (m *SyncedMap) Clone() utxo.Pool {
	clone := NewSyncedMap()

	for u, output := range m.m.Range() {
		clone.m.Set(u, output.Clone())
	}

	return clone
}

func (m *SyncedMap) Len() int {
	return m.m.Length()
}

func (m *SyncedMap) UTXOs() []model.UTXO {
	items := m.m.Range()
	utxos := make([]model.UTXO, 0, len(items))

	for u := range items {
		utxos = append(utxos, u)
	}

	utxo.SortUTXOs(utxos)

	return utxos
}
