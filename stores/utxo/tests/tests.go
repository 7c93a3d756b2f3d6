// Package tests holds the behaviour every Pool implementation must share.
package tests

import (
	"testing"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	bec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/bsv-blockchain/utxoledger/model"
	"github.com/bsv-blockchain/utxoledger/stores/utxo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_, PublicKey = bec.PrivateKeyFromBytes([]byte("THIS_IS_A_DETERMINISTIC_PRIVATE_KEY"))

	Hash1 = chainhash.HashH([]byte("tx1"))
	Hash2 = chainhash.HashH([]byte("tx2"))

	UTXO1 = model.NewUTXO(Hash1, 0)
	UTXO2 = model.NewUTXO(Hash1, 1)
	UTXO3 = model.NewUTXO(Hash2, 0)
)

// Pool runs the shared contract against pools built by newPool.
func Pool(t *testing.T, newPool func() utxo.Pool) {
	t.Run("add get contains", func(t *testing.T) {
		AddGetContains(t, newPool())
	})

	t.Run("remove", func(t *testing.T) {
		Remove(t, newPool())
	})

	t.Run("overwrite", func(t *testing.T) {
		Overwrite(t, newPool())
	})

	t.Run("add copies output", func(t *testing.T) {
		AddCopiesOutput(t, newPool())
	})

	t.Run("clone is independent", func(t *testing.T) {
		CloneIsIndependent(t, newPool())
	})

	t.Run("utxos sorted", func(t *testing.T) {
		UTXOsSorted(t, newPool())
	})
}

func AddGetContains(t *testing.T, pool utxo.Pool) {
	assert.Equal(t, 0, pool.Len())
	assert.False(t, pool.Contains(UTXO1))

	output, ok := pool.Get(UTXO1)
	assert.False(t, ok)
	assert.Nil(t, output)

	pool.Add(UTXO1, model.NewOutput(10, PublicKey))

	assert.True(t, pool.Contains(UTXO1))
	assert.True(t, pool.Contains(model.NewUTXO(Hash1, 0)))
	assert.False(t, pool.Contains(UTXO2))
	assert.Equal(t, 1, pool.Len())

	output, ok = pool.Get(UTXO1)
	require.True(t, ok)
	assert.Equal(t, int64(10), output.Value)
	assert.Equal(t, PublicKey.Compressed(), output.AddressBytes())
}

func Remove(t *testing.T, pool utxo.Pool) {
	pool.Add(UTXO1, model.NewOutput(10, PublicKey))
	pool.Add(UTXO2, model.NewOutput(5, PublicKey))

	pool.Remove(UTXO1)
	assert.False(t, pool.Contains(UTXO1))
	assert.True(t, pool.Contains(UTXO2))
	assert.Equal(t, 1, pool.Len())

	// removing an absent entry is a no-op
	pool.Remove(UTXO3)
	pool.Remove(UTXO1)
	assert.Equal(t, 1, pool.Len())
}

func Overwrite(t *testing.T, pool utxo.Pool) {
	pool.Add(UTXO1, model.NewOutput(10, PublicKey))
	pool.Add(UTXO1, model.NewOutput(20, PublicKey))

	assert.Equal(t, 1, pool.Len())

	output, ok := pool.Get(UTXO1)
	require.True(t, ok)
	assert.Equal(t, int64(20), output.Value)
}

func AddCopiesOutput(t *testing.T, pool utxo.Pool) {
	output := model.NewOutput(10, PublicKey)
	pool.Add(UTXO1, output)

	output.Value = 99

	stored, ok := pool.Get(UTXO1)
	require.True(t, ok)
	assert.Equal(t, int64(10), stored.Value)
}

func CloneIsIndependent(t *testing.T, pool utxo.Pool) {
	pool.Add(UTXO1, model.NewOutput(10, PublicKey))
	pool.Add(UTXO2, model.NewOutput(5, PublicKey))

	clone := pool.Clone()
	require.Equal(t, pool.UTXOs(), clone.UTXOs())

	clone.Remove(UTXO1)
	clone.Add(UTXO3, model.NewOutput(1, PublicKey))

	assert.True(t, pool.Contains(UTXO1))
	assert.False(t, pool.Contains(UTXO3))
	assert.Equal(t, 2, pool.Len())

	pool.Remove(UTXO2)
	assert.True(t, clone.Contains(UTXO2))
	assert.Equal(t, 2, clone.Len())

	second := pool.Clone()

	cloned, ok := second.Get(UTXO1)
	require.True(t, ok)

	cloned.Value = 77

	stored, ok := pool.Get(UTXO1)
	require.True(t, ok)
	assert.Equal(t, int64(10), stored.Value)
}

func UTXOsSorted(t *testing.T, pool utxo.Pool) {
	assert.Empty(t, pool.UTXOs())

	pool.Add(UTXO3, model.NewOutput(1, PublicKey))
	pool.Add(UTXO2, model.NewOutput(1, PublicKey))
	pool.Add(UTXO1, model.NewOutput(1, PublicKey))

	utxos := pool.UTXOs()
	require.Len(t, utxos, 3)

	for i := 1; i < len(utxos); i++ {
		assert.Equal(t, -1, utxos[i-1].Compare(utxos[i]))
	}

	assert.Equal(t, int64(3), utxo.TotalValue(pool))
}
