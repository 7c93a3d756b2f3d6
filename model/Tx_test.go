package model

import (
	"testing"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	bec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/bsv-blockchain/utxoledger/crypto"
	"github.com/bsv-blockchain/utxoledger/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	privateKey, publicKey = bec.PrivateKeyFromBytes([]byte("THIS_IS_A_DETERMINISTIC_PRIVATE_KEY"))
	parentHash            = chainhash.HashH([]byte("parent"))
)

func testTx() *Tx {
	tx := NewTx()
	tx.AddInput(parentHash, 0)
	tx.AddInput(parentHash, 1)
	tx.AddOutput(7, publicKey)
	tx.AddOutput(3, publicKey)

	return tx
}

func TestUTXO(t *testing.T) {
	a := NewUTXO(parentHash, 1)
	b := NewUTXO(parentHash, 1)
	c := NewUTXO(parentHash, 2)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	set := map[UTXO]struct{}{a: {}}
	_, ok := set[b]
	assert.True(t, ok)

	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, 1, c.Compare(a))

	assert.Len(t, a.Bytes(), 36)
	assert.Equal(t, parentHash.String()+":1", a.String())
}

func TestInputUTXO(t *testing.T) {
	input := NewInput(parentHash, 4)
	assert.Equal(t, NewUTXO(parentHash, 4), input.UTXO())
}

func TestOutputClone(t *testing.T) {
	output := NewOutput(10, publicKey)
	clone := output.Clone()

	require.NotSame(t, output, clone)
	assert.Equal(t, output, clone)

	clone.Value = 11
	assert.Equal(t, int64(10), output.Value)

	var nilOutput *Output
	assert.Nil(t, nilOutput.Clone())
	assert.Nil(t, nilOutput.AddressBytes())
}

func TestDataToSign(t *testing.T) {
	tx := testTx()

	data0, err := tx.DataToSign(0)
	require.NoError(t, err)

	data1, err := tx.DataToSign(1)
	require.NoError(t, err)

	assert.NotEqual(t, data0, data1)

	t.Run("excludes signatures", func(t *testing.T) {
		require.NoError(t, tx.Sign(0, privateKey))

		after, err := tx.DataToSign(0)
		require.NoError(t, err)
		assert.Equal(t, data0, after)
	})

	t.Run("covers outputs", func(t *testing.T) {
		other := testTx()
		other.Outputs[1].Value = 4

		otherData, err := other.DataToSign(0)
		require.NoError(t, err)
		assert.NotEqual(t, data0, otherData)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := tx.DataToSign(2)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidArgument))

		_, err = tx.DataToSign(-1)
		require.Error(t, err)
	})
}

func TestSign(t *testing.T) {
	tx := testTx()

	require.NoError(t, tx.Sign(0, privateKey))
	require.NoError(t, tx.Sign(1, privateKey))

	for i, input := range tx.Inputs {
		data, err := tx.DataToSign(i)
		require.NoError(t, err)
		assert.True(t, crypto.VerifySignature(publicKey, data, input.Signature))
	}

	require.Error(t, tx.Sign(5, privateKey))
	require.Error(t, tx.AddSignature([]byte{1}, 5))
}

func TestHash(t *testing.T) {
	tx := testTx()

	first := tx.Hash()
	assert.Equal(t, first, tx.Hash())
	assert.Equal(t, first.String(), tx.TxID())

	t.Run("identical content gives identical hash", func(t *testing.T) {
		assert.Equal(t, first, testTx().Hash())
	})

	t.Run("signatures change the hash", func(t *testing.T) {
		signed := testTx()
		require.NoError(t, signed.Sign(0, privateKey))
		assert.NotEqual(t, first, signed.Hash())
	})

	t.Run("mutation drops the cached hash", func(t *testing.T) {
		mutated := testTx()
		mutated.Finalize()
		before := mutated.Hash()

		mutated.AddOutput(1, publicKey)
		assert.NotEqual(t, before, mutated.Hash())

		require.NoError(t, mutated.RemoveInput(1))
		assert.Len(t, mutated.Inputs, 1)
		require.Error(t, mutated.RemoveInput(3))
	})
}

func TestOutputUTXO(t *testing.T) {
	tx := testTx()

	u, err := tx.OutputUTXO(1)
	require.NoError(t, err)
	assert.Equal(t, NewUTXO(tx.Hash(), 1), u)

	_, err = tx.OutputUTXO(2)
	require.Error(t, err)
}

func TestBytesNilOutput(t *testing.T) {
	tx := testTx()
	tx.Outputs = append(tx.Outputs, nil)

	require.NotPanics(t, func() {
		_ = tx.Bytes()
		_, _ = tx.DataToSign(0)
	})
}

func TestNilInput(t *testing.T) {
	tx := testTx()
	tx.Inputs = append(tx.Inputs, nil)

	require.NotPanics(t, func() {
		_ = tx.Bytes()
		_ = tx.Hash()
		_, _ = tx.DataToSign(2)
	})

	// a nil input serializes like the zero outpoint without a signature
	zero := testTx()
	zero.AddInput(chainhash.Hash{}, 0)
	assert.Equal(t, zero.Bytes(), tx.Bytes())

	require.Error(t, tx.AddSignature([]byte{1}, 2))
	require.Error(t, tx.Sign(2, privateKey))
}
