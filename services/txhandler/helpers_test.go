package txhandler

import (
	"testing"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	bec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/bsv-blockchain/utxoledger/model"
	"github.com/bsv-blockchain/utxoledger/settings"
	"github.com/bsv-blockchain/utxoledger/stores/utxo"
	"github.com/bsv-blockchain/utxoledger/stores/utxo/memory"
	"github.com/stretchr/testify/require"
)

var (
	privKey1, pubKey1 = bec.PrivateKeyFromBytes([]byte("THIS_IS_A_DETERMINISTIC_PRIVATE_KEY_1"))
	privKey2, pubKey2 = bec.PrivateKeyFromBytes([]byte("THIS_IS_A_DETERMINISTIC_PRIVATE_KEY_2"))

	genesisHash = chainhash.HashH([]byte("genesis"))

	// U1 is worth 10 and owned by key 1, U2 is worth 5 and owned by key 2
	U1 = model.NewUTXO(genesisHash, 0)
	U2 = model.NewUTXO(genesisHash, 1)
)

func testSettings() *settings.Settings {
	return &settings.Settings{
		ClientName: "test",
		UtxoPool: settings.UtxoPoolSettings{
			Type: "map",
		},
		TxHandler: settings.TxHandlerSettings{
			LogRejections:  true,
			MetricsEnabled: true,
		},
	}
}

func seedPool() utxo.Pool {
	pool := memory.NewMap(0)
	pool.Add(U1, model.NewOutput(10, pubKey1))
	pool.Add(U2, model.NewOutput(5, pubKey2))

	return pool
}

type claim struct {
	utxo model.UTXO
	key  *bec.PrivateKey
}

// signedTx builds a transaction claiming each utxo and paying outputs, with input i signed
// by claims[i].key. A nil key leaves the input unsigned.
func signedTx(t *testing.T, claims []claim, outputs ...*model.Output) *model.Tx {
	t.Helper()

	tx := model.NewTx()

	for _, c := range claims {
		tx.AddInput(c.utxo.TxHash, c.utxo.Index)
	}

	tx.Outputs = append(tx.Outputs, outputs...)

	for i, c := range claims {
		if c.key == nil {
			continue
		}

		require.NoError(t, tx.Sign(i, c.key))
	}

	return tx
}

func outputUTXO(t *testing.T, tx *model.Tx, index int) model.UTXO {
	t.Helper()

	u, err := tx.OutputUTXO(index)
	require.NoError(t, err)

	return u
}
