package model

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
)

// UTXO identifies an output by the hash of the transaction that created it and the
// position of the output in that transaction. It is comparable and used directly as a
// map key.
type UTXO struct {
	TxHash chainhash.Hash
	Index  uint32
}

func NewUTXO(txHash chainhash.Hash, index uint32) UTXO {
	return UTXO{TxHash: txHash, Index: index}
}

func (u UTXO) String() string {
	return fmt.Sprintf("%s:%d", u.TxHash.String(), u.Index)
}

// Bytes returns the fixed-size 36 byte key: 32 bytes of hash followed by the big endian index.
func (u UTXO) Bytes() []byte {
	var key [36]byte

	copy(key[:32], u.TxHash[:])
	binary.BigEndian.PutUint32(key[32:], u.Index)

	return key[:]
}

// Compare orders identities by hash bytes, then by index.
func (u UTXO) Compare(other UTXO) int {
	if c := bytes.Compare(u.TxHash[:], other.TxHash[:]); c != 0 {
		return c
	}

	switch {
	case u.Index < other.Index:
		return -1
	case u.Index > other.Index:
		return 1
	default:
		return 0
	}
}
