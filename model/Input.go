package model

import (
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
)

// Input claims the output PrevTxHash:OutputIndex and carries the signature over the
// spending transaction's DataToSign for this input's position.
type Input struct {
	PrevTxHash  chainhash.Hash
	OutputIndex uint32
	Signature   []byte
}

func NewInput(prevTxHash chainhash.Hash, outputIndex uint32) *Input {
	return &Input{PrevTxHash: prevTxHash, OutputIndex: outputIndex}
}

// UTXO returns the identity of the output this input claims.
func (i *Input) UTXO() UTXO {
	return NewUTXO(i.PrevTxHash, i.OutputIndex)
}
