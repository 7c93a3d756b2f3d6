package model

import (
	"bytes"
	"encoding/binary"

	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	safeconversion "github.com/bsv-blockchain/go-safe-conversion"
	bec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/bsv-blockchain/utxoledger/crypto"
	"github.com/bsv-blockchain/utxoledger/errors"
)

// Tx is an ordered list of inputs and outputs. Its identity is the double SHA-256 of Bytes().
//
// The hash is cached by Finalize and dropped by every mutation, so Hash always reflects the
// current contents.
type Tx struct {
	Inputs  []*Input
	Outputs []*Output

	hash *chainhash.Hash
}

func NewTx() *Tx {
	return &Tx{
		Inputs:  make([]*Input, 0),
		Outputs: make([]*Output, 0),
	}
}

func (tx *Tx) AddInput(prevTxHash chainhash.Hash, outputIndex uint32) {
	tx.Inputs = append(tx.Inputs, NewInput(prevTxHash, outputIndex))
	tx.hash = nil
}

func (tx *Tx) AddOutput(value int64, address *bec.PublicKey) {
	tx.Outputs = append(tx.Outputs, NewOutput(value, address))
	tx.hash = nil
}

func (tx *Tx) RemoveInput(index int) error {
	if index < 0 || index >= len(tx.Inputs) {
		return errors.NewInvalidArgumentError("input index %d out of range [0,%d)", index, len(tx.Inputs))
	}

	tx.Inputs = append(tx.Inputs[:index], tx.Inputs[index+1:]...)
	tx.hash = nil

	return nil
}

func (tx *Tx) AddSignature(signature []byte, index int) error {
	if index < 0 || index >= len(tx.Inputs) {
		return errors.NewInvalidArgumentError("input index %d out of range [0,%d)", index, len(tx.Inputs))
	}

	if tx.Inputs[index] == nil {
		return errors.NewInvalidArgumentError("input %d is nil", index)
	}

	tx.Inputs[index].Signature = signature
	tx.hash = nil

	return nil
}

// Sign signs DataToSign(index) with privateKey and stores the signature on that input.
func (tx *Tx) Sign(index int, privateKey *bec.PrivateKey) error {
	data, err := tx.DataToSign(index)
	if err != nil {
		return err
	}

	signature, err := crypto.Sign(privateKey, data)
	if err != nil {
		return errors.NewProcessingError("failed to sign input %d", index, err)
	}

	return tx.AddSignature(signature, index)
}

// DataToSign returns the payload the signature of input index must cover: the outpoint that
// input claims followed by every output. Signatures are not part of it.
func (tx *Tx) DataToSign(index int) ([]byte, error) {
	if index < 0 || index >= len(tx.Inputs) {
		return nil, errors.NewInvalidArgumentError("input index %d out of range [0,%d)", index, len(tx.Inputs))
	}

	buf := bytes.NewBuffer(make([]byte, 0, 36+9+len(tx.Outputs)*42))

	writeOutpoint(buf, tx.Inputs[index])
	writeOutputs(buf, tx.Outputs)

	return buf.Bytes(), nil
}

// Bytes serializes the whole transaction, signatures included.
func (tx *Tx) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, 9+len(tx.Inputs)*110+9+len(tx.Outputs)*42))

	buf.Write(bt.VarInt(uint64(len(tx.Inputs))).Bytes())

	for _, input := range tx.Inputs {
		writeOutpoint(buf, input)

		var signature []byte
		if input != nil {
			signature = input.Signature
		}

		buf.Write(bt.VarInt(uint64(len(signature))).Bytes())
		buf.Write(signature)
	}

	writeOutputs(buf, tx.Outputs)

	return buf.Bytes()
}

// Finalize computes and caches the hash.
func (tx *Tx) Finalize() {
	hash := chainhash.DoubleHashH(tx.Bytes())
	tx.hash = &hash
}

func (tx *Tx) Hash() chainhash.Hash {
	if tx.hash == nil {
		tx.Finalize()
	}

	return *tx.hash
}

func (tx *Tx) TxID() string {
	hash := tx.Hash()
	return hash.String()
}

// OutputUTXO returns the identity the output at index receives once tx is applied.
func (tx *Tx) OutputUTXO(index int) (UTXO, error) {
	if index < 0 || index >= len(tx.Outputs) {
		return UTXO{}, errors.NewInvalidArgumentError("output index %d out of range [0,%d)", index, len(tx.Outputs))
	}

	idx, err := safeconversion.IntToUint32(index)
	if err != nil {
		return UTXO{}, errors.NewInvalidArgumentError("output index %d does not fit an outpoint", index, err)
	}

	return NewUTXO(tx.Hash(), idx), nil
}

// writeOutpoint writes a nil input as the zero outpoint.
func writeOutpoint(buf *bytes.Buffer, input *Input) {
	var (
		index [4]byte
		hash  chainhash.Hash
	)

	if input != nil {
		binary.LittleEndian.PutUint32(index[:], input.OutputIndex)
		hash = input.PrevTxHash
	}

	buf.Write(hash[:])
	buf.Write(index[:])
}

func writeOutputs(buf *bytes.Buffer, outputs []*Output) {
	var value [8]byte

	buf.Write(bt.VarInt(uint64(len(outputs))).Bytes())

	for _, output := range outputs {
		var v int64
		if output != nil {
			v = output.Value
		}

		binary.LittleEndian.PutUint64(value[:], uint64(v))
		buf.Write(value[:])

		address := output.AddressBytes()
		buf.Write(bt.VarInt(uint64(len(address))).Bytes())
		buf.Write(address)
	}
}
