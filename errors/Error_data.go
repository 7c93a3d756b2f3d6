package errors

import (
	"encoding/json"
	"fmt"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
)

// ErrDataI is an interface for error data that can be set, retrieved, and encoded.
type ErrDataI interface {
	EncodeErrorData() []byte
	Error() string
	GetData(key string) interface{}
	SetData(key string, value interface{})
}

// ErrData is a generic error data structure that implements the ErrDataI interface.
type ErrData map[string]interface{}

// Error returns a string representation of the error data.
func (e *ErrData) Error() string {
	return fmt.Sprintf(" %v", *e)
}

// SetData sets a key-value pair in the error data.
func (e *ErrData) SetData(key string, value interface{}) {
	if e == nil {
		return
	}

	(*e)[key] = value
}

// GetData retrieves the value associated with a key in the error data.
func (e *ErrData) GetData(key string) interface{} {
	if e == nil {
		return nil
	}

	return (*e)[key]
}

// EncodeErrorData encodes the error data to a byte slice using JSON encoding.
func (e *ErrData) EncodeErrorData() []byte {
	data, err := json.Marshal(e)
	if err != nil {
		return []byte{}
	}

	return data
}

// UtxoErrData identifies the outpoint an input error refers to.
type UtxoErrData struct {
	TxHash     chainhash.Hash
	Index      uint32
	InputIndex int
}

func (e *UtxoErrData) Error() string {
	return fmt.Sprintf("input %d claims utxo %s:%d", e.InputIndex, e.TxHash, e.Index)
}

func (e *UtxoErrData) SetData(string, interface{}) {}

func (e *UtxoErrData) GetData(key string) interface{} {
	switch key {
	case "txHash":
		return e.TxHash
	case "index":
		return e.Index
	case "inputIndex":
		return e.InputIndex
	default:
		return nil
	}
}

func (e *UtxoErrData) EncodeErrorData() []byte {
	data, err := json.Marshal(struct {
		TxHash     string `json:"txHash"`
		Index      uint32 `json:"index"`
		InputIndex int    `json:"inputIndex"`
	}{e.TxHash.String(), e.Index, e.InputIndex})
	if err != nil {
		return []byte{}
	}

	return data
}

// NewUtxoErr creates an error of the given code carrying the claimed outpoint as data.
func NewUtxoErr(code ERR, txHash chainhash.Hash, index uint32, inputIndex int, message string, params ...interface{}) error {
	return NewWithData(code, &UtxoErrData{TxHash: txHash, Index: index, InputIndex: inputIndex}, message, params...)
}

// GetErrorData decodes error data for the given code.
func GetErrorData(code ERR, dataBytes []byte) (ErrDataI, error) {
	switch code {
	case ERR_UTXO_NOT_FOUND, ERR_TX_INVALID_DOUBLE_SPEND, ERR_TX_INVALID_SIGNATURE:
		var raw struct {
			TxHash     string `json:"txHash"`
			Index      uint32 `json:"index"`
			InputIndex int    `json:"inputIndex"`
		}

		if err := json.Unmarshal(dataBytes, &raw); err != nil {
			return nil, err
		}

		hash, err := chainhash.NewHashFromStr(raw.TxHash)
		if err != nil {
			return nil, err
		}

		return &UtxoErrData{TxHash: *hash, Index: raw.Index, InputIndex: raw.InputIndex}, nil

	default:
		errData := &ErrData{}
		if err := json.Unmarshal(dataBytes, errData); err != nil {
			return errData, err
		}

		return errData, nil
	}
}
