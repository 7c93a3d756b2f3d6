package model

import (
	bec "github.com/bsv-blockchain/go-sdk/primitives/ec"
)

// Output is a value claimable by the holder of the private key for Address.
//
// Value is in the smallest unit of account. It is signed so that a negative declared value
// can be represented and rejected by validation.
type Output struct {
	Value   int64
	Address *bec.PublicKey
}

func NewOutput(value int64, address *bec.PublicKey) *Output {
	return &Output{Value: value, Address: address}
}

// Clone returns a copy that shares nothing mutable with o. Public keys are never mutated
// and are shared by pointer.
func (o *Output) Clone() *Output {
	if o == nil {
		return nil
	}

	return &Output{Value: o.Value, Address: o.Address}
}

// AddressBytes returns the compressed public key, or nil when no address is set.
func (o *Output) AddressBytes() []byte {
	if o == nil || o.Address == nil {
		return nil
	}

	return o.Address.Compressed()
}
