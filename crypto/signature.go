// Package crypto holds the signature primitive the ledger authenticates inputs with:
// ECDSA over secp256k1 on the double SHA-256 of the signed payload, DER encoded.
package crypto

import (
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	bec "github.com/bsv-blockchain/go-sdk/primitives/ec"
)

// Verifier checks that signature was produced over payload by the key behind address.
type Verifier interface {
	VerifySignature(address *bec.PublicKey, payload []byte, signature []byte) bool
}

// VerifierFunc adapts a plain function to Verifier.
type VerifierFunc func(address *bec.PublicKey, payload []byte, signature []byte) bool

func (f VerifierFunc) VerifySignature(address *bec.PublicKey, payload []byte, signature []byte) bool {
	return f(address, payload, signature)
}

// DefaultVerifier verifies with VerifySignature.
var DefaultVerifier Verifier = VerifierFunc(VerifySignature)

func VerifySignature(address *bec.PublicKey, payload []byte, signature []byte) bool {
	if address == nil || len(signature) == 0 {
		return false
	}

	sig, err := bec.ParseDERSignature(signature)
	if err != nil {
		return false
	}

	return sig.Verify(chainhash.DoubleHashB(payload), address)
}

// Sign returns the DER encoded signature of privateKey over payload.
func Sign(privateKey *bec.PrivateKey, payload []byte) ([]byte, error) {
	sig, err := privateKey.Sign(chainhash.DoubleHashB(payload))
	if err != nil {
		return nil, err
	}

	return sig.Serialize(), nil
}
