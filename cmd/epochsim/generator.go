package main

import (
	"math/rand/v2"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/utxoledger/model"
	"github.com/bsv-blockchain/utxoledger/stores/utxo"
)

type invalidKind int

const (
	invalidDoubleClaim invalidKind = iota
	invalidUnknownUTXO
	invalidSignature
	invalidNegativeOutput
	invalidOverspend
	invalidKinds
)

// generator builds the candidates of one epoch. It tracks the pool the handler will see
// as valid candidates are applied in order, so later candidates can spend earlier ones.
type generator struct {
	rng          *rand.Rand
	w            *wallet
	view         utxo.Pool
	invalidRatio float64
	valid        int
}

func newGenerator(rng *rand.Rand, w *wallet, view utxo.Pool, invalidRatio float64) *generator {
	return &generator{
		rng:          rng,
		w:            w,
		view:         view,
		invalidRatio: invalidRatio,
	}
}

func (g *generator) epoch(n int) []*model.Tx {
	txs := make([]*model.Tx, 0, n)

	for i := 0; i < n; i++ {
		if g.view.Len() == 0 || g.rng.Float64() < g.invalidRatio {
			txs = append(txs, g.invalid(invalidKind(g.rng.IntN(int(invalidKinds)))))
			continue
		}

		txs = append(txs, g.validTx())
	}

	return txs
}

func (g *generator) pick() (model.UTXO, *model.Output) {
	utxos := g.view.UTXOs()
	u := utxos[g.rng.IntN(len(utxos))]
	output, _ := g.view.Get(u)

	return u, output
}

// validTx spends one or two outputs of the view into one or two new outputs, leaving a
// random surplus unclaimed.
func (g *generator) validTx() *model.Tx {
	tx := model.NewTx()

	claims := []model.UTXO{}
	owners := []*model.Output{}

	var total int64

	inputs := min(1+g.rng.IntN(2), g.view.Len())

	for i := 0; i < inputs; i++ {
		u, output := g.pick()

		if len(claims) == 1 && claims[0] == u {
			break
		}

		claims = append(claims, u)
		owners = append(owners, output)
		total += output.Value
	}

	for _, u := range claims {
		tx.AddInput(u.TxHash, u.Index)
	}

	spend := total
	if total > 0 {
		spend -= g.rng.Int64N(total/10 + 1)
	}

	if spend > 1 && g.rng.IntN(2) == 0 {
		first := g.rng.Int64N(spend)
		tx.AddOutput(first, g.w.randomAddress(g.rng))
		tx.AddOutput(spend-first, g.w.randomAddress(g.rng))
	} else {
		tx.AddOutput(spend, g.w.randomAddress(g.rng))
	}

	for i, output := range owners {
		_ = tx.Sign(i, g.w.owner(output))
	}

	for _, u := range claims {
		g.view.Remove(u)
	}

	for i, output := range tx.Outputs {
		u, _ := tx.OutputUTXO(i)
		g.view.Add(u, output)
	}

	g.valid++

	return tx
}

// invalid builds a candidate that fails validation for the given reason. The view is not
// touched.
func (g *generator) invalid(kind invalidKind) *model.Tx {
	tx := model.NewTx()

	if g.view.Len() == 0 {
		kind = invalidUnknownUTXO
	}

	switch kind {
	case invalidUnknownUTXO:
		tx.AddInput(chainhash.HashH([]byte{byte(g.rng.IntN(256)), byte(g.rng.IntN(256)), 0xee}), g.rng.Uint32())
		tx.AddOutput(1, g.w.randomAddress(g.rng))
		_ = tx.Sign(0, g.w.outsider)

		return tx

	case invalidDoubleClaim:
		u, output := g.pick()
		tx.AddInput(u.TxHash, u.Index)
		tx.AddInput(u.TxHash, u.Index)
		tx.AddOutput(output.Value, g.w.randomAddress(g.rng))
		_ = tx.Sign(0, g.w.owner(output))
		_ = tx.Sign(1, g.w.owner(output))

		return tx
	}

	u, output := g.pick()
	tx.AddInput(u.TxHash, u.Index)

	signer := g.w.owner(output)

	switch kind {
	case invalidSignature:
		tx.AddOutput(output.Value, g.w.randomAddress(g.rng))
		signer = g.w.outsider
	case invalidNegativeOutput:
		tx.AddOutput(output.Value+1, g.w.randomAddress(g.rng))
		tx.AddOutput(-1, g.w.randomAddress(g.rng))
	default:
		tx.AddOutput(output.Value+1, g.w.randomAddress(g.rng))
	}

	_ = tx.Sign(0, signer)

	return tx
}
