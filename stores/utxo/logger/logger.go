// Package logger wraps a Pool and logs every mutation together with its call site.
package logger

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bsv-blockchain/utxoledger/model"
	"github.com/bsv-blockchain/utxoledger/stores/utxo"
	"github.com/bsv-blockchain/utxoledger/ulogger"
)

type Pool struct {
	logger ulogger.Logger
	pool   utxo.Pool
}

func New(logger ulogger.Logger, pool utxo.Pool) utxo.Pool {
	return &Pool{
		logger: logger,
		pool:   pool,
	}
}

func caller() string {
	var callers []string

	depth := 3

	for i := 0; i < depth; i++ {
		pc, file, line, ok := runtime.Caller(2 + i)
		if !ok {
			break
		}

		// trim everything up to and including the module directory
		folders := strings.Split(file, string(filepath.Separator))
		for j, folder := range folders {
			if folder == "utxoledger" {
				folders = folders[j+1:]
				break
			}
		}

		file = filepath.Join(folders...)

		funcName := runtime.FuncForPC(pc).Name()
		funcPaths := strings.Split(funcName, "/")
		funcName = funcPaths[len(funcPaths)-1]

		callers = append(callers, fmt.Sprintf("called from %s: %s:%d", funcName, file, line))
	}

	return strings.Join(callers, ",")
}

func (p *Pool) Contains(u model.UTXO) bool {
	return p.pool.Contains(u)
}

func (p *Pool) Get(u model.UTXO) (*model.Output, bool) {
	return p.pool.Get(u)
}

func (p *Pool) Add(u model.UTXO, output *model.Output) {
	var value int64
	if output != nil {
		value = output.Value
	}

	p.pool.Add(u, output)
	p.logger.Debugf("[UTXOPool][logger][Add] %s value %d : %s", u, value, caller())
}

func (p *Pool) Remove(u model.UTXO) {
	p.pool.Remove(u)
	p.logger.Debugf("[UTXOPool][logger][Remove] %s : %s", u, caller())
}

func (p *Pool) Clone() utxo.Pool {
	clone := p.pool.Clone()
	p.logger.Debugf("[UTXOPool][logger][Clone] %d entries : %s", clone.Len(), caller())

	return New(p.logger, clone)
}

func (p *Pool) Len() int {
	return p.pool.Len()
}

func (p *Pool) UTXOs() []model.UTXO {
	return p.pool.UTXOs()
}
