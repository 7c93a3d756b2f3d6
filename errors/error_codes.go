package errors

import "fmt"

// ERR is the numeric category carried by every *Error.
type ERR int32

//nolint:revive,stylecheck // upper snake case matches the wire names of the codes
const (
	ERR_UNKNOWN                 ERR = 0
	ERR_INVALID_ARGUMENT        ERR = 1
	ERR_PROCESSING              ERR = 4
	ERR_CONFIGURATION           ERR = 5
	ERR_TX_INVALID              ERR = 31
	ERR_TX_INVALID_DOUBLE_SPEND ERR = 32
	ERR_TX_INVALID_SIGNATURE    ERR = 34
	ERR_TX_INSUFFICIENT_INPUTS  ERR = 35
	ERR_UTXO_NOT_FOUND          ERR = 70
)

var ERR_name = map[int32]string{
	0:  "UNKNOWN",
	1:  "INVALID_ARGUMENT",
	4:  "PROCESSING",
	5:  "CONFIGURATION",
	31: "TX_INVALID",
	32: "TX_INVALID_DOUBLE_SPEND",
	34: "TX_INVALID_SIGNATURE",
	35: "TX_INSUFFICIENT_INPUTS",
	70: "UTXO_NOT_FOUND",
}

var ERR_value = func() map[string]int32 {
	m := make(map[string]int32, len(ERR_name))
	for k, v := range ERR_name {
		m[v] = k
	}

	return m
}()

// Enum returns the symbolic name of the code, or its number when unknown.
func (x ERR) Enum() string {
	if name, ok := ERR_name[int32(x)]; ok {
		return name
	}

	return fmt.Sprintf("ERR(%d)", int32(x))
}

func (x ERR) String() string {
	return x.Enum()
}

// ParseERR returns the code registered under name.
func ParseERR(name string) (ERR, bool) {
	v, ok := ERR_value[name]
	return ERR(v), ok
}
