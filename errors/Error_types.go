package errors

var (
	ErrUnknown              = New(ERR_UNKNOWN, "unknown error")
	ErrInvalidArgument      = New(ERR_INVALID_ARGUMENT, "invalid argument")
	ErrProcessing           = New(ERR_PROCESSING, "error processing")
	ErrConfiguration        = New(ERR_CONFIGURATION, "configuration error")
	ErrTxInvalid            = New(ERR_TX_INVALID, "tx invalid")
	ErrTxInvalidDoubleSpend = New(ERR_TX_INVALID_DOUBLE_SPEND, "tx invalid double spend")
	ErrTxInvalidSignature   = New(ERR_TX_INVALID_SIGNATURE, "tx invalid signature")
	ErrTxInsufficientInputs = New(ERR_TX_INSUFFICIENT_INPUTS, "tx outputs exceed inputs")
	ErrUtxoNotFound         = New(ERR_UTXO_NOT_FOUND, "utxo not found")
)

// errors initialization functions

func NewInvalidArgumentError(message string, params ...interface{}) error {
	return New(ERR_INVALID_ARGUMENT, message, params...)
}
func NewProcessingError(message string, params ...interface{}) error {
	return New(ERR_PROCESSING, message, params...)
}
func NewConfigurationError(message string, params ...interface{}) error {
	return New(ERR_CONFIGURATION, message, params...)
}
func NewTxInvalidError(message string, params ...interface{}) error {
	return New(ERR_TX_INVALID, message, params...)
}
func NewTxInvalidSignatureError(message string, params ...interface{}) error {
	return New(ERR_TX_INVALID_SIGNATURE, message, params...)
}
func NewTxInsufficientInputsError(message string, params ...interface{}) error {
	return New(ERR_TX_INSUFFICIENT_INPUTS, message, params...)
}
