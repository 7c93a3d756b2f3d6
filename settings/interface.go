package settings

type LoggerSettings struct {
	Level  string
	Type   string
	Pretty bool
}

type UtxoPoolSettings struct {
	// Type selects the pool implementation: map, swiss or synced.
	Type            string
	InitialCapacity int
	Logging         bool
}

type TxHandlerSettings struct {
	LogRejections  bool
	MetricsEnabled bool
}

type Settings struct {
	ClientName string
	Logger     LoggerSettings
	UtxoPool   UtxoPoolSettings
	TxHandler  TxHandlerSettings
}
