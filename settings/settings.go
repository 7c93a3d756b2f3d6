package settings

func NewSettings() *Settings {
	return &Settings{
		ClientName: getString("clientName", "utxoledger"),
		Logger: LoggerSettings{
			Level:  getString("logLevel", "INFO"),
			Type:   getString("logger_type", "zerolog"),
			Pretty: getBool("PRETTY_LOGS", true),
		},
		UtxoPool: UtxoPoolSettings{
			Type:            getString("utxopool_type", "map"),
			InitialCapacity: getInt("utxopool_initialCapacity", 1024),
			Logging:         getBool("utxopool_logging", false),
		},
		TxHandler: TxHandlerSettings{
			LogRejections:  getBool("txhandler_logRejections", true),
			MetricsEnabled: getBool("txhandler_metricsEnabled", true),
		},
	}
}
