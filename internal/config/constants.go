package config

const (
	envPort          = "PORT"
	envFooterMessage = "FOOTER_MESSAGE"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envExportDir     = "EXPORT_DIR"
	envShutdown      = "SHUTDOWN_TIMEOUT"

	defaultPort        = "4000"
	defaultServiceName = "money-dungeon-web"

	// DotEnvFile is read before the environment is parsed when present.
	DotEnvFile = ".env"
)
