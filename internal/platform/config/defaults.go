package config

const (
	defaultServerPort = 8080

	defaultStoreMaxOpenConns = 10
	defaultStoreMaxIdleConns = 5
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"store.driver":            DriverSQLite,
		"store.dsn":               "file:robots.db?_pragma=busy_timeout(5000)",
		"store.path":              "robots.bolt",
		"store.timeout":           "1s",
		"store.max_open_conns":    defaultStoreMaxOpenConns,
		"store.max_idle_conns":    defaultStoreMaxIdleConns,
		"store.conn_max_lifetime": "30m",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "robot-service",
	}
}
