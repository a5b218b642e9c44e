package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (st *StoreConfig) validate() error {
	var errs []error

	switch st.Driver {
	case DriverSQLite, DriverPostgres:
		if st.DSN == "" {
			errs = append(errs, fmt.Errorf("store.dsn must not be empty when driver is %s", st.Driver))
		}
		if st.MaxOpenConns < 1 {
			errs = append(errs, fmt.Errorf("store.max_open_conns must be >= 1, got %d", st.MaxOpenConns))
		}
		if st.MaxIdleConns < 0 || st.MaxIdleConns > st.MaxOpenConns {
			errs = append(errs, fmt.Errorf("store.max_idle_conns must be between 0 and max_open_conns, got %d",
				st.MaxIdleConns))
		}
	case DriverBolt:
		if st.Path == "" {
			errs = append(errs, errors.New("store.path must not be empty when driver is bolt"))
		}
		if st.Timeout <= 0 {
			errs = append(errs, errors.New("store.timeout must be positive"))
		}
	case DriverMemory:
		// No settings.
	default:
		errs = append(errs, fmt.Errorf("store.driver must be one of: sqlite, postgres, bolt, memory; got %q",
			st.Driver))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
