package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig wraps every parse or validation failure.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrNoExporterEndpoint means observability is enabled but no endpoint is set.
	ErrNoExporterEndpoint = errors.New("observability enabled without trace, metric or log endpoint")

	// ErrNoLogEndpoint means the otel log exporter is selected without an enabled log endpoint.
	ErrNoLogEndpoint = errors.New("otel log exporter needs observability enabled with a log endpoint")
)

const (
	defaultServiceName = "resource-lending"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"

	// LogExporterSlog writes log records with the configured slog handler.
	LogExporterSlog = "slog"

	// LogExporterOTel emits log records through the OpenTelemetry LoggerProvider.
	LogExporterOTel = "otel"
)

// Config is the root of the YAML configuration file.
type Config struct {
	ServiceName   string              `yaml:"serviceName" validate:"required"`
	Log           LogConfig           `yaml:"log"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// LogConfig selects the slog handler or the OpenTelemetry log pipeline.
type LogConfig struct {
	Level    string `yaml:"level" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" validate:"oneof=text json"`
	Exporter string `yaml:"exporter" validate:"oneof=slog otel"`
}

// ObservabilityConfig configures OTLP gRPC export.
type ObservabilityConfig struct {
	Enabled        bool   `yaml:"enabled"`
	TraceEndpoint  string `yaml:"traceEndpoint" validate:"omitempty,hostname_port"`
	MetricEndpoint string `yaml:"metricEndpoint" validate:"omitempty,hostname_port"`
	LogEndpoint    string `yaml:"logEndpoint" validate:"omitempty,hostname_port"`
	Insecure       bool   `yaml:"insecure"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ServiceName: defaultServiceName,
		Log: LogConfig{
			Level:    defaultLogLevel,
			Format:   defaultLogFormat,
			Exporter: LogExporterSlog,
		},
	}
}

// Load reads and validates the YAML file at path. Missing keys keep their defaults.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	return Parse(b)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(b []byte) (Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints and that every enabled exporter has somewhere to export to.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	o := c.Observability
	if o.Enabled && o.TraceEndpoint == "" && o.MetricEndpoint == "" && o.LogEndpoint == "" {
		return errors.Join(ErrInvalidConfig, ErrNoExporterEndpoint)
	}

	if c.Log.Exporter == LogExporterOTel && (!o.Enabled || o.LogEndpoint == "") {
		return errors.Join(ErrInvalidConfig, ErrNoLogEndpoint)
	}

	return nil
}
