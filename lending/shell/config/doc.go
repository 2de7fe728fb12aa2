// Package config loads the lending service configuration from YAML and builds
// the slog logger and the OpenTelemetry providers it describes.
package config
