package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains process-level settings consumed by this layer.
type ServerConfig struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// Setup enables first-time provisioning of the backing schema on connect;
// it is meant for initial installation and ephemeral test databases, not
// steady-state operation.
type DatabaseConfig struct {
	URL   string `mapstructure:"url" validate:"required"`
	Setup bool   `mapstructure:"setup"`
}
