package config

import (
	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the generator configuration. Paths are relative to the
// repository root, where the generator runs; the defaults match where the
// operator runbook and the admin tool expect the artifacts.
type Config struct {
	CommandsPath    string `env:"COMMANDS_PATH" envDefault:"apply_validators_commands.json"`
	AdminSchemaPath string `env:"ADMIN_SCHEMA_PATH" envDefault:"../bridges_physiotherapy_services_db_admin/schema.json"`
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	// Load .env file if it exists (silently ignore if missing)
	_ = godotenv.Load()

	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix: "SCHEMA_SYNC_",
	})
	if err != nil {
		panic(err)
	}
	return &cfg
}
