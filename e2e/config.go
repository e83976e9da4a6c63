package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerAddr string `envconfig:"SERVER_ADDR"`
	// E2E_OWNER_ID identifies the booker the suite authenticates as
	OwnerID string `envconfig:"E2E_OWNER_ID" default:"e2e-owner"`
	// E2E_SECRET is the shared service credential the target server was
	// configured with (see cmd/secretgen)
	Secret string `envconfig:"E2E_SECRET"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
