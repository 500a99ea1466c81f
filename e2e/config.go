package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// PARSER_ADDR is the base URL of a running server, e.g. http://localhost:8000
	ParserAddr string `envconfig:"PARSER_ADDR"`
	// SAMPLE_LOG_URL points to a text flight log the server can download
	SampleLogURL string `envconfig:"SAMPLE_LOG_URL"`
	// AUTH_TOKEN is sent as a bearer token when the server has AUTH_SECRET set
	AuthToken string `envconfig:"AUTH_TOKEN"`
	// E2E_DEBUG_JSON allows dumping full request/response bodies
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
