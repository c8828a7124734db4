package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

const (
	DefaultClientServerURL      = "http://localhost:4000"
	DefaultClientRequestTimeout = 15 * time.Second
)

// ErrInvalidClientConfigs indicates an unusable client configuration.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// ClientConfig configures the command-line API client.
type ClientConfig struct {
	// ServerURL is the base URL of a PressPay server.
	// Env: PRESSPAY_URL, flag: -s
	ServerURL string `env:"PRESSPAY_URL"`

	// Token is a session token sent as a bearer token.
	// Env: PRESSPAY_TOKEN, flag: -t
	Token string `env:"PRESSPAY_TOKEN"`

	// RequestTimeout bounds every API call.
	// Env: PRESSPAY_TIMEOUT, flag: -timeout
	RequestTimeout time.Duration `env:"PRESSPAY_TIMEOUT"`
}

// GetClientConfig merges environment variables, flags parsed from args and
// defaults, in that priority. The arguments left after the flags are
// returned as the command line of the subcommand.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := env.Parse(envCfg); err != nil {
		return nil, nil, fmt.Errorf("error getting env configs: %w", err)
	}

	fs := flag.NewFlagSet("press-pay-client", flag.ContinueOnError)
	flagCfg := &ClientConfig{}
	fs.StringVar(&flagCfg.ServerURL, "s", "", "PressPay server base URL")
	fs.StringVar(&flagCfg.Token, "t", "", "Session token")
	fs.DurationVar(&flagCfg.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{envCfg, flagCfg, {ServerURL: DefaultClientServerURL, RequestTimeout: DefaultClientRequestTimeout}} {
		if err := mergo.Merge(cfg, src); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.RequestTimeout < 0 {
		return nil, nil, fmt.Errorf("%w: timeout must not be negative", ErrInvalidClientConfigs)
	}

	return cfg, fs.Args(), nil
}
