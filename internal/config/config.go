// Package config loads quietgh settings from defaults, an optional TOML file
// and the environment, in increasing order of precedence.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/jmgilman/go/errors"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of quietgh's own environment variables.
const EnvPrefix = "QUIETGH_"

// Provider names.
const (
	ProviderSDK = "sdk"
	ProviderCLI = "cli"
)

// Config is the resolved quietgh configuration.
type Config struct {
	Provider string        `koanf:"provider"`
	Strategy string        `koanf:"strategy"`
	Timeout  time.Duration `koanf:"timeout"`
	Hostname string        `koanf:"hostname"`

	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`

	GitHub struct {
		Token      string `koanf:"token"`
		Repository string `koanf:"repository"`
		API        struct {
			URL string `koanf:"url"`
		} `koanf:"api"`
	} `koanf:"github"`
}

// defaults returns the base layer every load starts from.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"provider":  ProviderSDK,
		"strategy":  "graphql",
		"timeout":   "30s",
		"log.level": "info",
	}
}

// runnerKeys are the Actions runner variables read without the prefix.
var runnerKeys = map[string]string{
	"GITHUB_TOKEN":      "github.token",
	"GITHUB_REPOSITORY": "github.repository",
	"GITHUB_API_URL":    "github.api.url",
}

// envKey maps QUIETGH_SOME_KEY to some.key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "_", ".")
}

// runnerKey maps the runner variables quietgh understands and ignores the rest.
func runnerKey(s string) string {
	return runnerKeys[s]
}

// Load builds the configuration. path may be empty, in which case no file is
// read. GITHUB_TOKEN, GITHUB_REPOSITORY and GITHUB_API_URL are picked up as
// the Actions runner sets them; QUIETGH_GITHUB_* variables override them.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to load defaults")
	}

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			wrapped := errors.Wrap(err, errors.CodeInvalidConfig, "failed to load config file")
			return nil, errors.WithContext(wrapped, "path", path)
		}
	}

	if err := k.Load(env.Provider("GITHUB_", ".", runnerKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to load GitHub environment")
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to load environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to unmarshal config")
	}

	return &cfg, nil
}

// Validate checks that the configuration can build a client.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderSDK:
		if c.GitHub.Token == "" {
			err := errors.New(errors.CodeInvalidConfig, "a token is required for the sdk provider")
			return errors.WithContext(err, "hint", "set GITHUB_TOKEN")
		}
	case ProviderCLI:
	default:
		err := errors.Newf(errors.CodeInvalidConfig, "unknown provider %q", c.Provider)
		return errors.WithContext(err, "field", "provider")
	}

	switch c.Strategy {
	case "graphql", "rest":
	default:
		err := errors.Newf(errors.CodeInvalidConfig, "unknown strategy %q", c.Strategy)
		return errors.WithContext(err, "field", "strategy")
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	if c.Timeout <= 0 {
		err := errors.New(errors.CodeInvalidConfig, "timeout must be positive")
		return errors.WithContext(err, "field", "timeout")
	}

	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		wrapped := errors.Wrap(err, errors.CodeInvalidConfig, "invalid log level")
		return 0, errors.WithContext(wrapped, "field", "log.level")
	}
	return level, nil
}
