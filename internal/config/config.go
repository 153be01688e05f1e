// Package config loads effectlab's settings from config.yaml, EFFECTLAB_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/vcrobe/nojs-effects/pokemon"
	"github.com/vcrobe/nojs-effects/resource"
	"github.com/vcrobe/nojs-effects/store"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// EnvPrefix prefixes environment overrides: EFFECTLAB_STORE_BACKEND etc.
	EnvPrefix = "EFFECTLAB"
	// DefaultDir is the configuration directory used when none is given.
	DefaultDir = ".effectlab"
)

// Config keys.
const (
	KeyStoreBackend = "store.backend"
	KeyDataDir      = "store.data_dir"
	KeyEndpoint     = "pokemon.endpoint"
	KeyTimeout      = "pokemon.timeout"
	KeyDelay        = "pokemon.delay"
	KeyOffline      = "pokemon.offline"
	KeyInitialName  = "greeting.initial_name"
	KeyStalePolicy  = "resource.stale_policy"
	KeyVerbose      = "log.verbose"
)

// FlagKeys maps command-line flag names to the keys they override.
var FlagKeys = map[string]string{
	"store":        KeyStoreBackend,
	"data-dir":     KeyDataDir,
	"endpoint":     KeyEndpoint,
	"offline":      KeyOffline,
	"stale-policy": KeyStalePolicy,
	"verbose":      KeyVerbose,
}

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# effectlab configuration
# Every key can be overridden with an EFFECTLAB_ environment variable
# (e.g. EFFECTLAB_STORE_BACKEND=sqlite) or the matching flag.

store:
  # bolt, sqlite or memory
  backend: bolt
  # data_dir defaults to <config dir>/data
  # data_dir:

pokemon:
  endpoint: https://graphql-pokemon2.vercel.app/
  timeout: 10s
  # delay asks the server to slow down its answer, e.g. 1500ms
  delay: 0s
  # offline serves built-in fixtures instead of calling the endpoint
  offline: false

greeting:
  initial_name: ""

resource:
  # suppress-stale or last-resolved-wins
  stale_policy: suppress-stale

log:
  verbose: false
`

// Config is the effective configuration.
type Config struct {
	Store    StoreConfig    `mapstructure:"store" yaml:"store"`
	Pokemon  PokemonConfig  `mapstructure:"pokemon" yaml:"pokemon"`
	Greeting GreetingConfig `mapstructure:"greeting" yaml:"greeting"`
	Resource ResourceConfig `mapstructure:"resource" yaml:"resource"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`

	// Dir is the configuration directory the file was looked up in.
	Dir string `mapstructure:"-" yaml:"-"`
}

type StoreConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend"`
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
}

type PokemonConfig struct {
	Endpoint string        `mapstructure:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Delay    time.Duration `mapstructure:"delay" yaml:"delay"`
	Offline  bool          `mapstructure:"offline" yaml:"offline"`
}

type GreetingConfig struct {
	InitialName string `mapstructure:"initial_name" yaml:"initial_name"`
}

type ResourceConfig struct {
	StalePolicy string `mapstructure:"stale_policy" yaml:"stale_policy"`
}

type LogConfig struct {
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyStoreBackend, store.BackendBolt)
	v.SetDefault(KeyDataDir, "")
	v.SetDefault(KeyEndpoint, pokemon.DefaultEndpoint)
	v.SetDefault(KeyTimeout, 10*time.Second)
	v.SetDefault(KeyDelay, time.Duration(0))
	v.SetDefault(KeyOffline, false)
	v.SetDefault(KeyInitialName, "")
	v.SetDefault(KeyStalePolicy, resource.SuppressStale.String())
	v.SetDefault(KeyVerbose, false)
}

// Load reads config.yaml from configDir, creating the directory and a
// default file on first run. A missing file is not an error. Flags that
// were set on the command line override file and environment; flags may be nil.
func Load(configDir string, flags *pflag.FlagSet) (*Config, error) {
	if configDir == "" {
		configDir = DefaultDir
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Dir = configDir
	if cfg.Store.DataDir == "" {
		cfg.Store.DataDir = filepath.Join(configDir, "data")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case store.BackendBolt, store.BackendSQLite, store.BackendMemory:
	default:
		return fmt.Errorf("invalid %s %q (want %s, %s or %s)", KeyStoreBackend, c.Store.Backend,
			store.BackendBolt, store.BackendSQLite, store.BackendMemory)
	}
	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyStalePolicy, err)
	}
	if c.Pokemon.Timeout < 0 || c.Pokemon.Delay < 0 {
		return fmt.Errorf("%s and %s must not be negative", KeyTimeout, KeyDelay)
	}
	return nil
}

// Policy returns the configured stale-result policy.
func (c *Config) Policy() (resource.Policy, error) {
	return resource.ParsePolicy(c.Resource.StalePolicy)
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
