// Package clicfg loads the configuration of the cbrsa command from a YAML
// file, CBRSA_* environment variables and command-line flags, in increasing
// order of precedence.
package clicfg

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/modexp"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/prime"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/rsa"
)

// EnvPrefix prefixes every environment variable read by the command.
const EnvPrefix = "CBRSA"

// DefaultSeed is the seed used for reproducible key generation when none is
// given.
const DefaultSeed = "0x12345"

// Keys of the configuration tree.
const (
	KeySeed     = "seed"
	KeyBase     = "base"
	KeyExponent = "exponent"
	KeyCRT      = "crt"
	KeyBackend  = "backend"
	KeyLogLevel = "log_level"
	KeyRounds   = "rounds"
)

// Config is the decoded configuration.
type Config struct {
	Seed     string         `mapstructure:"seed"`
	Base     int            `mapstructure:"base"`
	Exponent int            `mapstructure:"exponent"`
	CRT      bool           `mapstructure:"crt"`
	Backend  string         `mapstructure:"backend"`
	LogLevel string         `mapstructure:"log_level"`
	Rounds   map[string]int `mapstructure:"rounds"`
}

// New returns a viper instance with defaults and environment lookup set up.
// Flags are bound to it by the caller.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeySeed, DefaultSeed)
	v.SetDefault(KeyBase, 16)
	v.SetDefault(KeyExponent, rsa.DefaultExponent)
	v.SetDefault(KeyCRT, true)
	v.SetDefault(KeyBackend, modexp.Default().Name())
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyRounds, map[string]int{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file into v when file is not empty and decodes the merged
// configuration.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", file)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the fields that do not need further parsing.
func (c *Config) Validate() error {
	if c.Base != 10 && c.Base != 16 {
		return errors.Errorf("base must be 10 or 16, got %d", c.Base)
	}
	if _, err := modexp.ByName(c.Backend); err != nil {
		return err
	}
	if c.Exponent <= 1 || c.Exponent%2 == 0 {
		return errors.Wrapf(cbrsa.ErrInvalidExponent, "e = %d", c.Exponent)
	}
	return nil
}

// ParseSeed parses Seed as an unsigned integer. A 0x, 0o or 0b prefix
// selects the base.
func (c *Config) ParseSeed() (uint64, error) {
	s, err := strconv.ParseUint(strings.TrimSpace(c.Seed), 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse seed %q", c.Seed)
	}
	return s, nil
}

// RoundTable returns the default round table overlaid with the configured
// entries.
func (c *Config) RoundTable() (prime.RoundTable, error) {
	table := prime.DefaultRoundTable()
	for k, r := range c.Rounds {
		size, err := strconv.Atoi(k)
		if err != nil {
			return nil, errors.Wrapf(err, "rounds: key %q is not a key size", k)
		}
		if r <= 0 {
			return nil, errors.Errorf("rounds: %d bits needs a positive round count, got %d", size, r)
		}
		table[size] = r
	}
	return table, nil
}

// Exponentiator resolves the configured backend.
func (c *Config) Exponentiator() (modexp.Exponentiator, error) {
	return modexp.ByName(c.Backend)
}

// KeyGenConfig builds the key generator configuration. The caller supplies
// the source, logger and metrics.
func (c *Config) KeyGenConfig() (rsa.Config, error) {
	table, err := c.RoundTable()
	if err != nil {
		return rsa.Config{}, err
	}
	cfg := rsa.DefaultConfig()
	cfg.RoundTable = table
	cfg.PublicExponent = c.Exponent
	cfg.CRT = c.CRT
	return cfg, nil
}
