package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
	Vault    VaultConfig    `mapstructure:"vault"`
	Relay    RelayConfig    `mapstructure:"relay"`
	Tokens   TokensConfig   `mapstructure:"tokens"`
	Bridge   BridgeConfig   `mapstructure:"bridge"`
	Faucet   FaucetConfig   `mapstructure:"faucet"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	OpenAPIPath     string        `mapstructure:"openapi_path"`
}

// DatabaseConfig configures PostgreSQL. When disabled, events and pending
// credits are kept in memory.
type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// RedisConfig configures Redis. When disabled, nonces and bridge deliveries
// are kept in memory and rate limiting is off.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

type VaultConfig struct {
	Address  string `mapstructure:"address"`
	Owner    string `mapstructure:"owner"`
	Treasury string `mapstructure:"treasury"`
}

type RelayConfig struct {
	Address string `mapstructure:"address"`
	Owner   string `mapstructure:"owner"`
}

// TokensConfig identifies the stable asset and the share token. The stable
// asset's minter is the bridge transmitter and the faucet.
type TokensConfig struct {
	AssetAddress  string `mapstructure:"asset_address"`
	AssetMinter   string `mapstructure:"asset_minter"`
	AssetSymbol   string `mapstructure:"asset_symbol"`
	SharesAddress string `mapstructure:"shares_address"`
	Decimals      uint8  `mapstructure:"decimals"`
}

type BridgeConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Queue       string        `mapstructure:"queue"`
	QueueSize   int           `mapstructure:"queue_size"`
	PollTimeout time.Duration `mapstructure:"poll_timeout"`
	RetryDelay  time.Duration `mapstructure:"retry_delay"`
	DeliveryTTL time.Duration `mapstructure:"delivery_ttl"`
	MaxAttempts int           `mapstructure:"max_attempts"`
}

type FaucetConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Limit   string `mapstructure:"limit"`
}

// Load reads configuration from file, a .env file and environment variables.
// Environment variables override file values. Prefix: ARCY_.
// Nested keys use underscore: ARCY_VAULT_OWNER, ARCY_REDIS_ENABLED, etc.
func Load(path string) (*Config, error) {
	// A missing .env is fine; a malformed one is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.openapi_path", "docs/api/openapi.yaml")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "omnichain_yield")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("vault.address", "0x000000000000000000000000000000000000a001")
	v.SetDefault("vault.owner", "")
	v.SetDefault("vault.treasury", "")
	v.SetDefault("relay.address", "0x000000000000000000000000000000000000a002")
	v.SetDefault("relay.owner", "")
	v.SetDefault("tokens.asset_address", "0x000000000000000000000000000000000000a003")
	v.SetDefault("tokens.asset_minter", "0x000000000000000000000000000000000000a005")
	v.SetDefault("tokens.asset_symbol", "USDC")
	v.SetDefault("tokens.shares_address", "0x000000000000000000000000000000000000a004")
	v.SetDefault("tokens.decimals", 6)
	v.SetDefault("bridge.enabled", true)
	v.SetDefault("bridge.queue", "bridge:deliveries")
	v.SetDefault("bridge.queue_size", 1024)
	v.SetDefault("bridge.poll_timeout", "1s")
	v.SetDefault("bridge.retry_delay", "2s")
	v.SetDefault("bridge.delivery_ttl", "168h")
	v.SetDefault("bridge.max_attempts", 10)
	v.SetDefault("faucet.enabled", false)
	v.SetDefault("faucet.limit", "1000000000")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// ARCY_VAULT_OWNER -> vault.owner
	v.SetEnvPrefix("ARCY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the identities and limits the node cannot start without.
// All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	requireAddress := func(key, value string) {
		if !common.IsHexAddress(value) || common.HexToAddress(value) == (common.Address{}) {
			errs = append(errs, fmt.Errorf("%s: %q is not a non-zero hex address", key, value))
		}
	}

	requireAddress("vault.address", c.Vault.Address)
	requireAddress("vault.owner", c.Vault.Owner)
	requireAddress("vault.treasury", c.Vault.Treasury)
	requireAddress("relay.address", c.Relay.Address)
	requireAddress("relay.owner", c.Relay.Owner)
	requireAddress("tokens.asset_address", c.Tokens.AssetAddress)
	requireAddress("tokens.asset_minter", c.Tokens.AssetMinter)
	requireAddress("tokens.shares_address", c.Tokens.SharesAddress)

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port: %d out of range", c.Server.Port))
	}
	if c.Bridge.Enabled && c.Bridge.MaxAttempts <= 0 {
		errs = append(errs, errors.New("bridge.max_attempts must be positive"))
	}
	if c.Faucet.Enabled {
		if _, err := c.Faucet.LimitAmount(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LimitAmount parses the faucet's per-request cap.
func (f FaucetConfig) LimitAmount() (*uint256.Int, error) {
	v, err := uint256.FromDecimal(f.Limit)
	if err != nil {
		return nil, fmt.Errorf("faucet.limit: %q: %w", f.Limit, err)
	}
	return v, nil
}

// Address converts a validated hex string.
func Address(s string) common.Address {
	return common.HexToAddress(s)
}
