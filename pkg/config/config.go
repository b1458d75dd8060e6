package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// BackendRedis talks to a Redis-compatible server over the network.
	BackendRedis = "redis"
	// BackendMemory keeps entries in process. Local development only.
	BackendMemory = "memory"
)

type Config struct {
	// Addr is the listen address of the HTTP API.
	Addr string
	// ServerURL is the base URL the CLI talks to.
	ServerURL string

	Backend       string
	RedisHost     string
	RedisPort     int
	RedisPassword string
	RedisDB       int

	// StoreTimeout bounds every single store round trip.
	StoreTimeout time.Duration

	LogLevel string
}

// Load reads .env files and the process environment on top of the defaults.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("hexkv_addr", ":8080")
	v.SetDefault("hexkv_url", "http://localhost:8080")
	v.SetDefault("store_backend", BackendRedis)
	v.SetDefault("redis_host", "redis")
	v.SetDefault("redis_port", 6379)
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("store_timeout", time.Second)
	v.SetDefault("log_level", "info")

	cfg := &Config{
		Addr:          v.GetString("hexkv_addr"),
		ServerURL:     strings.TrimRight(v.GetString("hexkv_url"), "/"),
		Backend:       strings.ToLower(v.GetString("store_backend")),
		RedisHost:     v.GetString("redis_host"),
		RedisPort:     v.GetInt("redis_port"),
		RedisPassword: v.GetString("redis_password"),
		RedisDB:       v.GetInt("redis_db"),
		StoreTimeout:  v.GetDuration("store_timeout"),
		LogLevel:      v.GetString("log_level"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("invalid store backend %q (expected %s or %s)", c.Backend, BackendRedis, BackendMemory)
	}
	if c.RedisPort <= 0 || c.RedisPort > 65535 {
		return fmt.Errorf("invalid redis port %d", c.RedisPort)
	}
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("store timeout must be positive, got %s", c.StoreTimeout)
	}
	return nil
}

// RedisAddr returns host:port of the backing store.
func (c *Config) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, strconv.Itoa(c.RedisPort))
}
