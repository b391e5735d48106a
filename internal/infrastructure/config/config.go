package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	Discovery   = "discovery"
	Gateway     = "gateway"
	UserService = "user-service"
)

type Config struct {
	Env         string
	ServiceName string
	HTTPServer  HTTPServer
	Database    Database
	Discovery   DiscoveryClient
	Registry    Registry
	Gateway     GatewayConfig
	Auth        Auth
}

type HTTPServer struct {
	Address        string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
}

func (s HTTPServer) Addr() string {
	return fmt.Sprintf("%s:%d", s.Address, s.Port)
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	SSLMode        string
	MaxConns       int32
	MigrationsPath string
	AutoMigrate    bool
}

func (d Database) DSN() string {
	u := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(d.Username, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     d.DbName,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}

// DiscoveryClient configures how a service registers itself and reads the registry.
type DiscoveryClient struct {
	Enabled           bool
	URL               string
	InstanceHost      string
	HeartbeatInterval time.Duration
	FetchInterval     time.Duration
	LeaseDuration     time.Duration
}

type Registry struct {
	Store            string
	LeaseDuration    time.Duration
	EvictionInterval time.Duration
	SelfPreservation bool
	RenewalThreshold float64
	Redis            Redis
}

type Redis struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type GatewayConfig struct {
	Routes          []Route
	UpstreamTimeout time.Duration
	RateLimit       RateLimit
	CORS            CORS
}

type Route struct {
	ID           string   `mapstructure:"id"`
	PathPrefix   string   `mapstructure:"path_prefix"`
	Service      string   `mapstructure:"service"`
	URL          string   `mapstructure:"url"`
	StripPrefix  bool     `mapstructure:"strip_prefix"`
	AuthRequired bool     `mapstructure:"auth_required"`
	Methods      []string `mapstructure:"methods"` // empty allows every method
}

type RateLimit struct {
	Enabled bool
	RPS     float64
	Burst   int

	// CIDRs or IPs whose X-Forwarded-For is believed.
	TrustedProxies []string
}

type CORS struct {
	AllowedOrigins []string
}

type Auth struct {
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

// MustLoad loads config/<name>.yaml and exits on failure.
func MustLoad(name string) *Config {
	cfg, err := Load(name)
	if err != nil {
		log.Printf("Error reading config: %s", err)
		os.Exit(1)
	}
	return cfg
}

func Load(name string) (*Config, error) {
	const op = "config.Load"

	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		v.AddConfigPath(p)
	}
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, name)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	var routes []Route
	if err := v.UnmarshalKey("gateway.routes", &routes); err != nil {
		return nil, fmt.Errorf("%s: routes: %w", op, err)
	}

	cfg := &Config{
		Env:         v.GetString("env"),
		ServiceName: v.GetString("service_name"),
		HTTPServer: HTTPServer{
			Address:        v.GetString("http_server.address"),
			Port:           v.GetInt("http_server.port"),
			ReadTimeout:    v.GetDuration("http_server.read_timeout"),
			WriteTimeout:   v.GetDuration("http_server.write_timeout"),
			IdleTimeout:    v.GetDuration("http_server.idle_timeout"),
			RequestTimeout: v.GetDuration("http_server.request_timeout"),
		},
		Database: Database{
			Username:       v.GetString("database.username"),
			Password:       v.GetString("database.password"),
			Host:           v.GetString("database.host"),
			Port:           v.GetString("database.port"),
			DbName:         v.GetString("database.db_name"),
			SSLMode:        v.GetString("database.ssl_mode"),
			MaxConns:       v.GetInt32("database.max_conns"),
			MigrationsPath: v.GetString("database.migrations_path"),
			AutoMigrate:    v.GetBool("database.auto_migrate"),
		},
		Discovery: DiscoveryClient{
			Enabled:           v.GetBool("discovery.enabled"),
			URL:               v.GetString("discovery.url"),
			InstanceHost:      v.GetString("discovery.instance_host"),
			HeartbeatInterval: v.GetDuration("discovery.heartbeat_interval"),
			FetchInterval:     v.GetDuration("discovery.fetch_interval"),
			LeaseDuration:     v.GetDuration("discovery.lease_duration"),
		},
		Registry: Registry{
			Store:            v.GetString("registry.store"),
			LeaseDuration:    v.GetDuration("registry.lease_duration"),
			EvictionInterval: v.GetDuration("registry.eviction_interval"),
			SelfPreservation: v.GetBool("registry.self_preservation"),
			RenewalThreshold: v.GetFloat64("registry.renewal_threshold"),
			Redis: Redis{
				Addr:      v.GetString("registry.redis.addr"),
				Password:  v.GetString("registry.redis.password"),
				DB:        v.GetInt("registry.redis.db"),
				KeyPrefix: v.GetString("registry.redis.key_prefix"),
			},
		},
		Gateway: GatewayConfig{
			Routes:          routes,
			UpstreamTimeout: v.GetDuration("gateway.upstream_timeout"),
			RateLimit: RateLimit{
				Enabled:        v.GetBool("gateway.rate_limit.enabled"),
				RPS:            v.GetFloat64("gateway.rate_limit.rps"),
				Burst:          v.GetInt("gateway.rate_limit.burst"),
				TrustedProxies: v.GetStringSlice("gateway.rate_limit.trusted_proxies"),
			},
			CORS: CORS{
				AllowedOrigins: v.GetStringSlice("gateway.cors.allowed_origins"),
			},
		},
		Auth: Auth{
			JWTSecret: v.GetString("auth.jwt_secret"),
			Issuer:    v.GetString("auth.issuer"),
			TokenTTL:  v.GetDuration("auth.token_ttl"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, name string) {
	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.read_timeout", 10*time.Second)
	v.SetDefault("http_server.write_timeout", 10*time.Second)
	v.SetDefault("http_server.idle_timeout", 60*time.Second)
	v.SetDefault("http_server.request_timeout", 30*time.Second)

	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "admin")
	v.SetDefault("database.host", "user-db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "splitwise_users")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.migrations_path", "migrations")
	v.SetDefault("database.auto_migrate", false)

	v.SetDefault("discovery.url", "http://localhost:8761")
	v.SetDefault("discovery.heartbeat_interval", 30*time.Second)
	v.SetDefault("discovery.fetch_interval", 30*time.Second)
	v.SetDefault("discovery.lease_duration", 90*time.Second)

	v.SetDefault("registry.store", "memory")
	v.SetDefault("registry.lease_duration", 90*time.Second)
	v.SetDefault("registry.eviction_interval", 60*time.Second)
	v.SetDefault("registry.self_preservation", false)
	v.SetDefault("registry.renewal_threshold", 0.85)
	v.SetDefault("registry.redis.addr", "localhost:6379")
	v.SetDefault("registry.redis.key_prefix", "registry")

	v.SetDefault("gateway.upstream_timeout", 30*time.Second)
	v.SetDefault("gateway.rate_limit.enabled", true)
	v.SetDefault("gateway.rate_limit.rps", 20)
	v.SetDefault("gateway.rate_limit.burst", 40)
	v.SetDefault("gateway.cors.allowed_origins", []string{"*"})

	v.SetDefault("auth.issuer", "splitwise")
	v.SetDefault("auth.token_ttl", time.Hour)

	switch name {
	case Discovery:
		v.SetDefault("service_name", "DISCOVERY-SERVICE")
		v.SetDefault("http_server.port", 8761)
		v.SetDefault("discovery.enabled", false)
	case Gateway:
		v.SetDefault("service_name", "API-GATEWAY")
		v.SetDefault("http_server.port", 8080)
		v.SetDefault("discovery.enabled", true)
	case UserService:
		v.SetDefault("service_name", "USER-SERVICE")
		v.SetDefault("http_server.port", 8081)
		v.SetDefault("discovery.enabled", true)
	default:
		v.SetDefault("service_name", strings.ToUpper(name))
		v.SetDefault("http_server.port", 8080)
	}
}
