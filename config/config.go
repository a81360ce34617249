package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultOrderPageSize      = 20
	maxOrderPageSize          = 100
)

// Storage drivers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMongo    = "mongo"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	// Redis backs the order read cache; caching is off when nil or addr is empty
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Authz *AuthzConfig `json:"authz" yaml:"authz"`

	Orders *OrdersConfig `json:"orders" yaml:"orders"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig selects the order store.
type StorageConfig struct {
	// Driver is "postgres" (default) or "mongo"
	Driver string `json:"driver" yaml:"driver"`

	// AutoMigrate applies pending SQL migrations on startup (postgres only)
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// MongoConfig defines the document store connection
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
	MaxPoolSize    uint64        `json:"maxPoolSize" yaml:"maxPoolSize"`
	MinPoolSize    uint64        `json:"minPoolSize" yaml:"minPoolSize"`
}

// RedisConfig defines the cache connection
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	OrderTTL time.Duration `json:"orderTTL" yaml:"orderTTL"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	Issuer         string        `json:"issuer" yaml:"issuer"`
}

// AuthzConfig defines the permission engine configuration
type AuthzConfig struct {
	// ReloadInterval rebuilds policies from stored roles periodically; 0 disables the loop
	ReloadInterval time.Duration `json:"reloadInterval" yaml:"reloadInterval"`
}

// OrdersConfig defines the order lifecycle rules
type OrdersConfig struct {
	// TransitionPolicy is "permissive" or "forward_only"
	TransitionPolicy string `json:"transitionPolicy" yaml:"transitionPolicy"`

	// ReturnWindow is how long after delivery a return or exchange may be requested
	ReturnWindow time.Duration `json:"returnWindow" yaml:"returnWindow"`

	// DeliveryFallback is "updated_at" or "strict"
	DeliveryFallback string `json:"deliveryFallback" yaml:"deliveryFallback"`

	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize"`
	MaxPageSize     int `json:"maxPageSize" yaml:"maxPageSize"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// PubSubConfig defines configuration for order event publishing
type PubSubConfig struct {
	// Provider type: "local", "google", "kafka"; empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Topic ID (google) or topic name (kafka)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Kafka bootstrap brokers (for kafka provider)
	Brokers []string `json:"brokers" yaml:"brokers"`

	Breaker BreakerConfig `json:"breaker" yaml:"breaker"`
}

// BreakerConfig tunes the circuit breaker around the publisher
type BreakerConfig struct {
	// ConsecutiveFailures trips the breaker; 0 disables it
	ConsecutiveFailures uint32        `json:"consecutiveFailures" yaml:"consecutiveFailures"`
	OpenTimeout         time.Duration `json:"openTimeout" yaml:"openTimeout"`
}

// PageSize clamps a requested page size to the configured bounds.
func (c *Config) PageSize(requested int) int {
	def, limit := defaultOrderPageSize, maxOrderPageSize
	if c.Orders != nil {
		if c.Orders.DefaultPageSize > 0 {
			def = c.Orders.DefaultPageSize
		}
		if c.Orders.MaxPageSize > 0 {
			limit = c.Orders.MaxPageSize
		}
	}
	if requested <= 0 {
		return def
	}

	return min(requested, limit)
}

// Validate rejects settings the application cannot start with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Postgres == nil {
			return errors.New("postgres configuration is required for the postgres driver")
		}
	case StorageDriverMongo:
		if c.Mongo == nil || c.Mongo.URI == "" || c.Mongo.Database == "" {
			return errors.New("mongo uri and database are required for the mongo driver")
		}
	default:
		return errors.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}

	if c.Orders != nil {
		switch c.Orders.TransitionPolicy {
		case "", "permissive", "forward_only":
		default:
			return errors.Errorf("unsupported orders.transitionPolicy %q", c.Orders.TransitionPolicy)
		}
		switch c.Orders.DeliveryFallback {
		case "", "updated_at", "strict":
		default:
			return errors.Errorf("unsupported orders.deliveryFallback %q", c.Orders.DeliveryFallback)
		}
	}

	return nil
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverPostgres
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
