package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
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
	defaultHolidayNoticeHours = 24
	defaultTokenTTL           = 30 * 24 * time.Hour
	defaultSweepInterval      = time.Hour
	defaultSweepBatchSize     = 200
	defaultSlowQuery          = 200 * time.Millisecond
	defaultPageLimit          = 10
	defaultMaxPageLimit       = 50
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Holiday scheduling rules
	Holiday *HolidayConfig `json:"holiday" yaml:"holiday"`

	Pagination *PaginationConfig `json:"pagination" yaml:"pagination"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for vendor subscription QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// DatabaseConfig controls schema management
type DatabaseConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// Queries slower than this are logged as warnings
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// PaginationConfig bounds list endpoints
type PaginationConfig struct {
	DefaultLimit int `json:"defaultLimit" yaml:"defaultLimit"`
	MaxLimit     int `json:"maxLimit" yaml:"maxLimit"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL          time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	MinPasswordLength int           `json:"minPasswordLength" yaml:"minPasswordLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// HolidayConfig defines how far ahead holidays must be booked
type HolidayConfig struct {
	MinNoticeHours int `json:"minNoticeHours" yaml:"minNoticeHours"`
}

// Notice returns the minimum notice as a duration
func (h *HolidayConfig) Notice() time.Duration {
	if h == nil || h.MinNoticeHours <= 0 {
		return defaultHolidayNoticeHours * time.Hour
	}

	return time.Duration(h.MinNoticeHours) * time.Hour
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines event publishing configuration
type PubSubConfig struct {
	// Provider type: "local", "google" or "rabbitmq". Empty disables publishing.
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Worker push endpoint (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	RabbitMQ *RabbitMQConfig `json:"rabbitmq" yaml:"rabbitmq"`

	PublishRetry *RetryConfig `json:"publishRetry" yaml:"publishRetry"`
}

// RabbitMQConfig defines the broker topology used by the rabbitmq provider
type RabbitMQConfig struct {
	URL        string `json:"url" yaml:"url"`
	Exchange   string `json:"exchange" yaml:"exchange"`
	Queue      string `json:"queue" yaml:"queue"`
	RoutingKey string `json:"routingKey" yaml:"routingKey"`
	Prefetch   int    `json:"prefetch" yaml:"prefetch"`
}

// RetryConfig bounds retries of a failing operation
type RetryConfig struct {
	Attempts uint          `json:"attempts" yaml:"attempts"`
	Delay    time.Duration `json:"delay" yaml:"delay"`
}

// WorkerConfig configures the event worker process
type WorkerConfig struct {
	Port                int           `json:"port" yaml:"port"`
	ExpirySweepInterval time.Duration `json:"expirySweepInterval" yaml:"expirySweepInterval"`
	SweepBatchSize      int           `json:"sweepBatchSize" yaml:"sweepBatchSize"`
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
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}

	if cfg.Holiday == nil {
		cfg.Holiday = &HolidayConfig{MinNoticeHours: defaultHolidayNoticeHours}
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.SlowQueryThreshold <= 0 {
		cfg.Database.SlowQueryThreshold = defaultSlowQuery
	}

	if cfg.Pagination == nil {
		cfg.Pagination = &PaginationConfig{}
	}
	if cfg.Pagination.DefaultLimit <= 0 {
		cfg.Pagination.DefaultLimit = defaultPageLimit
	}
	if cfg.Pagination.MaxLimit <= 0 {
		cfg.Pagination.MaxLimit = defaultMaxPageLimit
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.ExpirySweepInterval <= 0 {
		cfg.Worker.ExpirySweepInterval = defaultSweepInterval
	}
	if cfg.Worker.SweepBatchSize <= 0 {
		cfg.Worker.SweepBatchSize = defaultSweepBatchSize
	}
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
