package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Features  FeatureFlagsConfig
	OpenAI    OpenAIConfig
	Search    SearchConfig
	Styling   StylingConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STYLEHAUL_APP_ENV" required:"true"`
	Port         string `envconfig:"STYLEHAUL_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STYLEHAUL_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STYLEHAUL_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"STYLEHAUL_DB_DSN"`
	Driver string `envconfig:"STYLEHAUL_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"STYLEHAUL_DB_HOST"`
	LegacyPort     int    `envconfig:"STYLEHAUL_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"STYLEHAUL_DB_USER"`
	LegacyPassword string `envconfig:"STYLEHAUL_DB_PASSWORD"`
	LegacyName     string `envconfig:"STYLEHAUL_DB_NAME"`
	LegacySSLMode  string `envconfig:"STYLEHAUL_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"STYLEHAUL_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"STYLEHAUL_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"STYLEHAUL_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STYLEHAUL_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"STYLEHAUL_REDIS_URL" required:"true"`
	Address      string        `envconfig:"STYLEHAUL_REDIS_ADDR"`
	Password     string        `envconfig:"STYLEHAUL_REDIS_PASSWORD"`
	DB           int           `envconfig:"STYLEHAUL_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STYLEHAUL_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STYLEHAUL_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STYLEHAUL_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STYLEHAUL_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STYLEHAUL_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"STYLEHAUL_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"STYLEHAUL_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"STYLEHAUL_JWT_EXPIRATION_MINUTES" default:"60"`
}

type RateLimitConfig struct {
	GenerateWindow    time.Duration `envconfig:"STYLEHAUL_RATE_LIMIT_GENERATE_WINDOW" default:"1m"`
	GenerateUserLimit int           `envconfig:"STYLEHAUL_RATE_LIMIT_GENERATE_USER_LIMIT" default:"5"`
	GenerateIPLimit   int           `envconfig:"STYLEHAUL_RATE_LIMIT_GENERATE_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"STYLEHAUL_AUTO_MIGRATE" default:"false"`
}

type OpenAIConfig struct {
	APIKey    string        `envconfig:"STYLEHAUL_OPENAI_API_KEY" required:"true"`
	Model     string        `envconfig:"STYLEHAUL_OPENAI_MODEL" default:"gpt-4o-mini"`
	BaseURL   string        `envconfig:"STYLEHAUL_OPENAI_BASE_URL"`
	Timeout   time.Duration `envconfig:"STYLEHAUL_OPENAI_TIMEOUT" default:"30s"`
	MaxTokens int           `envconfig:"STYLEHAUL_OPENAI_MAX_TOKENS" default:"2048"`
}

type SearchConfig struct {
	APIKey  string        `envconfig:"STYLEHAUL_SEARCH_API_KEY" required:"true"`
	BaseURL string        `envconfig:"STYLEHAUL_SEARCH_BASE_URL"`
	Timeout time.Duration `envconfig:"STYLEHAUL_SEARCH_TIMEOUT" default:"15s"`
}

// StylingConfig bounds the generation pipeline.
type StylingConfig struct {
	MaxQueries       int           `envconfig:"STYLEHAUL_STYLING_MAX_QUERIES" default:"4"`
	ProductsPerQuery int           `envconfig:"STYLEHAUL_STYLING_PRODUCTS_PER_QUERY" default:"2"`
	MaxProducts      int           `envconfig:"STYLEHAUL_STYLING_MAX_PRODUCTS" default:"12"`
	RetryAttempts    int           `envconfig:"STYLEHAUL_STYLING_RETRY_ATTEMPTS" default:"2"`
	RetryBaseDelay   time.Duration `envconfig:"STYLEHAUL_STYLING_RETRY_BASE_DELAY" default:"1s"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
