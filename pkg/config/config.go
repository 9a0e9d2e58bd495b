package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable the app reads.
	EnvPrefix = "LOGIXPORT"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "LOGIXPORT_DB_DSN"
	EnvDBHost = "LOGIXPORT_DB_HOST"
	EnvDBUser = "LOGIXPORT_DB_USER"
	EnvDBName = "LOGIXPORT_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
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
	Env          string `envconfig:"LOGIXPORT_APP_ENV" default:"dev"`
	Port         string `envconfig:"LOGIXPORT_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"LOGIXPORT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LOGIXPORT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"LOGIXPORT_DB_DSN"`
	Driver string `envconfig:"LOGIXPORT_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"LOGIXPORT_DB_HOST"`
	LegacyPort     int    `envconfig:"LOGIXPORT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LOGIXPORT_DB_USER"`
	LegacyPassword string `envconfig:"LOGIXPORT_DB_PASSWORD"`
	LegacyName     string `envconfig:"LOGIXPORT_DB_NAME"`
	LegacySSLMode  string `envconfig:"LOGIXPORT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LOGIXPORT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LOGIXPORT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LOGIXPORT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LOGIXPORT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"LOGIXPORT_REDIS_URL"`
	Address      string        `envconfig:"LOGIXPORT_REDIS_ADDR"`
	Password     string        `envconfig:"LOGIXPORT_REDIS_PASSWORD"`
	DB           int           `envconfig:"LOGIXPORT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LOGIXPORT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LOGIXPORT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LOGIXPORT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LOGIXPORT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LOGIXPORT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	// The original deployment shipped a hard-coded literal; the default keeps dev
	// environments working while production overrides it.
	Secret            string `envconfig:"LOGIXPORT_JWT_SECRET" default:"logixport_secret_key_2023"`
	Issuer            string `envconfig:"LOGIXPORT_JWT_ISSUER" default:"logixport"`
	ExpirationMinutes int    `envconfig:"LOGIXPORT_JWT_EXPIRATION_MINUTES" default:"1440"`
	RememberMeDays    int    `envconfig:"LOGIXPORT_JWT_REMEMBER_ME_DAYS" default:"7"`
}

// TokenTTL returns the standard access token lifetime.
func (j JWTConfig) TokenTTL() time.Duration {
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// RememberMeTTL returns the extended lifetime granted when remember_me is set.
func (j JWTConfig) RememberMeTTL() time.Duration {
	if j.RememberMeDays <= 0 {
		return j.TokenTTL()
	}
	return time.Duration(j.RememberMeDays) * 24 * time.Hour
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"LOGIXPORT_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"LOGIXPORT_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"LOGIXPORT_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"LOGIXPORT_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"LOGIXPORT_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"LOGIXPORT_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"LOGIXPORT_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"LOGIXPORT_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"LOGIXPORT_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"LOGIXPORT_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"LOGIXPORT_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"LOGIXPORT_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"LOGIXPORT_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if strings.EqualFold(db.Driver, "sqlite") {
		db.DSN = "file::memory:?cache=shared"
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
