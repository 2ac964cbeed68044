package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	Service      ServiceConfig
	DB           DBConfig
	Redis        RedisConfig
	CartToken    CartTokenConfig
	Cart         CartConfig
	FeatureFlags FeatureFlagsConfig
	GameData     GameDataConfig
	Payments     PaymentsConfig
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
	Env          string `envconfig:"PLAYMERCH_APP_ENV" required:"true"`
	Port         string `envconfig:"PLAYMERCH_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"PLAYMERCH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PLAYMERCH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"PLAYMERCH_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"PLAYMERCH_DB_DSN"`
	Driver string `envconfig:"PLAYMERCH_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"PLAYMERCH_DB_HOST"`
	LegacyPort     int    `envconfig:"PLAYMERCH_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"PLAYMERCH_DB_USER"`
	LegacyPassword string `envconfig:"PLAYMERCH_DB_PASSWORD"`
	LegacyName     string `envconfig:"PLAYMERCH_DB_NAME"`
	LegacySSLMode  string `envconfig:"PLAYMERCH_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PLAYMERCH_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PLAYMERCH_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PLAYMERCH_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PLAYMERCH_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"PLAYMERCH_REDIS_URL" required:"true"`
	Address      string        `envconfig:"PLAYMERCH_REDIS_ADDR"`
	Password     string        `envconfig:"PLAYMERCH_REDIS_PASSWORD"`
	DB           int           `envconfig:"PLAYMERCH_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PLAYMERCH_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PLAYMERCH_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PLAYMERCH_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PLAYMERCH_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PLAYMERCH_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CartTokenConfig signs the anonymous cart-session token the browser echoes back.
type CartTokenConfig struct {
	Secret  string `envconfig:"PLAYMERCH_CART_TOKEN_SECRET" required:"true"`
	Issuer  string `envconfig:"PLAYMERCH_CART_TOKEN_ISSUER" default:"playmerch"`
	TTLDays int    `envconfig:"PLAYMERCH_CART_TOKEN_TTL_DAYS" default:"30"`
}

// TTL returns the cart token lifetime.
func (c CartTokenConfig) TTL() time.Duration {
	if c.TTLDays <= 0 {
		return 0
	}
	return time.Duration(c.TTLDays) * 24 * time.Hour
}

type CartConfig struct {
	// Persisted cart documents expire together with the token that names them.
	TTLDays int `envconfig:"PLAYMERCH_CART_TTL_DAYS" default:"30"`
}

func (c CartConfig) TTL() time.Duration {
	if c.TTLDays <= 0 {
		return 0
	}
	return time.Duration(c.TTLDays) * 24 * time.Hour
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"PLAYMERCH_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"PLAYMERCH_AUTO_MIGRATE" default:"false"`
}

type GameDataConfig struct {
	BaseURL     string        `envconfig:"PLAYMERCH_GAMEDATA_BASE_URL" default:"https://valorant-api.com"`
	CacheTTL    time.Duration `envconfig:"PLAYMERCH_GAMEDATA_CACHE_TTL" default:"5m"`
	MapRotation []string      `envconfig:"PLAYMERCH_GAMEDATA_MAP_ROTATION" default:"Ascent,Bind,Haven,Sunset,Icebox,Lotus,Abyss"`
}

type PaymentsConfig struct {
	GatewayCheckoutURL string `envconfig:"PLAYMERCH_PAYMENTS_GATEWAY_URL"`

	BankName          string `envconfig:"PLAYMERCH_PAYMENTS_BANK_NAME"`
	BankAccountHolder string `envconfig:"PLAYMERCH_PAYMENTS_BANK_ACCOUNT_HOLDER"`
	BankAccountNumber string `envconfig:"PLAYMERCH_PAYMENTS_BANK_ACCOUNT_NUMBER"`
	BankIDNumber      string `envconfig:"PLAYMERCH_PAYMENTS_BANK_ID_NUMBER"`
	BankAccountType   string `envconfig:"PLAYMERCH_PAYMENTS_BANK_ACCOUNT_TYPE" default:"checking"`

	MobilePhone    string `envconfig:"PLAYMERCH_PAYMENTS_MOBILE_PHONE"`
	MobileBank     string `envconfig:"PLAYMERCH_PAYMENTS_MOBILE_BANK"`
	MobileIDNumber string `envconfig:"PLAYMERCH_PAYMENTS_MOBILE_ID_NUMBER"`

	ContactEmail    string `envconfig:"PLAYMERCH_PAYMENTS_CONTACT_EMAIL"`
	ContactWhatsApp string `envconfig:"PLAYMERCH_PAYMENTS_CONTACT_WHATSAPP"`
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
