package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"deliveryhub/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort       = "8080"
	defaultJWTTTL         = 24 * time.Hour
	defaultServiceVersion = "dev"
)

type Config struct {
	HTTPPort string

	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	DBAutoMigrate bool

	JWTSecret string
	JWTTTL    time.Duration

	// Order events are only published when KafkaHost is set.
	KafkaHost              string
	KafkaOrderChangedTopic string

	OTelEndpoint   string
	ServiceVersion string
}

// LoadConfig reads the configuration from the environment. A .env file in the working
// directory, when present, fills variables that are not already set.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return configFromEnv(os.Getenv)
}

func configFromEnv(getenv func(string) string) (Config, error) {
	env := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:               env("HTTP_PORT", defaultHTTPPort),
		DBHost:                 env("DB_HOST", "localhost"),
		DBPort:                 env("DB_PORT", "5432"),
		DBUser:                 getenv("DB_USER"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 getenv("DB_NAME"),
		DBSslMode:              env("DB_SSLMODE", "disable"),
		JWTSecret:              getenv("JWT_SECRET"),
		KafkaHost:              getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: env("KAFKA_ORDER_CHANGED_TOPIC", "orders.changed"),
		OTelEndpoint:           getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceVersion:         env("SERVICE_VERSION", defaultServiceVersion),
	}

	var err error
	if cfg.DBAutoMigrate, err = strconv.ParseBool(env("DB_AUTO_MIGRATE", "true")); err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("DB_AUTO_MIGRATE", err)
	}
	if cfg.JWTTTL, err = time.ParseDuration(env("JWT_TTL", defaultJWTTTL.String())); err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("JWT_TTL", err)
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every missing mandatory setting at once.
func (c Config) Validate() error {
	var joined []error
	if c.DBUser == "" {
		joined = append(joined, errs.NewValueIsRequiredError("DB_USER"))
	}
	if c.DBName == "" {
		joined = append(joined, errs.NewValueIsRequiredError("DB_NAME"))
	}
	if c.JWTSecret == "" {
		joined = append(joined, errs.NewValueIsRequiredError("JWT_SECRET"))
	}
	if c.JWTTTL <= 0 {
		joined = append(joined, errs.NewValueIsOutOfRangeError("JWT_TTL", c.JWTTTL, "1ns", "unbounded"))
	}
	return errors.Join(joined...)
}

// DatabaseURL is the postgres:// URL shared by the connection pool and the migrator.
func (c Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}
