package shared

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	// gateway
	ReservationURL string
	PaymentURL     string
	LoyaltyURL     string
	UpstreamRPS    int
	Compensate     bool

	// storage
	MySQLDSN  string
	RedisAddr string
	RedisDB   int
	RedisPass string
}

// Load reads the environment, after loading a .env file when one exists.
// defaultAddr is the listen address used when HTTP_ADDR is unset.
func Load(defaultAddr string) Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env")
	}

	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", defaultAddr),
		MetricsAddr:    env("METRICS_ADDR", ""),
		ReservationURL: env("RESERVATION_URL", "http://localhost:8070/api/v1"),
		PaymentURL:     env("PAYMENT_URL", "http://localhost:8060/api/v1"),
		LoyaltyURL:     env("LOYALTY_URL", "http://localhost:8050/api/v1"),
		UpstreamRPS:    atoi("UPSTREAM_RPS", 0),
		Compensate:     boolean("GATEWAY_COMPENSATE", false),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/hotels?parseTime=true&charset=utf8mb4&loc=UTC"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-integer value")
	}
	return def
}

func boolean(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-boolean value")
	}
	return def
}
