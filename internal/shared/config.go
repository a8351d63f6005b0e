package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	JWTTTL      time.Duration
	CacheTTL    time.Duration
	GuestRPS    int
	GuestBurst  int
	SeedHotels  int
	SeedWorkers int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/guestlink?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		JWTSecret:   env("JWT_SECRET", ""),
		JWTTTL:      time.Duration(atoi("JWT_TTL_MINUTES", 720)) * time.Minute,
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		GuestRPS:    atoi("GUEST_RPS", 5),
		GuestBurst:  atoi("GUEST_BURST", 10),
		SeedHotels:  atoi("SEED_HOTELS", 3),
		SeedWorkers: atoi("SEED_WORKERS", 4),
	}
	if c.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty; staff tokens will not survive restarts")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
