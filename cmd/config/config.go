package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Supabase    SupabaseConfig
	Auth        AuthConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// SupabaseConfig points at the hosted store. Both values may be empty; the
// app then serves with every remote-dependent route degraded instead of
// refusing to start.
type SupabaseConfig struct {
	URL string
	Key string
}

type AuthConfig struct {
	SessionSecret  string
	SessionExpTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Load reads configuration from the environment, with .env support.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getenv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getenv("PORT", "5001"),
			ReadTimeout:  getduration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getduration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getduration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Supabase: SupabaseConfig{
			URL: os.Getenv("SUPABASE_URL"),
			Key: os.Getenv("SUPABASE_KEY"),
		},
		Auth: AuthConfig{
			SessionSecret:  getenv("SECRET_KEY", "super-secret-key-default-ganti-ini"),
			SessionExpTime: getduration("SESSION_EXPIRATION", 24*time.Hour),
		},
		Redis: RedisConfig{
			Host:     getenv("REDIS_HOST", "localhost"),
			Port:     getint("REDIS_PORT", 6379),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getint("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     os.Getenv("RABBITMQ_HOST"),
			Port:     getint("RABBITMQ_PORT", 5672),
			User:     getenv("RABBITMQ_USER", "guest"),
			Password: getenv("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getduration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
