package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Bandit   BanditConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	// Empty Host disables the Redis arm cache entirely.
	Host     string
	Port     string
	Password string
	DB       int
	// Arm cache TTL in seconds.
	ArmCacheTTL int
}

type BanditConfig struct {
	// DefaultK is the ranked list length when the caller omits k.
	DefaultK int
	// Seed for the sampling PRNG; 0 means seed from the clock.
	Seed int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid REDIS_DB")
	}

	armCacheTTL, err := strconv.Atoi(getEnv("REDIS_ARM_CACHE_TTL", "60"))
	if err != nil {
		return nil, errors.New("invalid REDIS_ARM_CACHE_TTL")
	}

	defaultK, err := strconv.Atoi(getEnv("BANDIT_DEFAULT_K", "3"))
	if err != nil || defaultK <= 0 {
		return nil, errors.New("invalid BANDIT_DEFAULT_K")
	}

	seed, err := strconv.ParseInt(getEnv("BANDIT_SEED", "0"), 10, 64)
	if err != nil {
		return nil, errors.New("invalid BANDIT_SEED")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "SmartMenu Recommender"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "smartmenu"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			Host:        getEnv("REDIS_HOST", ""),
			Port:        getEnv("REDIS_PORT", "6379"),
			Password:    getEnv("REDIS_PASSWORD", ""),
			DB:          redisDB,
			ArmCacheTTL: armCacheTTL,
		},
		Bandit: BanditConfig{
			DefaultK: defaultK,
			Seed:     seed,
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
