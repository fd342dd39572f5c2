package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	LocalStoreMemory = "memory"
	LocalStoreSQLite = "sqlite"
	LocalStoreRedis  = "redis"
)

type Config struct {
	DBUrl      string
	JWTSecret  string
	ServerPort string
	Timezone   string
	PublicURL  string

	// vazio aceita qualquer origem
	CORSOrigins []string

	// fallback (sem backend em nuvem)
	LocalStore     string
	LocalStorePath string
	RedisURL       string

	// anexos
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string

	// assinatura do treinador
	MPAccessToken     string
	SubscriptionPrice float64
	SubscriptionDays  int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	return &Config{
		DBUrl:      getEnv("DATABASE_URL", ""),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Timezone:   getEnv("TIMEZONE", "America/Sao_Paulo"),
		PublicURL:  getEnv("PUBLIC_URL", "http://localhost:8080"),

		CORSOrigins: getEnvList("CORS_ORIGINS"),

		LocalStore:     getEnv("LOCAL_STORE", LocalStoreMemory),
		LocalStorePath: getEnv("LOCAL_STORE_PATH", "trainer-manager.db"),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),

		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3PublicURL: getEnv("S3_PUBLIC_URL", ""),

		MPAccessToken:     getEnv("MP_ACCESS_TOKEN", ""),
		SubscriptionPrice: getEnvFloat("SUBSCRIPTION_PRICE", 49.90),
		SubscriptionDays:  getEnvInt("SUBSCRIPTION_DAYS", 30),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getEnvFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return def
	}
	return v
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// CloudEnabled reports whether connection credentials for the remote
// backend were supplied.
func (c *Config) CloudEnabled() bool {
	return c.DBUrl != ""
}

func (c *Config) S3Enabled() bool {
	return c.S3Bucket != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

func (c *Config) SubscriptionsEnabled() bool {
	return c.MPAccessToken != ""
}
