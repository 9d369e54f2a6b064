package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr        string
	GinMode        string
	DBDSN          string
	RedisAddr      string
	JWTSecret      string
	AllowedOrigins []string
	MigrationsPath string
	SnowflakeNode  int64
}

// LoadEnv reads configuration from the environment, loading a local .env
// first when present (ignored in production where vars are set directly).
func LoadEnv() Env {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	env := Env{
		AppAddr:        getenv("APP_ADDR", ":8080"),
		GinMode:        getenv("GIN_MODE", ""),
		DBDSN:          getenv("DB_DSN", "root:@tcp(127.0.0.1:3306)/tourapi?parseTime=true&loc=UTC&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"),
		RedisAddr:      getenv("REDIS_ADDR", ""),
		JWTSecret:      getenv("JWT_SECRET", ""),
		MigrationsPath: getenv("MIGRATIONS_PATH", "migrations"),
		SnowflakeNode:  1,
	}

	if n, err := strconv.ParseInt(getenv("SNOWFLAKE_NODE", "1"), 10, 64); err == nil {
		env.SnowflakeNode = n
	}

	if raw := getenv("CORS_ALLOWED_ORIGINS", ""); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.AllowedOrigins = append(env.AllowedOrigins, o)
			}
		}
	}
	if len(env.AllowedOrigins) == 0 {
		env.AllowedOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}
	}
	return env
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
