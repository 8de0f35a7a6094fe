package configs

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	AppEnv         string
	JWTSecret      string
	JWTTTL         time.Duration
	BlacklistTTL   time.Duration
	AllowedOrigins []string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			zap.L().Info("no .env file found, using system environment")
		} else {
			zap.L().Info(".env file loaded")
		}
	} else {
		zap.L().Info("running on Railway, using system environment")
	}

	AppEnv = GetEnv("APP_ENV", "development")
	JWTSecret = GetEnv("JWT_SECRET")
	JWTTTL = time.Duration(GetEnvInt("JWT_TTL_HOURS", 12)) * time.Hour
	BlacklistTTL = time.Duration(GetEnvInt("TOKEN_BLACKLIST_TTL_DAYS", 7)) * 24 * time.Hour
	AllowedOrigins = splitList(GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"))

	if JWTSecret == "" {
		zap.L().Warn("JWT_SECRET is not set")
	}
}

func IsProduction() bool { return AppEnv == "production" }

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		zap.L().Warn("invalid integer env, using default", zap.String("key", key), zap.Int("default", def))
		return def
	}
	return n
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// =======================
// DATABASE DSN
// =======================

// DatabaseDSN: DATABASE_URL kalau ada, selain itu dirakit dari DB_*.
func DatabaseDSN() string {
	if v := strings.TrimSpace(GetEnv("DATABASE_URL")); v != "" {
		return v
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(GetEnv("DB_USER"), GetEnv("DB_PASSWORD")),
		Host:   fmt.Sprintf("%s:%s", GetEnv("DB_HOST", "localhost"), GetEnv("DB_PORT", "5432")),
		Path:   "/" + GetEnv("DB_NAME"),
	}
	q := url.Values{}
	q.Set("sslmode", GetEnv("DB_SSLMODE", "require"))
	q.Set("application_name", "rumahmengaji")
	q.Set("options", "-c statement_timeout=3000")
	u.RawQuery = q.Encode()
	return u.String()
}
