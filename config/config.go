package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	Port          string
	DBDriver      string
	DBPath        string
	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	JWTSecret     string
	JWTTTL        time.Duration
	CORSOrigins   []string
	StaticDir     string
	ProtectAdmin  bool
	AuthRateLimit float64

	// EphemeralSecret bernilai true bila Validate membuat JWT secret acak.
	EphemeralSecret bool
}

var (
	cfg  *Config
	once sync.Once
)

// LoadConfig membaca .env (jika ada) lalu environment variable. Hasilnya di-cache.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found. Relying on environment variables.")
		}
		cfg = FromEnv()
	})
	return cfg
}

// FromEnv membangun Config langsung dari environment tanpa cache.
func FromEnv() *Config {
	c := &Config{
		AppEnv:      getenv("APP_ENV", "development"),
		Port:        getenv("PORT", "5000"),
		DBDriver:    getenv("DB_DRIVER", "sqlite3"),
		DBPath:      getenv("DB_PATH", "gassehat.db"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBHost:      getenv("DB_HOST", "127.0.0.1"),
		DBPort:      getenv("DB_PORT", "3306"),
		DBName:      os.Getenv("DB_NAME"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "*")),
		StaticDir:   getenv("STATIC_DIR", "public"),
	}

	c.JWTTTL = 24 * time.Hour
	if v := os.Getenv("JWT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.JWTTTL = d
		} else {
			c.JWTTTL = 0
		}
	}
	c.ProtectAdmin, _ = strconv.ParseBool(os.Getenv("PROTECT_ADMIN"))
	c.AuthRateLimit = 5
	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.AuthRateLimit = f
		} else {
			c.AuthRateLimit = 0
		}
	}
	return c
}

func (c *Config) IsDev() bool {
	return c.AppEnv == "development"
}

// Validate memastikan konfigurasi aman dipakai. Di mode development JWT_SECRET boleh
// kosong; secret acak per-proses akan dibuat.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite3":
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH is required when DB_DRIVER is sqlite3")
		}
	case "mysql":
		if c.DBName == "" || c.DBUser == "" {
			return fmt.Errorf("DB_NAME and DB_USER are required when DB_DRIVER is mysql")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be \"sqlite3\" or \"mysql\", got %q", c.DBDriver)
	}

	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be a positive duration such as 24h")
	}

	if c.AuthRateLimit <= 0 {
		return fmt.Errorf("AUTH_RATE_LIMIT must be a positive number of requests per second")
	}

	if c.JWTSecret == "" {
		if !c.IsDev() {
			return fmt.Errorf("JWT_SECRET is required outside development")
		}
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return fmt.Errorf("generate dev jwt secret: %w", err)
		}
		c.JWTSecret = hex.EncodeToString(buf)
		c.EphemeralSecret = true
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
