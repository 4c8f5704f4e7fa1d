package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Security  SecurityConfig
	Engine    EngineConfig
	Queue     QueueConfig
	Scheduler SchedulerConfig
	Import    ImportConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// AuthConfig verifies tokens minted by the external auth service. Only the public key is held here.
type AuthConfig struct {
	PublicKey *rsa.PublicKey
	Issuer    string
	// Disabled trusts the X-User-ID header instead of a bearer token. Refused in production.
	Disabled bool
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type EngineConfig struct {
	PageSize             int
	PageDelay            time.Duration
	TableNamespace       string
	ClassifierConfigFile string
}

type QueueConfig struct {
	Workers      int
	PollInterval time.Duration
	MaxRetries   int
}

type SchedulerConfig struct {
	Enabled            bool
	TimeZone           string
	CleanupSchedule    string
	StaleJobSchedule   string
	StaleJobTimeout    time.Duration
	CompletedRetention time.Duration
}

type ImportConfig struct {
	MaxUploadBytes int64
	BatchSize      int
}

// Load reads the server configuration. It exits when the token verification key is
// required and cannot be loaded.
func Load() *Config {
	return load(true)
}

// LoadOffline reads the configuration for tools that never verify tokens.
func LoadOffline() *Config {
	return load(false)
}

func load(verifyTokens bool) *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "ledger_user"),
			Password:        getEnv("DB_PASSWORD", "ledger_password"),
			Name:            getEnv("DB_NAME", "ledger_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Auth: AuthConfig{
			Issuer:   getEnv("AUTH_ISSUER", ""),
			Disabled: getBoolEnv("AUTH_DISABLED", false),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Engine: EngineConfig{
			PageSize:             getIntEnv("SCAN_PAGE_SIZE", 500),
			PageDelay:            getDurationEnv("SCAN_PAGE_DELAY", 50*time.Millisecond),
			TableNamespace:       getEnv("BANK_TABLE_NAMESPACE", "bank-txn"),
			ClassifierConfigFile: getEnv("CLASSIFIER_CONFIG_FILE", ""),
		},
		Queue: QueueConfig{
			Workers:      getIntEnv("RECOMPUTE_WORKERS", 4),
			PollInterval: getDurationEnv("RECOMPUTE_POLL_INTERVAL", time.Second),
			MaxRetries:   getIntEnv("RECOMPUTE_MAX_RETRIES", 3),
		},
		Scheduler: SchedulerConfig{
			Enabled:            getBoolEnv("SCHEDULER_ENABLED", true),
			TimeZone:           getEnv("SCHEDULER_TIMEZONE", "UTC"),
			CleanupSchedule:    getEnv("JOB_CLEANUP_SCHEDULE", "0 3 * * *"),
			StaleJobSchedule:   getEnv("STALE_JOB_SCHEDULE", "*/5 * * * *"),
			StaleJobTimeout:    getDurationEnv("STALE_JOB_TIMEOUT", 15*time.Minute),
			CompletedRetention: getDurationEnv("COMPLETED_JOB_RETENTION", 7*24*time.Hour),
		},
		Import: ImportConfig{
			MaxUploadBytes: int64(getIntEnv("IMPORT_MAX_UPLOAD_BYTES", 20<<20)),
			BatchSize:      getIntEnv("IMPORT_BATCH_SIZE", 200),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if !verifyTokens {
		return config
	}

	if config.Auth.Disabled && config.IsProduction() {
		log.Fatal("AUTH_DISABLED cannot be used in production")
	}

	if !config.Auth.Disabled {
		publicKey, err := config.loadAuthPublicKey()
		if err != nil {
			log.Fatal("Failed to load auth public key:", err)
		}
		config.Auth.PublicKey = publicKey
	}

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadAuthPublicKey reads the base64-encoded PEM key of the external auth service.
// Outside production a throwaway key is generated so the server can boot; no token will verify against it.
func (c *Config) loadAuthPublicKey() (*rsa.PublicKey, error) {
	publicKeyB64 := os.Getenv("AUTH_PUBLIC_KEY")
	if publicKeyB64 != "" {
		publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode AUTH_PUBLIC_KEY: %w", err)
		}
		return LoadRSAPublicKey(publicKeyBytes)
	}

	if c.IsProduction() {
		return nil, fmt.Errorf("AUTH_PUBLIC_KEY environment variable must be set in production environments")
	}

	log.Println("AUTH_PUBLIC_KEY not set: generating a throwaway key, bearer tokens will be rejected (set AUTH_DISABLED=true for local use)")
	_, publicKey, err := GenerateRSAKeyPair()
	return publicKey, err
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

// LoadRSAPublicKey loads an RSA public key from PEM format
func LoadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
