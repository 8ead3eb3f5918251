package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process-level configuration. Built once in main from the
// environment so the rest of the code never touches os.Getenv.
type Server struct {
	Addr      string
	LogLevel  string
	LogFormat string

	// AuthDisabled skips bearer auth and resolves the customer from the
	// X-Customer-ID header. Demo/development only.
	AuthDisabled  bool
	JWTSigningKey string
	JWTIssuer     string

	// SeedFixtures loads the demo customers and counterparty directory into
	// the in-memory stores at startup.
	SeedFixtures bool

	Redis RedisConfig
	Audit AuditConfig
}

// RedisConfig controls the optional counterparty directory cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CacheTTL     time.Duration
}

// AuditConfig selects the audit store and optional Kafka fan-out.
type AuditConfig struct {
	// PostgresURL switches the audit store from in-memory to the outbox
	// table when set.
	PostgresURL string
	// KafkaBrokers enables the Kafka publisher worker when non-empty.
	KafkaBrokers []string
	KafkaTopic   string
	// BufferSize bounds the worker inbox; emission never blocks callers.
	BufferSize int
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:          envOr("RISKDESK_ADDR", ":8080"),
		LogLevel:      envOr("RISKDESK_LOG_LEVEL", "info"),
		LogFormat:     envOr("RISKDESK_LOG_FORMAT", "json"),
		AuthDisabled:  os.Getenv("RISKDESK_AUTH_DISABLED") == "true",
		JWTSigningKey: envOr("RISKDESK_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		JWTIssuer:     envOr("RISKDESK_JWT_ISSUER", "riskdesk"),
		SeedFixtures:  os.Getenv("RISKDESK_SEED_FIXTURES") != "false",
		Redis: RedisConfig{
			URL:          os.Getenv("RISKDESK_REDIS_URL"),
			PoolSize:     envIntOr("RISKDESK_REDIS_POOL_SIZE", 10),
			MinIdleConns: envIntOr("RISKDESK_REDIS_MIN_IDLE", 2),
			DialTimeout:  envDurationOr("RISKDESK_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDurationOr("RISKDESK_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDurationOr("RISKDESK_REDIS_WRITE_TIMEOUT", 3*time.Second),
			CacheTTL:     envDurationOr("RISKDESK_REDIS_CACHE_TTL", 5*time.Minute),
		},
		Audit: AuditConfig{
			PostgresURL:  os.Getenv("RISKDESK_AUDIT_POSTGRES_URL"),
			KafkaBrokers: splitList(os.Getenv("RISKDESK_AUDIT_KAFKA_BROKERS")),
			KafkaTopic:   envOr("RISKDESK_AUDIT_KAFKA_TOPIC", "riskdesk.audit"),
			BufferSize:   envIntOr("RISKDESK_AUDIT_BUFFER_SIZE", 1024),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
