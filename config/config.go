package config

import (
	"log"
	"net"
	neturl "net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// RedisPort is fixed by the deployment: the cache endpoint is always
// reached on the standard Redis port.
const RedisPort = "6379"

// Probe strategies. "tcp" checks raw reachability only; "ping" speaks the
// dependency's own protocol (SELECT 1 / PING).
const (
	ProbeStrategyTCP  = "tcp"
	ProbeStrategyPing = "ping"
)

// Exec modes. "replace" hands the process image over via exec(2);
// "supervise" spawns the command and forwards signals and the exit code.
const (
	ExecModeReplace   = "replace"
	ExecModeSupervise = "supervise"
)

// Config holds the entrypoint configuration, read once from the environment
type Config struct {
	Role string

	DBHost    string
	DBPort    string
	RedisHost string

	// Used only by the "ping" probe strategy
	DatabaseURL   string
	RedisPassword string

	ProbeStrategy    string
	ProbeTimeout     time.Duration // per-attempt bound; 0 disables it
	ProbeInterval    time.Duration
	ProbeMaxAttempts int           // 0 = retry forever
	ProbeDeadline    time.Duration // overall bound; 0 = none

	// Revision toggles for the worker role
	WorkerWaitsForDB    bool
	WorkerEventsEnabled bool

	ExecMode string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	dbHost := GetEnvOrDefault("DB_HOST", "localhost")
	dbPort := GetEnvOrDefault("DB_PORT", "5432")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = buildDatabaseURLFromEnv(dbHost, dbPort)
	}

	strategy := strings.ToLower(GetEnvOrDefault("PROBE_STRATEGY", ProbeStrategyTCP))
	if strategy != ProbeStrategyTCP && strategy != ProbeStrategyPing {
		log.Printf("Warning: unknown PROBE_STRATEGY '%s', falling back to '%s'", strategy, ProbeStrategyTCP)
		strategy = ProbeStrategyTCP
	}

	execMode := strings.ToLower(GetEnvOrDefault("EXEC_MODE", ExecModeReplace))
	if execMode != ExecModeReplace && execMode != ExecModeSupervise {
		log.Printf("Warning: unknown EXEC_MODE '%s', falling back to '%s'", execMode, ExecModeReplace)
		execMode = ExecModeReplace
	}

	return &Config{
		Role:                strings.TrimSpace(os.Getenv("CONTAINER_ROLE")),
		DBHost:              dbHost,
		DBPort:              dbPort,
		RedisHost:           GetEnvOrDefault("REDIS_HOST", "localhost"),
		DatabaseURL:         dbURL,
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		ProbeStrategy:       strategy,
		ProbeTimeout:        time.Duration(GetEnvAsInt("PROBE_TIMEOUT_SECONDS", 1)) * time.Second,
		ProbeInterval:       time.Duration(GetEnvAsInt("PROBE_INTERVAL_SECONDS", 1)) * time.Second,
		ProbeMaxAttempts:    GetEnvAsInt("PROBE_MAX_ATTEMPTS", 0),
		ProbeDeadline:       time.Duration(GetEnvAsInt("PROBE_DEADLINE_SECONDS", 0)) * time.Second,
		WorkerWaitsForDB:    GetEnvAsBool("WORKER_WAITS_FOR_DB", true),
		WorkerEventsEnabled: GetEnvAsBool("WORKER_EVENTS_ENABLED", true),
		ExecMode:            execMode,
	}
}

// GetEnvOrDefault returns environment variable value or default
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsBool parses environment variable as boolean
func GetEnvAsBool(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		value = strings.ToLower(value)
		if value == "true" || value == "1" || value == "yes" {
			return true
		}
		if value == "false" || value == "0" || value == "no" {
			return false
		}
	}
	return defaultValue
}

// GetEnvAsInt parses environment variable as integer
func GetEnvAsInt(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// buildDatabaseURLFromEnv builds a postgres URL from the discrete connection
// env vars supplied by the deployment (compose/K8s style)
func buildDatabaseURLFromEnv(host, port string) string {
	user := GetEnvOrDefault("DB_USER", "postgres")
	pass := os.Getenv("DB_PASSWORD") // may contain spaces/specials
	db := GetEnvOrDefault("DB_NAME", "siaugesmat")
	sslmode := GetEnvOrDefault("DB_SSLMODE", "prefer")
	u := &neturl.URL{
		Scheme: "postgres",
		User:   neturl.UserPassword(user, pass),
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + db,
	}
	q := neturl.Values{}
	q.Set("sslmode", sslmode)
	u.RawQuery = q.Encode()
	return u.String()
}
