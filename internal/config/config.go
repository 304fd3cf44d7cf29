package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/riskibarqy/galero/internal/platform/logging"
	"github.com/riskibarqy/galero/internal/platform/resilience"
)

// FileEnv names an optional YAML file whose flat, lower-case keys mirror the
// environment variables below. Environment values win over the file.
const FileEnv = "GALERO_CONFIG"

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	HTTPAddr                string
	ReadTimeout             time.Duration
	WriteTimeout            time.Duration
	LogLevel                logging.Level
	StorageDriver           string
	DBURL                   string
	DBApplicationName       string
	DBMaxOpenConns          int
	DBBootstrapSeed         bool
	SnapshotCacheTTL        time.Duration
	SnapshotCircuit         resilience.CircuitBreakerConfig
	CORSAllowedOrigins      []string
	LeaderboardDefaultLimit int
	LeaderboardMaxLimit     int
	OverviewWorkers         int
	MetricsEnabled          bool
	PprofEnabled            bool
	PprofAddr               string
	UptraceEnabled          bool
	UptraceDSN              string
	UptraceLogsEnabled      bool
	PyroscopeEnabled        bool
	PyroscopeServerAddress  string
	PyroscopeAppName        string
	PyroscopeAuthToken      string
	PyroscopeBasicAuthUser  string
	PyroscopeBasicAuthPass  string
	PyroscopeUploadRate     time.Duration
}

func Load() (Config, error) {
	src, err := newSource(os.Getenv(FileEnv))
	if err != nil {
		return Config{}, err
	}

	appEnv, err := parseAppEnv(src.get("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logLevel, err := logging.ParseLevel(src.get("APP_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}

	readTimeout, err := src.positiveDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := src.positiveDuration("APP_WRITE_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        strings.TrimSpace(src.get("APP_SERVICE_NAME", "galero-api")),
		ServiceVersion:     strings.TrimSpace(src.get("APP_SERVICE_VERSION", "dev")),
		HTTPAddr:           strings.TrimSpace(src.get("APP_HTTP_ADDR", ":8080")),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		LogLevel:           logLevel,
		DBURL:              strings.TrimSpace(src.get("DB_URL", "")),
		CORSAllowedOrigins: splitCSV(src.get("CORS_ALLOWED_ORIGINS", "*")),
		PprofAddr:          strings.TrimSpace(src.get("PPROF_ADDR", ":6060")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	if err := loadStorage(src, &cfg); err != nil {
		return Config{}, err
	}
	if err := loadEngine(src, &cfg); err != nil {
		return Config{}, err
	}
	if err := loadObservability(src, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadStorage(src *source, cfg *Config) error {
	driver := strings.ToLower(strings.TrimSpace(src.get("STORAGE_DRIVER", StorageMemory)))
	switch driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q: valid values are %s, %s", driver, StorageMemory, StoragePostgres)
	}
	cfg.StorageDriver = driver
	if driver == StoragePostgres && cfg.DBURL == "" {
		return fmt.Errorf("DB_URL is required when STORAGE_DRIVER=%s", StoragePostgres)
	}

	cfg.DBApplicationName = strings.TrimSpace(src.get("DB_APPLICATION_NAME", cfg.ServiceName))

	maxOpen, err := src.int("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return err
	}
	if maxOpen < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1")
	}
	cfg.DBMaxOpenConns = maxOpen

	if cfg.DBBootstrapSeed, err = src.bool("DB_BOOTSTRAP_SEED", false); err != nil {
		return err
	}

	// Zero keeps every computation on a fresh read.
	cacheTTL, err := time.ParseDuration(src.get("SNAPSHOT_CACHE_TTL", "0s"))
	if err != nil {
		return fmt.Errorf("parse SNAPSHOT_CACHE_TTL: %w", err)
	}
	if cacheTTL < 0 {
		return fmt.Errorf("SNAPSHOT_CACHE_TTL must be >= 0")
	}
	cfg.SnapshotCacheTTL = cacheTTL

	circuit := resilience.DefaultCircuitBreakerConfig()
	if circuit.Enabled, err = src.bool("SNAPSHOT_CIRCUIT_ENABLED", true); err != nil {
		return err
	}
	if circuit.FailureThreshold, err = src.int("SNAPSHOT_CIRCUIT_FAILURE_COUNT", circuit.FailureThreshold); err != nil {
		return err
	}
	if circuit.FailureThreshold < 1 {
		return fmt.Errorf("SNAPSHOT_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	if circuit.OpenTimeout, err = src.positiveDuration("SNAPSHOT_CIRCUIT_OPEN_TIMEOUT", circuit.OpenTimeout.String()); err != nil {
		return err
	}
	if circuit.HalfOpenMaxReq, err = src.int("SNAPSHOT_CIRCUIT_HALF_OPEN_MAX_REQ", circuit.HalfOpenMaxReq); err != nil {
		return err
	}
	if circuit.HalfOpenMaxReq < 1 {
		return fmt.Errorf("SNAPSHOT_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	cfg.SnapshotCircuit = circuit
	return nil
}

func loadEngine(src *source, cfg *Config) error {
	var err error
	if cfg.LeaderboardDefaultLimit, err = src.int("LEADERBOARD_DEFAULT_LIMIT", 10); err != nil {
		return err
	}
	if cfg.LeaderboardMaxLimit, err = src.int("LEADERBOARD_MAX_LIMIT", 500); err != nil {
		return err
	}
	if cfg.LeaderboardDefaultLimit < 1 {
		return fmt.Errorf("LEADERBOARD_DEFAULT_LIMIT must be >= 1")
	}
	if cfg.LeaderboardMaxLimit < cfg.LeaderboardDefaultLimit {
		return fmt.Errorf("LEADERBOARD_MAX_LIMIT must be >= LEADERBOARD_DEFAULT_LIMIT")
	}

	if cfg.OverviewWorkers, err = src.int("OVERVIEW_WORKERS", 3); err != nil {
		return err
	}
	if cfg.OverviewWorkers < 1 {
		return fmt.Errorf("OVERVIEW_WORKERS must be >= 1")
	}

	cfg.MetricsEnabled, err = src.bool("METRICS_ENABLED", true)
	return err
}

func loadObservability(src *source, cfg *Config) error {
	var err error
	if cfg.PprofEnabled, err = src.bool("PPROF_ENABLED", false); err != nil {
		return err
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	if cfg.UptraceEnabled, err = src.bool("UPTRACE_ENABLED", false); err != nil {
		return err
	}
	cfg.UptraceDSN = strings.TrimSpace(src.get("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(src.get("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceLogsEnabled, err = src.bool("UPTRACE_LOGS_ENABLED", false); err != nil {
		return err
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	if cfg.PyroscopeEnabled, err = src.bool("PYROSCOPE_ENABLED", false); err != nil {
		return err
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(src.get("PYROSCOPE_SERVER_ADDRESS", ""))
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(src.get("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAuthToken = strings.TrimSpace(src.get("PYROSCOPE_AUTH_TOKEN", ""))
	cfg.PyroscopeBasicAuthUser = strings.TrimSpace(src.get("PYROSCOPE_BASIC_AUTH_USER", ""))
	cfg.PyroscopeBasicAuthPass = strings.TrimSpace(src.get("PYROSCOPE_BASIC_AUTH_PASSWORD", ""))
	cfg.PyroscopeUploadRate, err = src.positiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	return err
}

// source resolves a key from the layered koanf instance.
type source struct {
	k *koanf.Koanf
}

func newSource(path string) (*source, error) {
	k := koanf.New(".")

	if path = strings.TrimSpace(path); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s %q: %w", FileEnv, path, err)
		}
	}

	// Flat keys: APP_HTTP_ADDR becomes app_http_addr, matching the YAML file.
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	return &source{k: k}, nil
}

func (s *source) get(key, fallback string) string {
	name := strings.ToLower(key)
	if !s.k.Exists(name) {
		return fallback
	}
	value := s.k.String(name)
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func (s *source) int(key string, fallback int) (int, error) {
	value := strings.TrimSpace(s.get(key, ""))
	if value == "" {
		return fallback, nil
	}
	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func (s *source) bool(key string, fallback bool) (bool, error) {
	out, err := strconv.ParseBool(strings.TrimSpace(s.get(key, strconv.FormatBool(fallback))))
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func (s *source) positiveDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(strings.TrimSpace(s.get(key, fallback)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
