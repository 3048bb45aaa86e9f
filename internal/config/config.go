package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/draft-assistant/internal/domain/player"
	"github.com/riskibarqy/draft-assistant/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	DBURL                   string
	DBDisablePreparedBinary bool
	DBTraceQueryMax         int
	CacheEnabled            bool
	CacheTTL                time.Duration
	ReplacementRanks        map[player.Position]int
	ReplacementStrict       bool
	RecomputeMaxWorkers     int
	LogLevel                logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	replacementRanks, err := ParseRankMap(getEnv("REPLACEMENT_RANKS", ""))
	if err != nil {
		return Config{}, fmt.Errorf("parse REPLACEMENT_RANKS: %w", err)
	}

	replacementStrict, err := strconv.ParseBool(getEnv("REPLACEMENT_STRICT", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse REPLACEMENT_STRICT: %w", err)
	}

	dbTraceQueryMax, err := getEnvAsInt("DB_TRACE_QUERY_MAX", 512)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_TRACE_QUERY_MAX: %w", err)
	}
	if dbTraceQueryMax <= 0 {
		return Config{}, fmt.Errorf("DB_TRACE_QUERY_MAX must be > 0")
	}

	recomputeMaxWorkers, err := getEnvAsInt("RECOMPUTE_MAX_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse RECOMPUTE_MAX_WORKERS: %w", err)
	}
	if recomputeMaxWorkers <= 0 {
		return Config{}, fmt.Errorf("RECOMPUTE_MAX_WORKERS must be > 0")
	}

	return Config{
		AppEnv:                  appEnv,
		ServiceName:             getEnv("SERVICE_NAME", "draft-assistant"),
		ServiceVersion:          getEnv("SERVICE_VERSION", "dev"),
		DBURL:                   getEnv("DB_URL", ""),
		DBDisablePreparedBinary: dbDisablePreparedBinary,
		DBTraceQueryMax:         dbTraceQueryMax,
		CacheEnabled:            cacheEnabled,
		CacheTTL:                cacheTTL,
		ReplacementRanks:        replacementRanks,
		ReplacementStrict:       replacementStrict,
		RecomputeMaxWorkers:     recomputeMaxWorkers,
		LogLevel:                parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}, nil
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

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

// ParseRankMap reads "QB:22,RB:36" style overrides for replacement ranks.
// An empty value returns nil so callers fall back to the defaults.
func ParseRankMap(raw string) (map[player.Position]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	out := make(map[player.Position]int)
	for _, part := range strings.Split(raw, ",") {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}

		segments := strings.SplitN(item, ":", 2)
		if len(segments) != 2 {
			return nil, fmt.Errorf("invalid map item %q, expected position:rank", item)
		}

		position := player.Position(strings.ToUpper(strings.TrimSpace(segments[0])))
		if _, ok := player.AllPositions[position]; !ok {
			return nil, fmt.Errorf("unknown position in item %q", item)
		}
		rank, err := strconv.Atoi(strings.TrimSpace(segments[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid rank in item %q: %w", item, err)
		}
		if rank <= 0 {
			return nil, fmt.Errorf("rank must be > 0 in item %q", item)
		}

		out[position] = rank
	}
	return out, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}
