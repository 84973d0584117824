package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Database struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type Enrichment struct {
	Timeout           time.Duration
	IPLookupURL       string
	ReverseGeocodeURL string
	UserAgent         string
}

type Config struct {
	Port            string
	Database        Database
	RedisAddr       string
	KafkaBroker     string
	JWTSecret       string
	RBACModelPath   string
	RBACPolicyPath  string
	CheckinLockTTL  time.Duration
	MeetingCacheTTL time.Duration
	DisplayLocation *time.Location
	Enrichment      Enrichment
	MaxRetries      int
}

// Load reads a .env file when present and then the process environment.
// Missing and malformed keys are reported together.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port: "3000",
		Database: Database{
			Port:    "5432",
			SSLMode: "disable",
		},
		RedisAddr:       "localhost:6379",
		RBACModelPath:   "internal/rbac/infra/model.conf",
		RBACPolicyPath:  "internal/rbac/infra/policy.csv",
		CheckinLockTTL:  30 * time.Second,
		MeetingCacheTTL: 30 * time.Minute,
		DisplayLocation: time.UTC,
		Enrichment: Enrichment{
			Timeout:           3 * time.Second,
			IPLookupURL:       "http://ip-api.com/json/",
			ReverseGeocodeURL: "https://nominatim.openstreetmap.org/reverse",
			UserAgent:         "go-attend/1.0",
		},
		MaxRetries: 5,
	}

	missing := make([]string, 0, 2)
	invalid := make([]string, 0, 2)

	get := func(key string) string {
		return strings.TrimSpace(getenv(key))
	}
	setString := func(key string, dst *string) {
		if v := get(key); v != "" {
			*dst = v
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		v := get(key)
		if v == "" {
			return
		}
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			invalid = append(invalid, key)
			return
		}
		*dst = d
	}

	setString("PORT", &cfg.Port)
	if p, err := strconv.Atoi(cfg.Port); err != nil || p <= 0 {
		invalid = append(invalid, "PORT")
	}

	cfg.Database.Host = get("DB_HOST")
	cfg.Database.User = get("DB_USER")
	cfg.Database.Password = getenv("DB_PASSWORD")
	cfg.Database.Name = get("DB_NAME")
	setString("DB_PORT", &cfg.Database.Port)
	setString("DB_SSLMODE", &cfg.Database.SSLMode)
	for _, kv := range [][2]string{
		{"DB_HOST", cfg.Database.Host},
		{"DB_USER", cfg.Database.User},
		{"DB_NAME", cfg.Database.Name},
	} {
		if kv[1] == "" {
			missing = append(missing, kv[0])
		}
	}

	setString("REDIS_ADDR", &cfg.RedisAddr)
	cfg.KafkaBroker = get("KAFKA_BROKER")

	if cfg.JWTSecret = get("JWT_SECRET"); cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	setString("RBAC_MODEL_PATH", &cfg.RBACModelPath)
	setString("RBAC_POLICY_PATH", &cfg.RBACPolicyPath)
	setDuration("CHECKIN_LOCK_TTL", &cfg.CheckinLockTTL)
	setDuration("MEETING_CACHE_TTL", &cfg.MeetingCacheTTL)
	setDuration("ENRICHMENT_TIMEOUT", &cfg.Enrichment.Timeout)
	setString("IP_LOOKUP_URL", &cfg.Enrichment.IPLookupURL)
	setString("REVERSE_GEOCODE_URL", &cfg.Enrichment.ReverseGeocodeURL)
	setString("ENRICHMENT_USER_AGENT", &cfg.Enrichment.UserAgent)

	if tz := get("DISPLAY_TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			invalid = append(invalid, "DISPLAY_TIMEZONE")
		} else {
			cfg.DisplayLocation = loc
		}
	}

	if v := get("CONNECT_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			invalid = append(invalid, "CONNECT_MAX_RETRIES")
		} else {
			cfg.MaxRetries = n
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}
	return cfg, nil
}
