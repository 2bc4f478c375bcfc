package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StorePGX      = "pgx"
	StoreFile     = "file"
	StoreMemory   = "memory"
)

type Config struct {
	Port         int
	StoreBackend string
	DatabaseURL  string
	JWTSecret    string
	TokenTTL     time.Duration
	PublicURL    string
	BcryptCost   int
	CORSOrigins  []string
}

// ParseFlags reads flags, then .env, then the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile, origins string

	fs := flag.NewFlagSet("quickly-quiz", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreBackend, "t", "", "Store backend (sqlite, postgres, pgx, file or memory)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL, or file path for sqlite and file backends")
	fs.StringVar(&cfg.PublicURL, "public-url", "", "Base URL used in share links")
	fs.StringVar(&origins, "cors-origins", "", "Comma-separated allowed CORS origins")
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", 0, "bcrypt cost for account passwords")
	fs.DurationVar(&cfg.TokenTTL, "token-ttl", 0, "Session token lifetime")
	fs.StringVar(&envFile, "env-file", ".env", "Path of a .env file to load")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "Session token signing secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// .env never overrides variables that are already set
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318
		}
	}

	if cfg.StoreBackend == "" {
		cfg.StoreBackend = os.Getenv("STORE_BACKEND")
		if cfg.StoreBackend == "" {
			cfg.StoreBackend = StoreSQLite
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	switch cfg.StoreBackend {
	case StoreSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = "file:quickly-quiz.db"
		}
	case StoreFile:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = "quickly-quiz.json"
		}
	case StorePostgres, StorePGX:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	case StoreMemory:
	default:
		return Config{}, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	if cfg.PublicURL == "" {
		cfg.PublicURL = os.Getenv("PUBLIC_URL")
		if cfg.PublicURL == "" {
			cfg.PublicURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
		}
	}
	cfg.PublicURL = strings.TrimRight(cfg.PublicURL, "/")

	if origins == "" {
		origins = os.Getenv("CORS_ORIGINS")
	}
	cfg.CORSOrigins = splitList(origins)
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}

	if cfg.BcryptCost == 0 {
		if costStr := os.Getenv("BCRYPT_COST"); costStr != "" {
			cost, err := strconv.Atoi(costStr)
			if err != nil {
				return Config{}, errors.New("invalid BCRYPT_COST env variable")
			}
			cfg.BcryptCost = cost
		} else {
			cfg.BcryptCost = 10
		}
	}

	if cfg.TokenTTL == 0 {
		if ttlStr := os.Getenv("TOKEN_TTL"); ttlStr != "" {
			ttl, err := time.ParseDuration(ttlStr)
			if err != nil {
				return Config{}, errors.New("invalid TOKEN_TTL env variable")
			}
			cfg.TokenTTL = ttl
		} else {
			cfg.TokenTTL = 24 * time.Hour
		}
	}

	// Secrets - MUST be provided
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
