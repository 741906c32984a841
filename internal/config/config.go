package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type EnvMode string

const (
	EnvModeDevelopment EnvMode = "development"
	EnvModeProduction  EnvMode = "production"
)

type Config struct {
	IsTesting   bool
	DatabaseDsn string  `env:"DATABASE_DSN"         required:"true"`
	EnvMode     EnvMode `env:"ENV_MODE"             required:"true"`
	// identity (Supabase-issued HS256 tokens)
	JWTSecret string `env:"SUPABASE_JWT_SECRET"  required:"true"`
	// object storage
	StorageURL        string `env:"SUPABASE_URL"         required:"true"`
	StorageServiceKey string `env:"SUPABASE_SERVICE_KEY" required:"true"`
	StorageBucket     string `env:"STORAGE_BUCKET"       env-default:"project-files"`
}

// Load reads .env (current directory, then the module root) and the process
// environment. It never exits: callers decide what a bad config means.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	// .env is optional: deployments usually provide real env vars
	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(findModuleRoot(cwd), ".env"),
	}
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.EnvMode != EnvModeDevelopment && cfg.EnvMode != EnvModeProduction {
		return nil, errors.New("ENV_MODE must be development or production")
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			cfg.IsTesting = true
			break
		}
	}

	return cfg, nil
}

func findModuleRoot(start string) string {
	root := start
	for {
		if _, err := os.Stat(filepath.Join(root, "go.mod")); err == nil {
			return root
		}

		parent := filepath.Dir(root)
		if parent == root {
			return start
		}

		root = parent
	}
}
