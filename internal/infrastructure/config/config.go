package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Token store kinds accepted by TOKEN_STORE.
const (
	StoreFile   = "file"
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
)

type Config struct {
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	API    APIConfig
	Token  TokenConfig
	Redis  RedisConfig
	Mongo  MongoConfig
	Portal PortalConfig
}

// APIConfig locates the backend. The route prefixes differ between backend
// deployments, so each controller's prefix is configurable.
type APIConfig struct {
	BaseURL string        `env:"RECRUIT_API_URL, default=http://localhost:8080"`
	Timeout time.Duration `env:"RECRUIT_TIMEOUT, default=15s"`

	AuthPrefix         string `env:"RECRUIT_AUTH_PREFIX,         default=/api/auth"`
	JobsPrefix         string `env:"RECRUIT_JOBS_PREFIX,         default=/joboffers"`
	ApplicationsPrefix string `env:"RECRUIT_APPLICATIONS_PREFIX, default=/api/applications"`
	StudentsPrefix     string `env:"RECRUIT_STUDENTS_PREFIX,     default=/students"`
	FilesPrefix        string `env:"RECRUIT_FILES_PREFIX,        default=/api/files"`
	AIPrefix           string `env:"RECRUIT_AI_PREFIX,           default=/ai"`
}

type TokenConfig struct {
	Store string `env:"TOKEN_STORE, default=file"`
	File  string `env:"TOKEN_FILE,  default=~/.recruitctl/token"`
	Key   string `env:"TOKEN_KEY,   default=token"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,      default=localhost:6379"`
	DB       int           `env:"REDIS_DB,        default=0"`
	Password string        `env:"REDIS_PASSWORD"`
	TokenTTL time.Duration `env:"TOKEN_REDIS_TTL, default=0s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=recruitment_client"`
}

type PortalConfig struct {
	Port string `env:"PORTAL_PORT, default=3000"`
}

// Load reads an optional .env file from the working directory and then the
// process environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom resolves the configuration through lookuper.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no component can work with.
func (c *Config) Validate() error {
	c.Token.Store = strings.ToLower(strings.TrimSpace(c.Token.Store))
	switch c.Token.Store {
	case StoreFile, StoreMemory, StoreRedis, StoreMongo:
	default:
		return fmt.Errorf("config: TOKEN_STORE must be one of file, memory, redis, mongo (got %q)", c.Token.Store)
	}
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("config: RECRUIT_API_URL is empty")
	}
	if c.API.Timeout <= 0 {
		return errors.New("config: RECRUIT_TIMEOUT must be positive")
	}
	return nil
}
