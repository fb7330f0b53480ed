package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP          HTTPConfig          `yaml:"http"`
	Bot           BotConfig           `yaml:"bot"`
	Postgres      PostgresConfig      `yaml:"postgres"`
	KnowledgeBase KnowledgeBaseConfig `yaml:"knowledgeBase"`
	QueryLog      QueryLogConfig      `yaml:"queryLog"`
	Trending      TrendingConfig      `yaml:"trending"`
	Notifier      NotifierConfig      `yaml:"notifier"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
	Auth         AuthConfig      `yaml:"auth"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// AuthConfig guards the webhook with HMAC signed bearer tokens.
type AuthConfig struct {
	Enabled   bool   `yaml:"enabled"`
	JWTSecret string `yaml:"jwtSecret"`
}

// BotConfig pins the dialog contract: intent and slot names must match the
// bot definition in the dialog engine, the texts are the two fixed replies.
type BotConfig struct {
	IdentityIntent   string `yaml:"identityIntent"`
	FallbackIntent   string `yaml:"fallbackIntent"`
	EmailSlot        string `yaml:"emailSlot"`
	LocationSlot     string `yaml:"locationSlot"`
	SessionEmailKey  string `yaml:"sessionEmailKey"`
	GreetingTemplate string `yaml:"greetingTemplate"`
	ApologyMessage   string `yaml:"apologyMessage"`
}

// PostgresConfig contains DSN and pooling settings for the shared pool.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// KnowledgeBaseConfig locates the FAQ table and tunes the scan.
type KnowledgeBaseConfig struct {
	Table        string `yaml:"table"`
	SeedFile     string `yaml:"seedFile"`
	ScanPageSize int    `yaml:"scanPageSize"`
}

// QueryLogConfig locates the append-only query log table.
type QueryLogConfig struct {
	Table string `yaml:"table"`
}

// TrendingConfig controls the unanswered-query counter.
type TrendingConfig struct {
	Valkey ValkeyConfig `yaml:"valkey"`
	TopN   int          `yaml:"topN"`
}

// ValkeyConfig contains connection information for the counter store.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// NotifierConfig configures the escalation email channel.
type NotifierConfig struct {
	OperatorEmail string        `yaml:"operatorEmail"`
	SenderEmail   string        `yaml:"senderEmail"`
	APIBaseURL    string        `yaml:"apiBaseUrl"`
	APIKey        string        `yaml:"apiKey"`
	Timeout       time.Duration `yaml:"timeout"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = isTruthy(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_AUTH_ENABLED"); v != "" {
		cfg.HTTP.Auth.Enabled = isTruthy(v)
	}
	if v := os.Getenv("HTTP_AUTH_JWT_SECRET"); v != "" {
		cfg.HTTP.Auth.JWTSecret = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MinConns = int32(parsed)
		}
	}
	// Table and mail address names follow the names the bot has always been
	// deployed with.
	if v := os.Getenv("FAQ_TABLE"); v != "" {
		cfg.KnowledgeBase.Table = v
	}
	if v := os.Getenv("FAQ_SEED_FILE"); v != "" {
		cfg.KnowledgeBase.SeedFile = v
	}
	if v := os.Getenv("FAQ_SCAN_PAGE_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.KnowledgeBase.ScanPageSize = parsed
		}
	}
	if v := os.Getenv("QUERIES_TABLE"); v != "" {
		cfg.QueryLog.Table = v
	}
	if v := os.Getenv("TRENDING_VALKEY_ENABLED"); v != "" {
		cfg.Trending.Valkey.Enabled = isTruthy(v)
	}
	if v := os.Getenv("TRENDING_VALKEY_ADDR"); v != "" {
		cfg.Trending.Valkey.Addr = v
	}
	if v := os.Getenv("TRENDING_TOP_N"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Trending.TopN = parsed
		}
	}
	if v := os.Getenv("HUMAN_EMAIL"); v != "" {
		cfg.Notifier.OperatorEmail = v
	}
	if v := os.Getenv("FROM_EMAIL"); v != "" {
		cfg.Notifier.SenderEmail = v
	}
	if v := os.Getenv("MAIL_API_BASE_URL"); v != "" {
		cfg.Notifier.APIBaseURL = v
	}
	if v := os.Getenv("MAIL_API_KEY"); v != "" {
		cfg.Notifier.APIKey = v
	}
	if v := os.Getenv("MAIL_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Notifier.Timeout = parsed
		}
	}
	if v := os.Getenv("BOT_IDENTITY_INTENT"); v != "" {
		cfg.Bot.IdentityIntent = v
	}
	if v := os.Getenv("BOT_APOLOGY_MESSAGE"); v != "" {
		cfg.Bot.ApologyMessage = v
	}
	if v := os.Getenv("BOT_GREETING_TEMPLATE"); v != "" {
		cfg.Bot.GreetingTemplate = v
	}
}

func isTruthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
			Auth: AuthConfig{
				Enabled: false,
			},
		},
		Bot: BotConfig{
			IdentityIntent:   "GreetingAndEmail",
			FallbackIntent:   "FallbackIntent",
			EmailSlot:        "UserEmail",
			LocationSlot:     "LocationType",
			SessionEmailKey:  "UserEmail",
			GreetingTemplate: "Thanks, %s! How can I help you today?",
			ApologyMessage:   "I'm sorry, I don't have an answer. I've forwarded this to our IT team.",
		},
		Postgres: PostgresConfig{
			DSN:      "",
			MaxConns: 4,
			MinConns: 0,
		},
		KnowledgeBase: KnowledgeBaseConfig{
			Table:        "faq_entries",
			SeedFile:     "",
			ScanPageSize: 100,
		},
		QueryLog: QueryLogConfig{
			Table: "user_queries",
		},
		Trending: TrendingConfig{
			Valkey: ValkeyConfig{Enabled: false, Addr: ""},
			TopN:   10,
		},
		Notifier: NotifierConfig{
			OperatorEmail: "",
			SenderEmail:   "",
			APIBaseURL:    "",
			APIKey:        "",
			Timeout:       10 * time.Second,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.Auth.Enabled && strings.TrimSpace(c.HTTP.Auth.JWTSecret) == "" {
		return errors.New("http.auth.jwtSecret cannot be empty when auth is enabled")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.Bot.IdentityIntent == "" || c.Bot.FallbackIntent == "" {
		return errors.New("bot intent names cannot be empty")
	}
	if c.Bot.EmailSlot == "" || c.Bot.LocationSlot == "" || c.Bot.SessionEmailKey == "" {
		return errors.New("bot slot and session key names cannot be empty")
	}
	if !strings.Contains(c.Bot.GreetingTemplate, "%s") {
		return errors.New("bot.greetingTemplate must reference the captured email with %s")
	}
	if c.Bot.ApologyMessage == "" {
		return errors.New("bot.apologyMessage cannot be empty")
	}
	if c.KnowledgeBase.Table == "" {
		return errors.New("knowledgeBase.table cannot be empty")
	}
	if c.KnowledgeBase.ScanPageSize <= 0 {
		return errors.New("knowledgeBase.scanPageSize must be positive")
	}
	if c.QueryLog.Table == "" {
		return errors.New("queryLog.table cannot be empty")
	}
	if c.Trending.TopN < 0 {
		return errors.New("trending.topN cannot be negative")
	}
	if c.Trending.Valkey.Enabled && strings.TrimSpace(c.Trending.Valkey.Addr) == "" {
		return errors.New("trending.valkey.addr cannot be empty when valkey is enabled")
	}
	if c.Notifier.APIKey != "" {
		if strings.TrimSpace(c.Notifier.OperatorEmail) == "" {
			return errors.New("notifier.operatorEmail cannot be empty when the mail API is configured")
		}
		if strings.TrimSpace(c.Notifier.SenderEmail) == "" {
			return errors.New("notifier.senderEmail cannot be empty when the mail API is configured")
		}
	}
	if c.Notifier.Timeout <= 0 {
		return errors.New("notifier.timeout must be positive")
	}
	return nil
}
