package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultProvider     = "gemini"
	defaultTimeout      = 60 * time.Second
	defaultHistoryLimit = 3
	defaultLogLevel     = "info"

	envProvider     = "OMNIASSIST_PROVIDER"
	envModel        = "OMNIASSIST_MODEL"
	envTimeout      = "OMNIASSIST_TIMEOUT"
	envHistoryLimit = "OMNIASSIST_HISTORY_LIMIT"
	envLogLevel     = "OMNIASSIST_LOG_LEVEL"
	envGeminiKey    = "GEMINI_API_KEY"
	envGroqKey      = "GROQ_API_KEY"
)

// Config holds runtime settings for the assistant.
type Config struct {
	Provider     string        `yaml:"provider"`
	Model        string        `yaml:"model"`
	GeminiAPIKey string        `yaml:"gemini_api_key"`
	GroqAPIKey   string        `yaml:"groq_api_key"`
	Timeout      time.Duration `yaml:"-"`
	HistoryLimit int           `yaml:"history_limit"`
	LogLevel     string        `yaml:"log_level"`
	Lenient      bool          `yaml:"lenient"`

	timeoutRaw string
}

// LoadDotenv loads a .env file into the process environment when one
// exists. Missing files are not an error; explicit environment variables
// are never overridden.
func LoadDotenv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	_ = godotenv.Load(paths...)
}

// Load reads configuration from the file at path, then applies environment
// overrides. An empty path skips the file and builds the configuration
// from defaults and the environment alone.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := &Config{}
		return finalize(cfg)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()
	return LoadFromReader(file)
}

// LoadFromReader constructs a Config from YAML read from r, then applies
// environment overrides.
func LoadFromReader(r io.Reader) (*Config, error) {
	var raw struct {
		Provider     string `yaml:"provider"`
		Model        string `yaml:"model"`
		GeminiAPIKey string `yaml:"gemini_api_key"`
		GroqAPIKey   string `yaml:"groq_api_key"`
		Timeout      string `yaml:"timeout"`
		HistoryLimit int    `yaml:"history_limit"`
		LogLevel     string `yaml:"log_level"`
		Lenient      bool   `yaml:"lenient"`
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg := &Config{
		Provider:     raw.Provider,
		Model:        raw.Model,
		GeminiAPIKey: raw.GeminiAPIKey,
		GroqAPIKey:   raw.GroqAPIKey,
		HistoryLimit: raw.HistoryLimit,
		LogLevel:     raw.LogLevel,
		Lenient:      raw.Lenient,
		timeoutRaw:   raw.Timeout,
	}
	return finalize(cfg)
}

func finalize(cfg *Config) (*Config, error) {
	cfg.applyDefaults()
	cfg.applyEnvOverrides()
	if err := cfg.parseTimeout(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Provider {
	case "gemini", "groq":
	default:
		return fmt.Errorf("config: unknown provider %q", c.Provider)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("config: history_limit cannot be negative")
	}
	return nil
}

// APIKey returns the key for the configured provider.
func (c *Config) APIKey() string {
	if c.Provider == "groq" {
		return c.GroqAPIKey
	}
	return c.GeminiAPIKey
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Provider) == "" {
		c.Provider = defaultProvider
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.HistoryLimit == 0 {
		c.HistoryLimit = defaultHistoryLimit
	}
}

func (c *Config) applyEnvOverrides() {
	c.Provider = expandAndOverride(c.Provider, envProvider)
	c.Model = expandAndOverride(c.Model, envModel)
	c.GeminiAPIKey = expandAndOverride(c.GeminiAPIKey, envGeminiKey)
	c.GroqAPIKey = expandAndOverride(c.GroqAPIKey, envGroqKey)
	c.LogLevel = expandAndOverride(c.LogLevel, envLogLevel)

	if raw := os.Getenv(envTimeout); raw != "" {
		c.timeoutRaw = raw
	} else {
		c.timeoutRaw = os.ExpandEnv(c.timeoutRaw)
	}

	if raw := os.Getenv(envHistoryLimit); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			c.HistoryLimit = v
		}
	}
}

func (c *Config) parseTimeout() error {
	if strings.TrimSpace(c.timeoutRaw) == "" {
		c.Timeout = defaultTimeout
		return nil
	}

	d, err := time.ParseDuration(c.timeoutRaw)
	if err != nil {
		return fmt.Errorf("config: invalid timeout %q: %w", c.timeoutRaw, err)
	}
	c.Timeout = d
	return nil
}

func expandAndOverride(current, envKey string) string {
	current = os.ExpandEnv(current)
	if envVal := os.Getenv(envKey); envVal != "" {
		return envVal
	}
	return current
}
