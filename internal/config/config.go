package config

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

const (
	defaultPort             = 8080
	defaultFeedPollInterval = 5 * time.Second
	defaultReadTimeout      = 10 * time.Second
	defaultWriteTimeout     = 10 * time.Second
	defaultShutdownTimeout  = 15 * time.Second
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Port             int           `yaml:"port"`
	LogLevel         string        `yaml:"log_level"`
	LogJSON          bool          `yaml:"log_json"`
	CORSOrigins      []string      `yaml:"cors_origins"`
	SecureCookies    bool          `yaml:"secure_cookies"` // enables HSTS, name kept for deployments behind TLS
	FeedPollInterval time.Duration `yaml:"feed_poll_interval"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname" validate:"required"`
	SSLMode  string `yaml:"sslmode"`
}

type Private struct {
	Pg Pg `yaml:"pg" validate:"required"`
	// plaintext secret or a bcrypt hash of it
	WritePassword string `yaml:"write_password" validate:"required"`
}

func (c *Config) WritePassword() string {
	return c.Private.WritePassword
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Public.Port)
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file: " + configPath)
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder,
// applies environment overrides and defaults, and validates the result.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		panic("invalid config: " + err.Error())
	}
	return cfg
}

func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Public.Port = p
		}
	}
	if secret := os.Getenv("THREADFEED_WRITE_PASSWORD"); secret != "" {
		c.Private.WritePassword = secret
	}
}

func (c *Config) applyDefaults() {
	if c.Public.Port == 0 {
		c.Public.Port = defaultPort
	}
	if c.Public.FeedPollInterval <= 0 {
		c.Public.FeedPollInterval = defaultFeedPollInterval
	}
	if c.Public.ReadTimeout <= 0 {
		c.Public.ReadTimeout = defaultReadTimeout
	}
	if c.Public.WriteTimeout <= 0 {
		c.Public.WriteTimeout = defaultWriteTimeout
	}
	if c.Public.ShutdownTimeout <= 0 {
		c.Public.ShutdownTimeout = defaultShutdownTimeout
	}
	if c.Private.Pg.SSLMode == "" {
		c.Private.Pg.SSLMode = "disable"
	}
}

func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(c)
}
