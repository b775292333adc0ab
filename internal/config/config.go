package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const envPrefix = "TABULA_"

// Config holds the settings of the tabula command line tool
type Config struct {
	Prompt       string `toml:"prompt"`
	Format       string `toml:"format"`
	MaxVariables int    `toml:"max_variables"`
	HistoryFile  string `toml:"history_file"`
	CacheSize    int    `toml:"cache_size"`
	LogLevel     string `toml:"log_level"`
	Color        bool   `toml:"color"`
}

// Formats understood by the table and repl commands
var Formats = []string{"tab", "box", "markdown"}

func Default() *Config {
	return &Config{
		Prompt:       "spi> ",
		Format:       "tab",
		MaxVariables: 20,
		CacheSize:    128,
		LogLevel:     "info",
		Color:        true,
	}
}

// Load builds the configuration from the defaults, an optional .env file,
// the TOML file at path (if not empty) and TABULA_* environment variables, in
// that order of precedence.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookup("PROMPT"); ok {
		c.Prompt = v
	}

	if v, ok := lookup("FORMAT"); ok {
		c.Format = v
	}

	if v, ok := lookup("HISTORY_FILE"); ok {
		c.HistoryFile = v
	}

	if v, ok := lookup("LOG_LEVEL"); ok {
		c.LogLevel = v
	}

	if v, ok := lookup("MAX_VARIABLES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sMAX_VARIABLES: %w", envPrefix, err)
		}
		c.MaxVariables = n
	}

	if v, ok := lookup("CACHE_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sCACHE_SIZE: %w", envPrefix, err)
		}
		c.CacheSize = n
	}

	if v, ok := lookup("COLOR"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sCOLOR: %w", envPrefix, err)
		}
		c.Color = b
	}

	return nil
}

func lookup(key string) (string, bool) {
	return os.LookupEnv(envPrefix + key)
}

func (c *Config) Validate() error {
	if !validFormat(c.Format) {
		return fmt.Errorf("unknown format %q, expected one of %s", c.Format, strings.Join(Formats, ", "))
	}

	if c.MaxVariables < 0 {
		return fmt.Errorf("max_variables must not be negative, got %d", c.MaxVariables)
	}

	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

func validFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}

	return false
}

func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return l, nil
}
