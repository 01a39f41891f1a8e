// Package config はプロセス設定を読み込みます。
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config はサーバーの設定値です。
type Config struct {
	Port             int           `yaml:"port"`
	GinMode          string        `yaml:"gin_mode"`
	CORSAllowOrigins []string      `yaml:"cors_allow_origins"`
	GraphQLMaxDepth  int           `yaml:"graphql_max_depth"`
	MetricsEnabled   bool          `yaml:"metrics_enabled"`
	TracingEnabled   bool          `yaml:"tracing_enabled"`
	ServiceName      string        `yaml:"service_name"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout"`
}

// Default はデフォルト値の設定を返します。
func Default() Config {
	return Config{
		Port:             4000,
		GinMode:          "debug",
		CORSAllowOrigins: []string{"http://localhost:3000"},
		GraphQLMaxDepth:  10,
		MetricsEnabled:   true,
		TracingEnabled:   false,
		ServiceName:      "graphql-todo",
		ShutdownTimeout:  5 * time.Second,
	}
}

// Addr は listen アドレスを返します。
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load は .env、CONFIG_FILE で指定されたYAML、環境変数の順に設定を読み込みます。
// 後から読み込んだものが優先されます。
func Load(envFiles ...string) (Config, error) {
	// .env が無いのは開発環境以外では普通なので、ログだけ出して続行する
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := LoadYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadYAML はYAMLファイルを cfg に上書きで読み込みます。
func LoadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to unmarshal YAML: %w", err)
	}
	return nil
}

// Validate は設定値の範囲を確認します。
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}
	if c.GraphQLMaxDepth < 0 {
		return fmt.Errorf("invalid graphql max depth %d", c.GraphQLMaxDepth)
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("invalid shutdown timeout %s", c.ShutdownTimeout)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.GinMode = v
	}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		cfg.CORSAllowOrigins = splitList(v)
	}
	if v := os.Getenv("GRAPHQL_MAX_DEPTH"); v != "" {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid GRAPHQL_MAX_DEPTH %q: %w", v, err)
		}
		cfg.GraphQLMaxDepth = depth
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid METRICS_ENABLED %q: %w", v, err)
		}
		cfg.MetricsEnabled = enabled
	}
	if v := os.Getenv("TRACING_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid TRACING_ENABLED %q: %w", v, err)
		}
		cfg.TracingEnabled = enabled
	}
	if v := os.Getenv("SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		cfg.ShutdownTimeout = d
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
