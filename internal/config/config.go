package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 表示配置文件内容不合法
var ErrInvalidConfig = errors.New("invalid config")

// Config 应用配置
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	RateLimit RateLimitConfig `yaml:"rateLimit"`
	Sessions  SessionConfig   `yaml:"sessions"`
	Log       LogConfig       `yaml:"log"`

	// 时间戳使用的时区，空字符串表示本地时区
	Timezone string `yaml:"timezone"`
}

// ServerConfig HTTP服务配置
type ServerConfig struct {
	// 监听地址
	Addr string `yaml:"addr" validate:"required,hostname_port"`
	// 优雅关闭的最长等待时间
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" validate:"gt=0"`
	// 一次生成清单的最大数量
	MaxGenerate int `yaml:"maxGenerate" validate:"gte=1"`
}

// RateLimitConfig 每个客户端的请求限流配置
type RateLimitConfig struct {
	// 每秒允许的请求数，0表示不限流
	RequestsPerSecond float64 `yaml:"requestsPerSecond" validate:"gte=0"`
	// 允许的最大突发请求数
	Burst int `yaml:"burst" validate:"gte=1"`
	// 等待令牌的最长时间，0表示不等待直接拒绝
	MaxWait time.Duration `yaml:"maxWait" validate:"gte=0"`
}

// SessionConfig 内存会话配置
type SessionConfig struct {
	// 会话空闲多久后被清理，0表示永不清理
	IdleTTL time.Duration `yaml:"idleTTL" validate:"gte=0"`
	// 清理检查的间隔
	SweepInterval time.Duration `yaml:"sweepInterval" validate:"gt=0"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
	// 日志文件路径，空字符串表示输出到标准错误
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB" validate:"gte=1"`
	MaxBackups int    `yaml:"maxBackups" validate:"gte=0"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            "localhost:8080",
			ShutdownTimeout: 5 * time.Second,
			MaxGenerate:     10000,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 20,
			Burst:             40,
			MaxWait:           0,
		},
		Sessions: SessionConfig{
			IdleTTL:       2 * time.Hour,
			SweepInterval: time.Minute,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load 读取YAML配置文件并覆盖默认值，path为空时只返回默认配置
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 检查配置字段
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Location 返回时间戳使用的时区
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
