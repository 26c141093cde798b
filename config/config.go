package config

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"histopt/infra/errorx"
	"histopt/infra/errorx/errCode"
	"histopt/infra/observe/log/staticLog"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	FORMAT_LINES = "lines"
	FORMAT_JSON  = "json"
)

type Config struct {
	Log   LogConfig   `yaml:"log"`
	Input InputConfig `yaml:"input"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

type InputConfig struct {
	Format        string `yaml:"format"`    // lines | json
	JSONPath      string `yaml:"json_path"` // gjson 路径
	DropNonFinite bool   `yaml:"drop_non_finite"`
}

// 用 atomic.Value 存当前配置，支持热更新时无锁读取
var cfgValue atomic.Value // stores *Config

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 5,
			MaxAgeDays: 7,
		},
		Input: InputConfig{
			Format:   FORMAT_LINES,
			JSONPath: "@this",
		},
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errorx.Wrap(errCode.IO_ERROR, err, "read yaml")
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errorx.Wrap(errCode.PARSE_ERROR, err, "unmarshal yaml")
	}
	if err := c.normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

// normalize 规范化：小写、去空格, 并校验取值
func (c *Config) normalize() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errorx.New(errCode.INVALID_VALUE, fmt.Sprintf("invalid log level: %q", c.Log.Level))
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return errorx.New(errCode.INVALID_VALUE, "log rotation settings must be >= 0")
	}

	c.Input.Format = strings.ToLower(strings.TrimSpace(c.Input.Format))
	switch c.Input.Format {
	case FORMAT_LINES:
	case FORMAT_JSON:
		if strings.TrimSpace(c.Input.JSONPath) == "" {
			return errorx.New(errCode.INVALID_VALUE, "json_path is required for json input")
		}
	default:
		return errorx.New(errCode.INVALID_VALUE, fmt.Sprintf("invalid input format: %q", c.Input.Format))
	}
	return nil
}

func (c *Config) LogOptions() staticLog.Options {
	return staticLog.Options{
		Level:      c.Log.Level,
		File:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
		Compress:   c.Log.Compress,
	}
}

// Init 加载配置并初始化全局日志
func Init(path string) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	if err := staticLog.Init(c.LogOptions()); err != nil {
		return errorx.Wrap(errCode.INVALID_VALUE, err, "init log")
	}
	cfgValue.Store(c)
	return nil
}

// Get 返回当前配置, 未初始化时返回默认值
func Get() *Config {
	cAny := cfgValue.Load()
	if cAny == nil {
		return Default()
	}
	return cAny.(*Config)
}
