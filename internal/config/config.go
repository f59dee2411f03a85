package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Backend BackendConfig
	Session SessionConfig
	Poll    PollConfig
	Runtime RuntimeConfig
}

type BackendConfig struct {
	BaseUrl    string
	TimeoutSec int
}

type SessionConfig struct {
	File string
}

type PollConfig struct {
	StatusSec   int
	LogsSec     int
	OrdersSec   int
	PaymentsSec int
}

type RuntimeConfig struct {
	Log LogConfig
}

type LogConfig struct {
	Level      string
	Format     string
	File       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

func Load() (*Config, error) {

	cfg := &Config{}
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	viper.ReadInConfig()

	cfg.Backend = BackendConfig{
		BaseUrl:    envSub("backend.base_url"),
		TimeoutSec: viper.GetInt("backend.timeout_sec"),
	}

	cfg.Session = SessionConfig{
		File: envSub("session.file"),
	}

	cfg.Poll = PollConfig{
		StatusSec:   viper.GetInt("poll.status_sec"),
		LogsSec:     viper.GetInt("poll.logs_sec"),
		OrdersSec:   viper.GetInt("poll.orders_sec"),
		PaymentsSec: viper.GetInt("poll.payments_sec"),
	}

	cfg.Runtime = RuntimeConfig{
		Log: LogConfig{
			Level:      viper.GetString("runtime.log.level"),
			Format:     viper.GetString("runtime.log.format"),
			File:       viper.GetString("runtime.log.file"),
			MaxSize:    viper.GetInt("runtime.log.max_size"),
			MaxBackups: viper.GetInt("runtime.log.max_backups"),
			MaxAge:     viper.GetInt("runtime.log.max_age"),
			Compress:   viper.GetBool("runtime.log.compress"),
		},
	}

	applyDefaults(cfg)

	return cfg, nil
}

// Значения по умолчанию соответствуют интервалам обновления старого веб-интерфейса.
func applyDefaults(cfg *Config) {
	if cfg.Backend.BaseUrl == "" {
		cfg.Backend.BaseUrl = "http://localhost:5000"
	}
	if cfg.Backend.TimeoutSec <= 0 {
		cfg.Backend.TimeoutSec = 15
	}
	if cfg.Session.File == "" {
		cfg.Session.File = defaultSessionFile()
	}
	if cfg.Poll.StatusSec <= 0 {
		cfg.Poll.StatusSec = 5
	}
	if cfg.Poll.LogsSec <= 0 {
		cfg.Poll.LogsSec = 2
	}
	if cfg.Poll.OrdersSec <= 0 {
		cfg.Poll.OrdersSec = 10
	}
	if cfg.Poll.PaymentsSec <= 0 {
		cfg.Poll.PaymentsSec = 10
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "session.token"
	}
	return filepath.Join(dir, "p2pconsole", "session.token")
}

func envSub(key string) string {
	val := viper.GetString(key)
	if val == "" {
		return ""
	}

	re := regexp.MustCompile(`\$\{(\w+)\}`)
	return re.ReplaceAllStringFunc(val, func(match string) string {
		envKey := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		return os.Getenv(envKey)
	})
}
