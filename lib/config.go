package contador

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultAddr  = "127.0.0.1:8070"
	DefaultFile  = "contenido.txt"
	DefaultTopic = "contador_events"
)

type Config struct {
	Addr             string        `mapstructure:"addr"`
	File             string        `mapstructure:"file"`
	StoreFileContent bool          `mapstructure:"store_file_content"`
	LogLevel         string        `mapstructure:"log_level"`
	LogFormat        string        `mapstructure:"log_format"`
	KafkaBroker      string        `mapstructure:"kafka_broker"`
	KafkaTopic       string        `mapstructure:"kafka_topic"`
	ShutdownTimeout  time.Duration `mapstructure:"shutdown_timeout"`
}

// SetDefaults registers defaults and environment lookup on v. Environment
// variables use the CONTADOR_ prefix, e.g. CONTADOR_ADDR.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("file", DefaultFile)
	v.SetDefault("store_file_content", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("kafka_broker", "")
	v.SetDefault("kafka_topic", DefaultTopic)
	v.SetDefault("shutdown_timeout", 5*time.Second)

	v.SetEnvPrefix("contador")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// LoadConfig reads the optional config file and decodes v into a Config.
func LoadConfig(v *viper.Viper, file string) (Config, error) {
	var cfg Config
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.File == "" {
		return errors.New("file must not be empty")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.KafkaBroker != "" && c.KafkaTopic == "" {
		return errors.New("kafka_topic must be set when kafka_broker is")
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// NewLogger builds the process logger described by c. c must be valid.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewPublisher returns a Kafka publisher when a broker is configured.
func (c Config) NewPublisher() Publisher {
	if c.KafkaBroker == "" {
		return NopPublisher{}
	}
	return NewKafkaPublisher(c.KafkaBroker, c.KafkaTopic)
}
