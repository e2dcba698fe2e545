package config

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

type Config struct {
	// WebServer Configuration
	WebServerPort int           `mapstructure:"WEBSERVER_PORT" validate:"gte=0,lte=65535"`
	PollInterval  time.Duration `mapstructure:"POLL_INTERVAL" validate:"gt=0"`

	// Property sources
	QueryMIME      bool   `mapstructure:"QUERY_MIME"`
	QueryMediaInfo bool   `mapstructure:"QUERY_MEDIAINFO"`
	DateTimeFormat string `mapstructure:"DATETIME_FORMAT"`

	// Only consumed by the HTML view.
	OutputStylePath string `mapstructure:"OUTPUT_STYLE_PATH"`

	// External tools
	Tools ToolConfig `mapstructure:",squash"`
}

type ToolConfig struct {
	XDGMimePath   string        `mapstructure:"XDG_MIME_PATH" validate:"required"`
	MediaInfoPath string        `mapstructure:"MEDIAINFO_PATH" validate:"required"`
	ToolTimeout   time.Duration `mapstructure:"TOOL_TIMEOUT" validate:"gte=0"`
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(v *viper.Viper, c Config) {
	val := reflect.ValueOf(c)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)
		tag := field.Tag.Get("mapstructure")

		squash := strings.HasPrefix(tag, ",")
		if tag != "" && !squash {
			v.BindEnv(tag)
		}

		// Handle nested structs
		if field.Type.Kind() == reflect.Struct && (tag == "" || squash) {
			nestedTyp := fieldVal.Type()
			for j := 0; j < fieldVal.NumField(); j++ {
				nestedField := nestedTyp.Field(j)
				nestedTag := nestedField.Tag.Get("mapstructure")
				if nestedTag != "" {
					v.BindEnv(nestedTag)
				}
			}
		}
	}
	slog.Debug("Environment variables bound", "config", c)
}

// LoadConfig reads the environment (and the optional FILEPROPS_CONFIG file)
// into a validated Config. Callers invoke it once per aggregation so edits
// take effect without a restart. Every call uses its own viper instance, so
// concurrent callers share no state.
func LoadConfig(ctx context.Context) (*Config, error) {
	return Load(ctx, viper.New())
}

// Load is LoadConfig over a caller-supplied viper instance, which may already
// carry flag bindings or overrides. v must not be shared between goroutines.
func Load(ctx context.Context, v *viper.Viper) (*Config, error) {
	bindEnv(v, Config{})
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("WEBSERVER_PORT", 8080)
	v.SetDefault("POLL_INTERVAL", 2*time.Second)
	v.SetDefault("QUERY_MIME", false)
	v.SetDefault("QUERY_MEDIAINFO", false)
	v.SetDefault("DATETIME_FORMAT", "")
	v.SetDefault("OUTPUT_STYLE_PATH", "")
	v.SetDefault("XDG_MIME_PATH", "xdg-mime")
	v.SetDefault("MEDIAINFO_PATH", "mediainfo")
	v.SetDefault("TOOL_TIMEOUT", 10*time.Second)

	if file := strings.TrimSpace(v.GetString("FILEPROPS_CONFIG")); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	slog.Debug("Loaded configuration", "config", cfg)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
