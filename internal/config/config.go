package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultTone is the system instruction used until a session overrides it.
const DefaultTone = "Respond clearly and professionally."

type Config struct {
	AppPort            int           `mapstructure:"APP_PORT" validate:"min=1,max=65535"`
	OpenAIAPIKey       string        `mapstructure:"OPENAI_API_KEY" validate:"required"`
	OpenAIBaseURL      string        `mapstructure:"OPENAI_BASE_URL" validate:"omitempty,url"`
	OpenAIModel        string        `mapstructure:"OPENAI_MODEL" validate:"required"`
	TokenBudget        int           `mapstructure:"TOKEN_BUDGET" validate:"min=1"`
	DefaultTone        string        `mapstructure:"DEFAULT_TONE"`
	MaxUploadBytes     int64         `mapstructure:"MAX_UPLOAD_BYTES" validate:"min=1"`
	SessionIdleTimeout time.Duration `mapstructure:"SESSION_IDLE_TIMEOUT" validate:"min=1m"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
}

// Flags returns the command line flags understood by LoadConfig. Flags that
// are set on the command line win over the .env file and the environment.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("pdf-chat", pflag.ContinueOnError)
	fs.Int("port", 8000, "HTTP listen port")
	fs.String("model", "gpt-4-turbo", "chat completion model identifier")
	fs.String("log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")
	fs.String("config-dir", ".", "directory searched for the .env file")
	return fs
}

// LoadConfig reads defaults, the optional .env file, the environment and the
// given flags (may be nil), in increasing order of precedence.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4-turbo")
	viper.SetDefault("TOKEN_BUDGET", 4000)
	viper.SetDefault("DEFAULT_TONE", DefaultTone)
	viper.SetDefault("MAX_UPLOAD_BYTES", 32<<20)
	viper.SetDefault("SESSION_IDLE_TIMEOUT", "2h")
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	if flags != nil {
		if dir, err := flags.GetString("config-dir"); err == nil && flags.Changed("config-dir") {
			viper.AddConfigPath(dir)
		}
		for key, name := range map[string]string{
			"APP_PORT":     "port",
			"OPENAI_MODEL": "model",
			"LOG_LEVEL":    "log-level",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := viper.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
				}
			}
		}
	}
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the loaded values against the struct's validation tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on the '%s' tag", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
