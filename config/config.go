package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Session / route protection
	Session SessionConfig

	// AI providers (free aggregator, Groq, Gemini)
	AI AIConfig

	// Free-tier proxy
	Proxy ProxyConfig

	// Calendar experiment
	Calendar CalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SessionConfig is boundary glue only: the token itself is issued by the
// external auth collaborator, this service only validates it.
type SessionConfig struct {
	Secret     string
	SignInPath string
}

// AIConfig holds the provider shim configuration.
type AIConfig struct {
	DefaultProvider string
	Providers       []ProviderConfig `yaml:"providers"`
}

// ProviderConfig holds configuration for a single AI provider shim.
type ProviderConfig struct {
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url,omitempty"`
	Model   string `yaml:"model"`
}

// ProxyConfig drives the free-tier forwarding endpoint.
type ProxyConfig struct {
	ChatURL         string
	ImageURL        string
	BearerToken     string
	RateLimitPerMin int
}

// CalendarConfig drives the weekly calendar experiment.
type CalendarConfig struct {
	Timezone   string
	MaxResults int64
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Session
	cfg.Session.Secret = viper.GetString("session.secret")
	cfg.Session.SignInPath = viper.GetString("session.sign_in_path")
	if secret := viper.GetString("session_secret"); secret != "" {
		cfg.Session.Secret = secret
	}

	// AI providers
	cfg.AI.DefaultProvider = viper.GetString("ai.default_provider")
	if viper.IsSet("ai.providers") {
		providersRaw := viper.Get("ai.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:    getStringFromMap(providerMap, "name"),
						Enabled: getBoolFromMap(providerMap, "enabled"),
						APIKey:  expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL: getStringFromMap(providerMap, "base_url"),
						Model:   getStringFromMap(providerMap, "model"),
					}
					cfg.AI.Providers = append(cfg.AI.Providers, provider)
				}
			}
		}
	}
	if len(cfg.AI.Providers) == 0 {
		return nil, fmt.Errorf("no AI providers configured - please add ai.providers section to config.yaml")
	}

	// Free-tier proxy
	cfg.Proxy.ChatURL = viper.GetString("proxy.chat_url")
	cfg.Proxy.ImageURL = viper.GetString("proxy.image_url")
	cfg.Proxy.BearerToken = expandEnvVar(viper.GetString("proxy.bearer_token"))
	cfg.Proxy.RateLimitPerMin = viper.GetInt("proxy.rate_limit_per_min")
	if token := viper.GetString("proxy_bearer_token"); token != "" {
		cfg.Proxy.BearerToken = token
	}

	// Calendar
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")
	cfg.Calendar.MaxResults = viper.GetInt64("calendar.max_results")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("session.sign_in_path", "/auth/signin")
	viper.SetDefault("ai.default_provider", "free")
	viper.SetDefault("proxy.chat_url", "https://api.ddc.xiolabs.xyz/v1/chat/completions")
	viper.SetDefault("proxy.image_url", "https://api.ddc.xiolabs.xyz/v1/images/generations")
	viper.SetDefault("proxy.rate_limit_per_min", 60)
	viper.SetDefault("calendar.timezone", "UTC")
	viper.SetDefault("calendar.max_results", 2500)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}
