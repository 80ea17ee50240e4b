package aiprovider

import (
	"fmt"
	"strings"

	"workspace-chat/config"
	"workspace-chat/pkg/freechat"
	"workspace-chat/pkg/gemini"
	"workspace-chat/pkg/groq"
)

// InitializeProviders creates Provider instances from config.AIConfig.
// Disabled providers are filtered out; providers that fail to initialize are
// skipped instead of failing the entire service.
func InitializeProviders(cfg *config.AIConfig, proxyCfg *config.ProxyConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("AI config is nil")
	}

	if len(cfg.Providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var providers []Provider
	var initErrors []string

	for _, p := range cfg.Providers {
		if !p.Enabled {
			continue
		}
		provider, err := createProvider(p, proxyCfg)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("failed to initialize provider %s: %v", p.Name, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		if len(initErrors) > 0 {
			return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
		}
		return nil, ErrNoProvidersConfigured
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig, proxyCfg *config.ProxyConfig) (Provider, error) {
	switch cfg.Name {
	case "free":
		fcCfg := freechat.Config{BearerToken: cfg.APIKey}
		if proxyCfg != nil {
			fcCfg.ChatURL = proxyCfg.ChatURL
			fcCfg.ImageURL = proxyCfg.ImageURL
			if fcCfg.BearerToken == "" {
				fcCfg.BearerToken = proxyCfg.BearerToken
			}
		}
		client, err := freechat.New(fcCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create freechat client: %w", err)
		}
		return NewFreeAdapter(client, cfg.Model), nil

	case "groq":
		client, err := groq.New(groq.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create groq client: %w", err)
		}
		return NewGroqAdapter(client), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}
}
