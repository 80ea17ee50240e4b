package aiprovider

import (
	"context"
	"fmt"
)

// Registry routes chat requests to named providers. One upstream call per
// request: a failing provider reports its error instead of falling through
// to another one.
type Registry struct {
	providers   map[string]Provider
	defaultName string
}

// NewRegistry creates a registry over the given providers.
// defaultName picks the provider used when a request names none; empty
// defaultName falls back to the first provider in the slice.
func NewRegistry(providers []Provider, defaultName string) (*Registry, error) {
	if len(providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	byName := make(map[string]Provider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}

	if defaultName == "" {
		defaultName = providers[0].Name()
	}
	if _, ok := byName[defaultName]; !ok {
		return nil, fmt.Errorf("%w: default provider %q not registered", ErrUnknownProvider, defaultName)
	}

	return &Registry{providers: byName, defaultName: defaultName}, nil
}

// Chat dispatches the request to the named provider, or the default when
// name is empty.
func (r *Registry) Chat(ctx context.Context, name string, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	if name == "" {
		name = r.defaultName
	}
	provider, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}

	return provider.Chat(ctx, req)
}

// DefaultProvider returns the name of the default provider.
func (r *Registry) DefaultProvider() string {
	return r.defaultName
}

// Providers returns the registered provider names.
func (r *Registry) Providers() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}
