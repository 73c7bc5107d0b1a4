package config

import "context"

type ctxKey struct{}

// ContextWithConfig attaches the configuration to the context.
func ContextWithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the configuration attached to ctx, or nil.
func FromContext(ctx context.Context) *Config {
	if ctx == nil {
		return nil
	}
	cfg, _ := ctx.Value(ctxKey{}).(*Config)
	return cfg
}
