package environment

import "context"

type contextKey struct{}

// WithContext returns a copy of ctx carrying env.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the environment stored in ctx, or "" if none.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

func IsProduction(ctx context.Context) bool { return FromContext(ctx).IsProduction() }

func IsDevelopment(ctx context.Context) bool { return FromContext(ctx).IsDevelopment() }

func IsStaging(ctx context.Context) bool { return FromContext(ctx).IsStaging() }
