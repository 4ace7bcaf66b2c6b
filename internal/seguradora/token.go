package seguradora

import "context"

type tokenKey struct{}

// WithToken guarda no contexto o token de sessão repassado à API
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
