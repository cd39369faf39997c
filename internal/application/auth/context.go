package auth

import "context"

type principalKey struct{}

// WithPrincipal guarda la identidad de la sesión en el contexto de la request.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom devuelve la identidad guardada por WithPrincipal, o nil.
func PrincipalFrom(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}
