package api

import (
	"context"
	"errors"
)

// Principal is the authenticated actor derived from a validated bearer token.
type Principal struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Sub      string   `json:"sub"`
	Username string   `json:"username,omitempty"`
	Groups   []string `json:"groups,omitempty"`
}

type keyType string

const principalKey keyType = "principal"

// ctxWithPrincipal adds the authenticated principal to the context
func ctxWithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// ctxGetPrincipal retrieves the authenticated principal from the context
func ctxGetPrincipal(ctx context.Context) (Principal, error) {
	value := ctx.Value(principalKey)
	if value == nil {
		return Principal{}, errors.New("no principal in context")
	}
	principal, ok := value.(Principal)
	if !ok {
		return Principal{}, errors.New("value is not of type `Principal`")
	}
	return principal, nil
}
