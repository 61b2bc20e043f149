// Package session carries the caller's bearer token and organization
// through request contexts.
package session

import "context"

type ctxKey int

const (
	tokenKey ctxKey = iota
	organizationKey
)

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func Token(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

func WithOrganization(ctx context.Context, organizationID string) context.Context {
	return context.WithValue(ctx, organizationKey, organizationID)
}

func Organization(ctx context.Context) string {
	org, _ := ctx.Value(organizationKey).(string)
	return org
}
