package port

import "context"

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// CacheVersionPort versions cached read scopes (e.g. "/products"). Writers bump
// a scope to invalidate every cached response built under the old version.
type CacheVersionPort interface {
	GetVersion(ctx context.Context, scope string) (int64, error)
	Bump(ctx context.Context, scope string) error
}
