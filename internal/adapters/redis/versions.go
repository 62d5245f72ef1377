package redis

import (
	"context"
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/port"
)

// VersionProvider keeps one monotonically increasing counter per cache scope.
// Readers mix the counter into their cache keys, so bumping a scope
// invalidates every cached response under it without scanning keys.
type VersionProvider struct {
	client *Client
	prefix string
}

func NewVersionProvider(client *Client) port.CacheVersionPort {
	return &VersionProvider{client: client, prefix: "cache-version"}
}

func (v *VersionProvider) key(scope string) string {
	return fmt.Sprintf("%s:%s", v.prefix, scope)
}

func (v *VersionProvider) GetVersion(ctx context.Context, scope string) (int64, error) {
	data, err := v.client.Get(ctx, v.key(scope))
	if err != nil {
		if err == goredis.Nil {
			return 0, nil
		}
		return 0, err
	}

	version, err := strconv.ParseInt(data, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed cache version for scope %s: %w", scope, err)
	}
	return version, nil
}

func (v *VersionProvider) Bump(ctx context.Context, scope string) error {
	return v.client.rdb.Incr(ctx, v.key(scope)).Err()
}
