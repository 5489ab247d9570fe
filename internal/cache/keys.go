package cache

import (
	"context"
	"time"
)

// ActivitiesKey holds the cached newest-first activity feed. The feed is
// append-only, so a short TTL plus invalidation on append keeps it fresh.
const ActivitiesKey = "activities:latest"

// ActivitiesTTL bounds staleness when an invalidation is lost.
const ActivitiesTTL = 30 * time.Second

// Invalidate drops a key from the cache, if one is connected.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateActivities drops the cached activity feed.
func InvalidateActivities(ctx context.Context) {
	Invalidate(ctx, ActivitiesKey)
}
