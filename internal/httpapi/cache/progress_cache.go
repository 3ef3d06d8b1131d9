package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"myshelf/internal/httpapi/models"

	"github.com/redis/go-redis/v9"
)

// ProgressCache keeps the hot per-(user, book) reading position in Redis so
// the detail page can render the slider without a database round trip.
// Postgres stays the source of truth; every method is a no-op when the cache
// was constructed without a Redis address.
type ProgressCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProgressCache connects to Redis and verifies the connection. An empty
// addr returns a disabled cache rather than an error.
func NewProgressCache(addr, password string, ttl time.Duration) (*ProgressCache, error) {
	if addr == "" {
		return &ProgressCache{ttl: ttl}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &ProgressCache{client: rdb, ttl: ttl}, nil
}

func progressKey(userID, bookID string) string {
	return fmt.Sprintf("progress:user:%s:book:%s", userID, bookID)
}

// progressFields encodes the row as the cache hash. The optional timestamps
// are cached too so a warm read carries the same fields as a database read;
// an absent field means not started/completed.
func progressFields(p *models.ReadingProgress) map[string]any {
	fields := map[string]any{
		"current_page": p.CurrentPage,
		"percentage":   p.Percentage,
		"updated_at":   p.UpdatedAt.Format(time.RFC3339Nano),
	}
	if p.StartedAt != nil {
		fields["started_at"] = p.StartedAt.Format(time.RFC3339Nano)
	}
	if p.CompletedAt != nil {
		fields["completed_at"] = p.CompletedAt.Format(time.RFC3339Nano)
	}
	return fields
}

// Save writes the progress hash and refreshes its TTL.
func (c *ProgressCache) Save(ctx context.Context, p *models.ReadingProgress) error {
	if c == nil || c.client == nil {
		return nil
	}
	key := progressKey(p.UserID, p.BookID)
	fields := progressFields(p)
	// Rewrite the hash from scratch; HSet alone would leave a stale
	// completed_at behind when a rewound position drops below 100%.
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return err
	}
	if err := c.client.HSet(ctx, key, fields).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}

// Get returns the cached position, or (nil, nil) on miss or disabled cache.
func (c *ProgressCache) Get(ctx context.Context, userID, bookID string) (*models.ReadingProgress, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	data, err := c.client.HGetAll(ctx, progressKey(userID, bookID)).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return parseProgress(userID, bookID, data)
}

// parseProgress decodes the cache hash back into the row shape a database
// read produces, including the optional timestamps.
func parseProgress(userID, bookID string, data map[string]string) (*models.ReadingProgress, error) {
	currentPage, err := strconv.Atoi(data["current_page"])
	if err != nil {
		return nil, fmt.Errorf("corrupt cache entry: %w", err)
	}
	percentage, err := strconv.ParseFloat(data["percentage"], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt cache entry: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, data["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("corrupt cache entry: %w", err)
	}

	progress := &models.ReadingProgress{
		UserID:      userID,
		BookID:      bookID,
		CurrentPage: currentPage,
		Percentage:  percentage,
		UpdatedAt:   updatedAt,
	}
	if raw, ok := data["started_at"]; ok {
		startedAt, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("corrupt cache entry: %w", err)
		}
		progress.StartedAt = &startedAt
	}
	if raw, ok := data["completed_at"]; ok {
		completedAt, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("corrupt cache entry: %w", err)
		}
		progress.CompletedAt = &completedAt
	}
	return progress, nil
}

// Invalidate drops the cached entry.
func (c *ProgressCache) Invalidate(ctx context.Context, userID, bookID string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, progressKey(userID, bookID)).Err()
}

// Close releases the Redis connection.
func (c *ProgressCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
