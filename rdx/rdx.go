package rdx

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

const tokenHash = "tokki"

// Cache is a best-effort Redis wrapper. Every method is a no-op when Redis is
// not configured, and failures are logged rather than surfaced: the store is
// authoritative, the cache is not.
type Cache struct {
	conn *redis.Client
}

// New returns a disabled cache when addr is empty.
func New(addr string) *Cache {
	if addr == "" {
		return &Cache{}
	}
	return &Cache{conn: redis.NewClient(&redis.Options{Addr: addr})}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.conn != nil
}

func (c *Cache) Close() {
	if c.Enabled() {
		c.conn.Close()
	}
}

// SetUsername caches userID -> username after registration.
func (c *Cache) SetUsername(ctx context.Context, userID, username string) {
	if !c.Enabled() {
		return
	}
	if err := c.conn.Set(ctx, "users:"+userID, username, 0).Err(); err != nil {
		log.Printf("Failed to cache username: %v", err)
	}
}

// StoreToken records the most recently issued token for a user.
func (c *Cache) StoreToken(ctx context.Context, userID, token string) {
	if !c.Enabled() {
		return
	}
	if err := c.conn.HSet(ctx, tokenHash, userID, token).Err(); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}
}

// DropToken removes the cached token, e.g. when the user is deleted.
func (c *Cache) DropToken(ctx context.Context, userID string) {
	if !c.Enabled() {
		return
	}
	if err := c.conn.HDel(ctx, tokenHash, userID).Err(); err != nil {
		log.Printf("Redis token remove failed: %v", err)
	}
}
