package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	probeInterval = 5 * time.Second
	probeTimeout  = 2 * time.Second
)

// Cache wraps a redis client and tracks reachability with a background
// ping loop. Callers decide what to do when the backend is down; the
// wrapper itself never fakes success.
type Cache struct {
	client    redis.UniversalClient
	reachable atomic.Bool
	stop      chan struct{}
	stopOnce  sync.Once
}

func NewCache(addrs []string, password string, useCluster bool) *Cache {
	var rdb redis.UniversalClient

	if useCluster && len(addrs) > 1 {
		rdb = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:    addrs,
			Password: password,
		})
	} else {
		rdb = redis.NewClient(&redis.Options{
			Addr:     addrs[0],
			Password: password,
			DB:       0,
		})
	}

	c := &Cache{
		client: rdb,
		stop:   make(chan struct{}),
	}
	c.probe()
	go c.watch()
	return c
}

// Reachable reports the result of the most recent ping. It is maintained
// by the watch loop, not by per-call error handling.
func (c *Cache) Reachable() bool {
	return c.reachable.Load()
}

func (c *Cache) watch() {
	ticker := time.NewTicker(probeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.probe()
		case <-c.stop:
			return
		}
	}
}

func (c *Cache) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	err := c.client.Ping(ctx).Err()
	c.reachable.Store(err == nil)
}

func (c *Cache) Set(ctx context.Context, namespace, key string, value interface{}, ttl time.Duration) error {
	return c.client.Set(ctx, namespace+":"+key, value, ttl).Err()
}

func (c *Cache) Get(ctx context.Context, namespace, key string) (string, error) {
	return c.client.Get(ctx, namespace+":"+key).Result()
}

func (c *Cache) Delete(ctx context.Context, namespace, key string) error {
	return c.client.Del(ctx, namespace+":"+key).Err()
}

func (c *Cache) Exists(ctx context.Context, namespace, key string) (bool, error) {
	n, err := c.client.Exists(ctx, namespace+":"+key).Result()
	return n > 0, err
}

func (c *Cache) GetTTL(ctx context.Context, namespace, key string) (time.Duration, error) {
	return c.client.TTL(ctx, namespace+":"+key).Result()
}

func (c *Cache) Close() error {
	c.stopOnce.Do(func() { close(c.stop) })
	return c.client.Close()
}
