// Package cache provides caching for preview images and encoded payloads.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Config contains cache configuration.
type Config struct {
	PreviewCacheSizeMB int
	PreviewTTL         time.Duration
	PayloadCacheSize   int
}

// Manager manages preview and payload caches.
type Manager struct {
	previewCache *bigcache.BigCache
	payloadCache *lru.Cache[string, []byte]
}

// NewManager creates a new cache manager.
func NewManager(cfg Config) (*Manager, error) {
	previewCacheConfig := bigcache.Config{
		Shards:             16,
		LifeWindow:         cfg.PreviewTTL,
		CleanWindow:        cfg.PreviewTTL / 2,
		MaxEntriesInWindow: 1024,
		MaxEntrySize:       16 * 1024, // 16KB per swatch
		HardMaxCacheSize:   cfg.PreviewCacheSizeMB,
		Verbose:            false,
	}

	previewCache, err := bigcache.New(context.Background(), previewCacheConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create preview cache: %w", err)
	}

	payloadCache, err := lru.New[string, []byte](cfg.PayloadCacheSize)
	if err != nil {
		previewCache.Close()
		return nil, fmt.Errorf("failed to create payload cache: %w", err)
	}

	return &Manager{
		previewCache: previewCache,
		payloadCache: payloadCache,
	}, nil
}

// GetPreview retrieves a rendered preview from cache.
func (m *Manager) GetPreview(key string) ([]byte, bool) {
	data, err := m.previewCache.Get(key)
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetPreview stores a rendered preview in cache.
func (m *Manager) SetPreview(key string, data []byte) error {
	return m.previewCache.Set(key, data)
}

// GetPayload retrieves an encoded payload from cache.
func (m *Manager) GetPayload(key string) ([]byte, bool) {
	return m.payloadCache.Get(key)
}

// SetPayload stores an encoded payload in cache.
func (m *Manager) SetPayload(key string, data []byte) {
	m.payloadCache.Add(key, data)
}

// PreviewKey generates a cache key for a preview swatch.
func PreviewKey(table string, width, height int) string {
	return fmt.Sprintf("preview:%dx%d:%s", width, height, table)
}

// PayloadKey generates a cache key for an encoded table or catalogue.
// An empty table name stands for the whole catalogue.
func PayloadKey(table, format string) string {
	if table == "" {
		return "payload:" + format + ":*"
	}
	return "payload:" + format + ":" + table
}

// Stats returns cache statistics.
func (m *Manager) Stats() map[string]interface{} {
	return map[string]interface{}{
		"preview_cache_len": m.previewCache.Len(),
		"preview_cache_cap": m.previewCache.Capacity(),
		"payload_cache_len": m.payloadCache.Len(),
	}
}

// Close closes the cache manager.
func (m *Manager) Close() error {
	return m.previewCache.Close()
}
