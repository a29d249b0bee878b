package memtable

import (
	"context"
	"errors"

	"github.com/coocood/freecache"
)

// MemTable is an in process string cache, used when no memcached is configured
type MemTable struct {
	cache *freecache.Cache
}

// New creates freecache with size, values larger than size / 1024 are not stored
func New(size int) *MemTable {
	return &MemTable{
		cache: freecache.NewCache(size),
	}
}

// Get ...
func (m *MemTable) Get(_ context.Context, key string) (string, bool, error) {
	data, err := m.cache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// Set stores the value, ttl = 0 means no expiration
func (m *MemTable) Set(_ context.Context, key string, value string, ttl uint32) error {
	return m.cache.Set([]byte(key), []byte(value), int(ttl))
}

// Delete ...
func (m *MemTable) Delete(_ context.Context, key string) error {
	m.cache.Del([]byte(key))
	return nil
}
