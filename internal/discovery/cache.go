package discovery

import (
	"sort"
	"sync"

	"assembly-server/internal/domain"
	"assembly-server/pkg/logger"
)

// Persister - долговременное хранилище журнала открытий.
// Реализуется storage.DiscoveryStore; в тестах подменяется.
type Persister interface {
	LoadAll() (map[string]domain.DiscoveryRecord, error)
	Put(rec domain.DiscoveryRecord) error
}

// Cache - кеш разрешенных комбинаций. In-memory состояние авторитетно
// для сессии; персистентность best-effort (ошибки I/O логируются
// и глотаются, симуляция продолжается).
type Cache struct {
	mu      sync.RWMutex
	records map[string]domain.DiscoveryRecord

	// store может быть nil - тогда кеш живет только в памяти.
	store Persister
}

// NewCache создает кеш и один раз загружает журнал из хранилища.
func NewCache(store Persister) *Cache {
	c := &Cache{
		records: make(map[string]domain.DiscoveryRecord),
		store:   store,
	}

	if store != nil {
		loaded, err := store.LoadAll()
		if err != nil {
			// Не фатально: продолжаем с пустым кешем
			logger.Log.WithError(err).Warn("Failed to load discovery cache, starting empty")
		} else {
			c.records = loaded
			logger.Log.WithField("count", len(loaded)).Info("Discovery cache loaded")
		}
	}

	return c
}

// Lookup возвращает запись по ключу.
func (c *Cache) Lookup(key string) (domain.DiscoveryRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.records[key]
	return rec, ok
}

// Store кладет запись в память и сразу пишет в хранилище.
// Перезапись идемпотентна на обоих уровнях.
func (c *Cache) Store(rec domain.DiscoveryRecord) {
	c.mu.Lock()
	c.records[rec.Key] = rec
	c.mu.Unlock()

	if c.store == nil {
		return
	}
	if err := c.store.Put(rec); err != nil {
		logger.Log.WithError(err).WithField("key", rec.Key).Warn("Failed to persist discovery")
	}
}

// Len возвращает количество открытий.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Records возвращает копию всех записей, отсортированную по ключу
// (стабильный порядок для снапшота).
func (c *Cache) Records() []domain.DiscoveryRecord {
	c.mu.RLock()
	out := make([]domain.DiscoveryRecord, 0, len(c.records))
	for _, rec := range c.records {
		out = append(out, rec)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
