package discovery

import (
	"context"

	"golang.org/x/sync/singleflight"

	"assembly-server/internal/domain"
	"assembly-server/pkg/logger"
)

// Resolver превращает комбинацию (входы + модификатор) в шаблон предмета.
// Порядок: кеш -> внешний генератор -> локальный fallback. Параллельные
// запросы одного ключа схлопываются через singleflight, чтобы не ходить
// к генератору дважды за одну комбинацию.
type Resolver struct {
	cache    *Cache
	client   *Client // nil = оффлайн-режим
	fallback FallbackGenerator
	group    singleflight.Group
}

// NewResolver создает резолвер. client может быть nil.
func NewResolver(cache *Cache, client *Client) *Resolver {
	return &Resolver{cache: cache, client: client}
}

type resolution struct {
	tpl   domain.ItemTemplate
	fresh bool
}

// Resolve возвращает шаблон результата и флаг нового открытия.
// Всегда возвращает валидный шаблон: при любой ошибке генератора
// срабатывает детерминированный fallback.
func (r *Resolver) Resolve(ctx context.Context, inputs []string, modifier string) (domain.ItemTemplate, bool) {
	key := CombinationKey(inputs, modifier)

	if rec, ok := r.cache.Lookup(key); ok {
		return rec.Template, false
	}

	v, _, _ := r.group.Do(key, func() (interface{}, error) {
		// Повторная проверка: другой вызов мог успеть положить запись
		// между Lookup и входом в singleflight
		if rec, ok := r.cache.Lookup(key); ok {
			return resolution{tpl: rec.Template}, nil
		}

		tpl := r.generate(ctx, key, inputs, modifier).Clamp()

		r.cache.Store(domain.DiscoveryRecord{Key: key, Template: tpl})
		logger.Log.WithField("key", key).WithField("name", tpl.Name).Info("New discovery")

		return resolution{tpl: tpl, fresh: true}, nil
	})

	res := v.(resolution)
	return res.tpl, res.fresh
}

// generate пробует внешний генератор, при неудаче отдает fallback.
func (r *Resolver) generate(ctx context.Context, key string, inputs []string, modifier string) domain.ItemTemplate {
	if r.client != nil {
		tpl, err := r.client.Generate(ctx, inputs, modifier)
		if err == nil {
			return tpl
		}
		logger.Log.WithError(err).WithField("key", key).Warn("Generator failed, using fallback")
	}
	return r.fallback.Generate(key, inputs)
}
