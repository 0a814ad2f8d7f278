package discovery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"assembly-server/internal/domain"
)

func TestResolver_CacheHit(t *testing.T) {
	cache := NewCache(nil)
	rec := steamRecord()
	cache.Store(rec)

	r := NewResolver(cache, nil)
	tpl, fresh := r.Resolve(context.Background(), []string{"Water", "Fire"}, "Heat")
	require.False(t, fresh)
	require.Equal(t, rec.Template, tpl)
}

func TestResolver_MissUsesGenerator(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(domain.ItemTemplate{
			Name:        "Steam",
			Emoji:       "💨",
			CashPerItem: 2.5,
			Type:        domain.ItemTypeIngredient,
		})
	}))
	defer srv.Close()

	cache := NewCache(nil)
	r := NewResolver(cache, NewClient(srv.URL, ""))

	tpl, fresh := r.Resolve(context.Background(), []string{"Water", "Fire"}, "Heat")
	require.True(t, fresh)
	require.Equal(t, "Steam", tpl.Name)

	// Второй вызов того же ключа берет кеш и не ходит в сеть
	tpl2, fresh2 := r.Resolve(context.Background(), []string{"Fire", "Water"}, "Heat")
	require.False(t, fresh2)
	require.Equal(t, tpl, tpl2)
	require.Equal(t, int64(1), calls.Load())
}

func TestResolver_GeneratorFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cache := NewCache(nil)
	r := NewResolver(cache, NewClient(srv.URL, ""))

	tpl, fresh := r.Resolve(context.Background(), []string{"Water"}, "Heat")
	require.True(t, fresh)
	require.NoError(t, tpl.Validate())

	// Fallback детерминирован: оффлайн-резолвер дает тот же результат
	offline := NewResolver(NewCache(nil), nil)
	tplOffline, _ := offline.Resolve(context.Background(), []string{"Water"}, "Heat")
	require.Equal(t, tpl, tplOffline)
}

func TestResolver_OfflineMode(t *testing.T) {
	r := NewResolver(NewCache(nil), nil)

	tpl, fresh := r.Resolve(context.Background(), []string{"Earth", "Seed"}, "Mix")
	require.True(t, fresh)
	require.NoError(t, tpl.Validate())

	_, fresh = r.Resolve(context.Background(), []string{"Seed", "Earth"}, "Mix")
	require.False(t, fresh)
}
