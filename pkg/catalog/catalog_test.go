package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	water, ok := c.Resource("Water")
	require.True(t, ok)
	require.Equal(t, "💧", water.Emoji)
	require.Greater(t, water.SpawnInterval, time.Duration(0))

	heat, ok := c.Modifier("Heat")
	require.True(t, ok)
	require.Greater(t, heat.ProcessInterval, time.Duration(0))

	_, ok = c.Resource("Plutonium")
	require.False(t, ok)
}

func TestApplyFile(t *testing.T) {
	yamlBody := `
resources:
  - name: Water
    emoji: 🌊
    cashPerItem: 1.5
    spawnIntervalMs: 1000
  - name: Sand
    emoji: 🏖️
    cashPerItem: 0.3
    spawnIntervalMs: 2500
modifiers:
  - name: Grind
    emoji: ⚒️
    processIntervalMs: 1500
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0644))

	c := Default()
	require.NoError(t, c.ApplyFile(path))

	// Существующий ресурс перезаписан
	water, ok := c.Resource("Water")
	require.True(t, ok)
	require.Equal(t, "🌊", water.Emoji)
	require.Equal(t, 1.5, water.CashPerItem)
	require.Equal(t, time.Second, water.SpawnInterval)

	// Новые записи добавлены
	sand, ok := c.Resource("Sand")
	require.True(t, ok)
	require.Equal(t, 2500*time.Millisecond, sand.SpawnInterval)

	grind, ok := c.Modifier("Grind")
	require.True(t, ok)
	require.Equal(t, 1500*time.Millisecond, grind.ProcessInterval)

	// Встроенные записи без override на месте
	_, ok = c.Modifier("Mix")
	require.True(t, ok)
}

func TestApplyFile_Missing(t *testing.T) {
	c := Default()
	require.Error(t, c.ApplyFile(filepath.Join(t.TempDir(), "nope.yaml")))
}
