package catalog

import (
	"fmt"
	"os"
	"time"

	"assembly-server/internal/domain"

	"gopkg.in/yaml.v3"
)

// Catalog - статический справочник типов для размещения.
// Движок валидирует PLACE_* команды только по нему: неизвестное имя - no-op.
type Catalog struct {
	resources map[string]ResourceTemplate
	modifiers map[string]ModifierTemplate
}

// Default возвращает каталог со встроенными шаблонами.
func Default() *Catalog {
	c := &Catalog{
		resources: make(map[string]ResourceTemplate, len(resourceTemplates)),
		modifiers: make(map[string]ModifierTemplate, len(modifierTemplates)),
	}
	for k, v := range resourceTemplates {
		c.resources[k] = v
	}
	for k, v := range modifierTemplates {
		c.modifiers[k] = v
	}
	return c
}

// Resource ищет шаблон ресурса по имени.
func (c *Catalog) Resource(name string) (ResourceTemplate, bool) {
	t, ok := c.resources[name]
	return t, ok
}

// Modifier ищет шаблон модификатора по имени.
func (c *Catalog) Modifier(name string) (ModifierTemplate, bool) {
	t, ok := c.modifiers[name]
	return t, ok
}

// ResourceNames возвращает имена всех ресурсов (для отладки/агента).
func (c *Catalog) ResourceNames() []string {
	names := make([]string, 0, len(c.resources))
	for k := range c.resources {
		names = append(names, k)
	}
	return names
}

// --- YAML OVERRIDE ---

// fileFormat - схема YAML-файла каталога. Интервалы в миллисекундах.
type fileFormat struct {
	Resources []struct {
		Name            string  `yaml:"name"`
		Emoji           string  `yaml:"emoji"`
		CashPerItem     float64 `yaml:"cashPerItem"`
		SpawnIntervalMs int64   `yaml:"spawnIntervalMs"`
	} `yaml:"resources"`
	Modifiers []struct {
		Name              string `yaml:"name"`
		Emoji             string `yaml:"emoji"`
		ProcessIntervalMs int64  `yaml:"processIntervalMs"`
	} `yaml:"modifiers"`
}

// ApplyFile накладывает YAML-файл поверх встроенных шаблонов.
// Записи с существующими именами заменяются, новые - добавляются.
func (c *Catalog) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog file: %w", err)
	}

	var ff fileFormat
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return fmt.Errorf("parse catalog file: %w", err)
	}

	for _, r := range ff.Resources {
		if r.Name == "" {
			return fmt.Errorf("catalog file: resource with empty name")
		}
		interval := time.Duration(r.SpawnIntervalMs) * time.Millisecond
		if interval <= 0 {
			interval = domain.DefaultSpawnInterval
		}
		cash := r.CashPerItem
		if cash < domain.MinCashPerItem {
			cash = domain.MinCashPerItem
		}
		c.resources[r.Name] = ResourceTemplate{
			Name:          r.Name,
			Emoji:         r.Emoji,
			CashPerItem:   cash,
			SpawnInterval: interval,
		}
	}

	for _, m := range ff.Modifiers {
		if m.Name == "" {
			return fmt.Errorf("catalog file: modifier with empty name")
		}
		interval := time.Duration(m.ProcessIntervalMs) * time.Millisecond
		if interval <= 0 {
			interval = domain.DefaultProcessInterval
		}
		c.modifiers[m.Name] = ModifierTemplate{
			Name:            m.Name,
			Emoji:           m.Emoji,
			ProcessInterval: interval,
		}
	}

	return nil
}
