package catalog

import (
	"time"

	"assembly-server/internal/domain"
)

// ResourceTemplate определяет базовый ресурс, который может эмитить спавнер.
type ResourceTemplate struct {
	Name        string  `yaml:"name"`
	Emoji       string  `yaml:"emoji"`
	CashPerItem float64 `yaml:"cashPerItem"`

	// SpawnInterval - период эмиссии спавнера этого ресурса.
	SpawnInterval time.Duration `yaml:"spawnInterval"`
}

// ModifierTemplate определяет тип модификатора.
type ModifierTemplate struct {
	Name  string `yaml:"name"`
	Emoji string `yaml:"emoji"`

	// ProcessInterval - период цикла обработки.
	ProcessInterval time.Duration `yaml:"processInterval"`
}

// --- БАЗОВЫЕ РЕСУРСЫ ---

var Water = ResourceTemplate{
	Name:          "Water",
	Emoji:         "💧",
	CashPerItem:   0.5,
	SpawnInterval: domain.DefaultSpawnInterval,
}

var Fire = ResourceTemplate{
	Name:          "Fire",
	Emoji:         "🔥",
	CashPerItem:   0.5,
	SpawnInterval: domain.DefaultSpawnInterval,
}

var Earth = ResourceTemplate{
	Name:          "Earth",
	Emoji:         "🪨",
	CashPerItem:   0.4,
	SpawnInterval: domain.DefaultSpawnInterval,
}

var Wind = ResourceTemplate{
	Name:          "Wind",
	Emoji:         "🌬️",
	CashPerItem:   0.4,
	SpawnInterval: domain.DefaultSpawnInterval,
}

var Seed = ResourceTemplate{
	Name:          "Seed",
	Emoji:         "🌱",
	CashPerItem:   0.6,
	SpawnInterval: 4 * time.Second,
}

var Metal = ResourceTemplate{
	Name:          "Metal",
	Emoji:         "⚙️",
	CashPerItem:   0.8,
	SpawnInterval: 5 * time.Second,
}

// --- МОДИФИКАТОРЫ ---

var Heat = ModifierTemplate{
	Name:            "Heat",
	Emoji:           "♨️",
	ProcessInterval: domain.DefaultProcessInterval,
}

var Mix = ModifierTemplate{
	Name:            "Mix",
	Emoji:           "🌀",
	ProcessInterval: domain.DefaultProcessInterval,
}

var Press = ModifierTemplate{
	Name:            "Press",
	Emoji:           "🗜️",
	ProcessInterval: 3 * time.Second,
}

var Chill = ModifierTemplate{
	Name:            "Chill",
	Emoji:           "❄️",
	ProcessInterval: domain.DefaultProcessInterval,
}

// resourceTemplates - карта всех доступных ресурсов
var resourceTemplates = map[string]ResourceTemplate{
	"Water": Water,
	"Fire":  Fire,
	"Earth": Earth,
	"Wind":  Wind,
	"Seed":  Seed,
	"Metal": Metal,
}

// modifierTemplates - карта всех доступных модификаторов
var modifierTemplates = map[string]ModifierTemplate{
	"Heat":  Heat,
	"Mix":   Mix,
	"Press": Press,
	"Chill": Chill,
}
