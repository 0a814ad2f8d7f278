package discovery

import (
	"github.com/cespare/xxhash/v2"

	"assembly-server/internal/domain"
)

// fallbackTable - встроенный пул шаблонов на случай недоступности
// внешнего генератора. Выбор детерминирован по ключу комбинации,
// поэтому оффлайн-режим дает стабильные результаты между запусками.
var fallbackTable = []domain.ItemTemplate{
	{Name: "Alloy", Emoji: "🔩", CashPerItem: 3.0, Type: domain.ItemTypeIngredient, Rarity: "common", Category: "metal", Complexity: 2, Description: "A dense blend of base metals."},
	{Name: "Steam", Emoji: "💨", CashPerItem: 1.8, Type: domain.ItemTypeIngredient, Rarity: "common", Category: "gas", Complexity: 1, Description: "Hot pressurized vapor."},
	{Name: "Mud", Emoji: "🟤", CashPerItem: 0.6, Type: domain.ItemTypeIngredient, Rarity: "common", Category: "earth", Complexity: 1, Description: "Wet packed soil."},
	{Name: "Glass", Emoji: "🫙", CashPerItem: 2.4, Type: domain.ItemTypeIngredient, Rarity: "uncommon", Category: "material", Complexity: 3, Description: "Clear fused silica."},
	{Name: "Sprout", Emoji: "🌿", CashPerItem: 1.2, Type: domain.ItemTypeIngredient, Rarity: "common", Category: "plant", Complexity: 1, Description: "A young shoot reaching for light."},
	{Name: "Ember", Emoji: "🔥", CashPerItem: 1.5, Type: domain.ItemTypeIngredient, Rarity: "common", Category: "energy", Complexity: 1, Description: "A glowing fragment of fire."},
	{Name: "Crystal", Emoji: "💎", CashPerItem: 5.5, Type: domain.ItemTypeIngredient, Rarity: "rare", Category: "mineral", Complexity: 4, Description: "A faceted mineral lattice."},
	{Name: "Dust", Emoji: "🌫️", CashPerItem: 0.4, Type: domain.ItemTypeIngredient, Rarity: "common", Category: "earth", Complexity: 1, Description: "Fine powdery residue."},
	{Name: "Brick", Emoji: "🧱", CashPerItem: 2.0, Type: domain.ItemTypeIngredient, Rarity: "common", Category: "material", Complexity: 2, Description: "A fired block of clay."},
	{Name: "Frost", Emoji: "🧊", CashPerItem: 1.6, Type: domain.ItemTypeIngredient, Rarity: "uncommon", Category: "ice", Complexity: 2, Description: "A thin layer of crystallized cold."},
	{Name: "Oil", Emoji: "🛢️", CashPerItem: 3.2, Type: domain.ItemTypeIngredient, Rarity: "uncommon", Category: "liquid", Complexity: 3, Description: "Thick combustible liquid."},
	{Name: "Spark", Emoji: "⚡", CashPerItem: 2.2, Type: domain.ItemTypeIngredient, Rarity: "uncommon", Category: "energy", Complexity: 2, Description: "A brief electric discharge."},
}

// FallbackGenerator - детерминированный локальный генератор шаблонов.
type FallbackGenerator struct{}

// Generate выбирает шаблон из таблицы по хешу ключа и масштабирует
// стоимость: чем больше входов в комбинации, тем дороже результат.
func (FallbackGenerator) Generate(key string, inputs []string) domain.ItemTemplate {
	idx := xxhash.Sum64String(key) % uint64(len(fallbackTable))
	tpl := fallbackTable[idx]

	if len(inputs) > 1 {
		tpl.CashPerItem *= 1.0 + 0.35*float64(len(inputs)-1)
	}
	return tpl
}
