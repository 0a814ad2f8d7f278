package domain

import (
	"fmt"
	"unicode/utf8"
)

// maxEmojiRunes - верхняя граница длины эмодзи. Один "глиф" может состоять
// из нескольких кодпоинтов (ZWJ-последовательности, модификаторы тона).
const maxEmojiRunes = 8

// ItemTemplate - результат разрешения комбинации: закрытая структура
// вместо динамических словарей. Обязательные поля присутствуют всегда,
// опциональные помечены omitempty и явны по типу.
type ItemTemplate struct {
	Name        string  `json:"name"`
	Emoji       string  `json:"emoji"`
	CashPerItem float64 `json:"cashPerItem"`
	Type        string  `json:"type"` // Ingredient | Modifier

	Rarity      string `json:"rarity,omitempty"`
	Category    string `json:"category,omitempty"`
	Complexity  int    `json:"complexity,omitempty"`
	Description string `json:"description,omitempty"`
}

// Validate проверяет обязательные поля на границе внешнего вызова.
// Любое отсутствующее поле делает весь ответ невалидным (и включает fallback).
func (t ItemTemplate) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("item template: name is required")
	}
	if t.Emoji == "" {
		return fmt.Errorf("item template: emoji is required")
	}
	if utf8.RuneCountInString(t.Emoji) > maxEmojiRunes {
		return fmt.Errorf("item template: emoji %q is not a single glyph", t.Emoji)
	}
	if t.CashPerItem <= 0 {
		return fmt.Errorf("item template: cashPerItem must be positive, got %v", t.CashPerItem)
	}
	if t.Type != ItemTypeIngredient && t.Type != ItemTypeModifier {
		return fmt.Errorf("item template: unknown type %q", t.Type)
	}
	if t.Complexity < 0 || t.Complexity > 10 {
		return fmt.Errorf("item template: complexity %d out of range", t.Complexity)
	}
	return nil
}

// Clamp поднимает цену до MinCashPerItem. Внешний генератор не ограничен
// в значениях, нижнюю границу держим сами.
func (t ItemTemplate) Clamp() ItemTemplate {
	if t.CashPerItem < MinCashPerItem {
		t.CashPerItem = MinCashPerItem
	}
	return t
}

// DiscoveryRecord - закешированный результат комбинации.
// Ключ независим от порядка входов, но зависит от модификатора.
// Записи создаются один раз и не обновляются.
type DiscoveryRecord struct {
	Key      string       `json:"key"`
	Template ItemTemplate `json:"template"`
}

// ResolutionEvent - событие "комбинация разрешена", доставляется
// из горутины резолвера в тиковый цикл движка.
type ResolutionEvent struct {
	ModifierID EntityID
	Template   ItemTemplate
	// NewDiscovery - false, если результат пришел из кеша.
	NewDiscovery bool
}
