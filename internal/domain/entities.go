package domain

import "time"

// --- СУЩНОСТИ СИМУЛЯЦИИ ---
// Все поля мутируются только движком внутри тика (single-writer).
// Снаружи состояние доступно только через снапшот.

// Spawner периодически выпускает базовый ресурс на свое исходящее соединение.
type Spawner struct {
	ID   EntityID `json:"id"`
	Pos  Point    `json:"pos"`
	Size Size     `json:"size"`

	// Resource - имя ресурса из каталога, который эмитится.
	Resource string `json:"resource"`
	Emoji    string `json:"emoji"`

	// LastSpawn - момент последней эмиссии. Единственное мутируемое поле.
	LastSpawn time.Time `json:"-"`

	// SpawnInterval > 0 (инвариант, проверяется при создании).
	SpawnInterval time.Duration `json:"spawnIntervalMs"`
}

// Modifier накапливает входные предметы и раз в ProcessInterval
// превращает их в один выходной предмет через резолвер комбинаций.
type Modifier struct {
	ID   EntityID `json:"id"`
	Pos  Point    `json:"pos"`
	Size Size     `json:"size"`

	Name  string `json:"name"`
	Emoji string `json:"emoji"`

	// Pending - ID предметов, ожидающих обработки. Не больше MaxPendingInputs.
	// Предметы из Pending существуют в реестре до момента потребления.
	Pending []EntityID `json:"pending"`

	LastProcess     time.Time     `json:"-"`
	ProcessInterval time.Duration `json:"processIntervalMs"`

	// Resolving - идет асинхронное разрешение комбинации.
	// Входы уже потреблены (оптимистичное удаление), результат придет событием.
	Resolving bool `json:"resolving"`
}

// Connection - направленный путь от выхода источника ко входу приемника.
// Геометрия (From/To) пересчитывается роутером каждый тик и нигде не кешируется
// между тиками: сущности сегодня неподвижны, но роутер на это не полагается.
type Connection struct {
	ID EntityID `json:"id"`

	SourceID   EntityID `json:"sourceId"`
	SourceKind string   `json:"sourceKind"` // SPAWNER | MODIFIER

	// DestID пуст, если DestKind == SELL (сентинел без сущности).
	DestID   EntityID `json:"destId,omitempty"`
	DestKind string   `json:"destKind"` // MODIFIER | SELL

	From Point `json:"from"`
	To   Point `json:"to"`

	// Speed - скорость прохождения, px/сек симулированного времени.
	Speed float64 `json:"speed"`
}

// Length возвращает текущую длину пути соединения.
func (c *Connection) Length() float64 {
	return c.From.DistanceTo(c.To)
}

// DraftConnection - незавершенное соединение во время драга игрока.
// В реестре живет максимум одно; завершение превращает его в Connection.
type DraftConnection struct {
	SourceID   EntityID `json:"sourceId"`
	SourceKind string   `json:"sourceKind"`
	Cursor     Point    `json:"cursor"`
}

// Item - предмет в пути. Предмет всегда прикреплен ровно к одному соединению;
// других состояний нет - достигнув конца, он либо продается, либо становится
// входом модификатора и исчезает из коллекции.
type Item struct {
	ID EntityID `json:"id"`

	Name  string `json:"name"`
	Emoji string `json:"emoji"`

	// CashValue - сколько начислится при продаже.
	CashValue float64 `json:"cashValue"`
	Type      string  `json:"type"` // Ingredient | Modifier

	Pos Point `json:"pos"`

	// Progress - доля пути [0..1]. Монотонно не убывает на одном соединении,
	// сбрасывается в 0 при переносе на новое.
	Progress     float64  `json:"progress"`
	ConnectionID EntityID `json:"connectionId"`
}
