package domain

import "time"

// Виды концов соединения
const (
	EndpointSpawner  = "SPAWNER"
	EndpointModifier = "MODIFIER"
	// EndpointSell - сентинел. У зоны продажи нет сущности в реестре,
	// соединение с таким концом ведет в точку SellZoneCenter.
	EndpointSell = "SELL"
)

// Типы предметов (результат генерации)
const (
	ItemTypeIngredient = "Ingredient"
	ItemTypeModifier   = "Modifier"
)

// Параметры симуляции по умолчанию
const (
	// DefaultTravelSpeed - скорость предмета вдоль соединения, px/сек.
	DefaultTravelSpeed = 80.0

	// MaxPendingInputs - жесткий лимит очереди входов модификатора.
	// Четвертый предмет не принимается: он ждет на конце соединения,
	// пока цикл обработки не освободит слоты.
	MaxPendingInputs = 3

	// DefaultSpawnInterval / DefaultProcessInterval - интервалы по умолчанию,
	// если каталог не задал свои.
	DefaultSpawnInterval   = 3 * time.Second
	DefaultProcessInterval = 2 * time.Second

	// LedgerWindow - окно выборок для расчета cash-per-minute.
	LedgerWindow = 60 * time.Second

	// MinCashPerItem - нижняя граница цены предмета. Внешний генератор
	// может вернуть что угодно, перед принятием значение поднимается до нее.
	MinCashPerItem = 0.01
)

// Размеры сущностей на холсте
var (
	SpawnerSize  = Size{W: 96, H: 96}
	ModifierSize = Size{W: 96, H: 96}
)
