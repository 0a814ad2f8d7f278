package engine

import (
	"time"

	"assembly-server/internal/domain"
)

// Config хранит параметры запуска движка
type Config struct {
	// TickRate - частота тиков, Гц. Физика считается по измеренной
	// дельте, поэтому просадки тикера не искажают скорость предметов.
	TickRate int

	// SellZonePos/SellZoneSize - зона продажи на холсте.
	// У нее нет сущности в реестре, только точка входа для роутера.
	SellZonePos  domain.Point
	SellZoneSize domain.Size

	// SampleInterval - период выборки кассовой книги.
	SampleInterval time.Duration
}

// NewConfig создает конфиг по умолчанию
func NewConfig() Config {
	return Config{
		TickRate:       60,
		SellZonePos:    domain.Point{X: 1100, Y: 280},
		SellZoneSize:   domain.Size{W: 128, H: 128},
		SampleInterval: time.Second,
	}
}

// SellPoint возвращает точку, в которую ведут соединения на продажу.
func (c Config) SellPoint() domain.Point {
	return domain.Center(c.SellZonePos, c.SellZoneSize)
}

// TickPeriod возвращает интервал тикера.
func (c Config) TickPeriod() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
