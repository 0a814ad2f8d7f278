package engine

import "time"

// Clock абстрагирует источник времени движка. Все фазы тика берут
// время только отсюда - в тестах симуляция прокручивается вручную
// без единого time.Sleep.
type Clock interface {
	Now() time.Time
}

// systemClock - боевые часы.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock возвращает часы на time.Now.
func SystemClock() Clock { return systemClock{} }
