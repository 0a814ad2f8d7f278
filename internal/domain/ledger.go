package domain

import "time"

// LedgerSample - точка (время, суммарный кэш) для расчета скорости дохода.
type LedgerSample struct {
	At    time.Time `json:"at"`
	Total float64   `json:"total"`
}

// CashLedger - кассовая книга сессии. Total монотонно не убывает
// (механики трат в игре нет). Окно Samples покрывает последние LedgerWindow
// секунд и обрезается при каждой выборке.
type CashLedger struct {
	Total         float64        `json:"total"`
	Samples       []LedgerSample `json:"-"`
	RatePerMinute float64        `json:"ratePerMinute"`
}

// Credit начисляет деньги за проданный предмет.
func (l *CashLedger) Credit(amount float64) {
	if amount <= 0 {
		return
	}
	l.Total += amount
}

// Sample добавляет точку (now, Total), обрезает окно и пересчитывает
// RatePerMinute. Вызывается движком раз в симулированную секунду.
func (l *CashLedger) Sample(now time.Time) {
	l.Samples = append(l.Samples, LedgerSample{At: now, Total: l.Total})

	// Обрезаем все, что старше now - LedgerWindow
	cutoff := now.Add(-LedgerWindow)
	firstValid := 0
	for firstValid < len(l.Samples) && l.Samples[firstValid].At.Before(cutoff) {
		firstValid++
	}
	if firstValid > 0 {
		l.Samples = l.Samples[firstValid:]
	}

	if len(l.Samples) < 2 {
		return
	}

	oldest := l.Samples[0]
	newest := l.Samples[len(l.Samples)-1]
	span := newest.At.Sub(oldest.At)
	if span <= 0 {
		// Нулевой или отрицательный интервал: оставляем прежнюю скорость.
		return
	}

	l.RatePerMinute = (newest.Total - oldest.Total) / span.Minutes()
}
