package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLedger_RatePerMinute(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	l := &CashLedger{}
	l.Credit(100)
	l.Sample(t0)
	l.Credit(30)
	l.Sample(t0.Add(30 * time.Second))

	// (130-100)/30s * 60s = 60 в минуту
	require.InDelta(t, 60.0, l.RatePerMinute, 1e-9)
}

func TestLedger_ZeroSpanKeepsPreviousRate(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	l := &CashLedger{}
	l.Credit(100)
	l.Sample(t0)
	l.Credit(30)
	l.Sample(t0.Add(30 * time.Second))
	require.InDelta(t, 60.0, l.RatePerMinute, 1e-9)

	// Две выборки в один и тот же момент: скорость не должна измениться
	l.Credit(1000)
	l.Samples = []LedgerSample{{At: t0, Total: 0}, {At: t0, Total: 1000}}
	l.Sample(t0)
	require.InDelta(t, 60.0, l.RatePerMinute, 1e-9)
}

func TestLedger_WindowPruning(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	l := &CashLedger{}
	for i := 0; i < 120; i++ {
		l.Credit(1)
		l.Sample(t0.Add(time.Duration(i) * time.Second))
	}

	// Окно 60 секунд: выборки старше now-60s отрезаны
	cutoff := t0.Add(119 * time.Second).Add(-LedgerWindow)
	for _, s := range l.Samples {
		require.False(t, s.At.Before(cutoff), "sample %v older than window cutoff %v", s.At, cutoff)
	}
	require.LessOrEqual(t, len(l.Samples), 61)
}

func TestLedger_TotalNeverDecreases(t *testing.T) {
	l := &CashLedger{}
	l.Credit(10)
	require.Equal(t, 10.0, l.Total)

	// Отрицательные и нулевые начисления игнорируются
	l.Credit(-5)
	l.Credit(0)
	require.Equal(t, 10.0, l.Total)

	l.Credit(2.5)
	require.Equal(t, 12.5, l.Total)
}
