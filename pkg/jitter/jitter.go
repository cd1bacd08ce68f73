// Package jitter добавляет случайность в интервалы повторных попыток,
// чтобы параллельные ретраи не били по хранилищу одновременно.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultFactor — стандартный коэффициент джиттера (50%)
const DefaultFactor = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMu     sync.Mutex
)

// Duration возвращает d со случайной добавкой из диапазона [0, d*factor].
func Duration(d time.Duration, factor float64) time.Duration {
	randMu.Lock()
	add := globalRand.Float64() * factor * float64(d)
	randMu.Unlock()
	return d + time.Duration(add)
}

// Backoff вычисляет экспоненциальную задержку с джиттером для попытки attempt
// (нумерация с нуля), ограниченную max.
func Backoff(base, max time.Duration, attempt int, factor float64) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff > max {
			backoff = max
			break
		}
	}
	return Duration(backoff, factor)
}
