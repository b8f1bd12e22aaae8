package app

import (
	"math/rand"
	"time"
)

// NewRand создаёт источник случайных чисел.
// seed == 0 — зерно от текущего времени, иначе результат воспроизводим.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
