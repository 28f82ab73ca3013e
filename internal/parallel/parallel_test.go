package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForCoversEveryIndexOnce(t *testing.T) {
	configs := []Config{
		Sequential(),
		{Enabled: true, NumWorkers: 4, MinChunkSize: 1},
		{Enabled: true, NumWorkers: 3, MinChunkSize: 100},
	}

	for _, cfg := range configs {
		const n = 1000
		var counts [n]int32

		For(n, cfg, func(i int) { atomic.AddInt32(&counts[i], 1) })

		for i, c := range counts {
			if c != 1 {
				t.Fatalf("cfg %+v: index %d visited %d times", cfg, i, c)
			}
		}
	}
}

func TestForZeroLength(t *testing.T) {
	called := false
	For(0, DefaultConfig(), func(int) { called = true })
	if called {
		t.Error("f called for empty range")
	}
}
