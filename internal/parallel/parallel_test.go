package parallel

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	n := 1000
	seen := make([]int32, n)
	For(n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	}, cfg)

	for i, c := range seen {
		require.Equal(t, int32(1), c, "index %d", i)
	}
}

func TestForSequentialOrder(t *testing.T) {
	var order []int
	For(5, func(i int) {
		order = append(order, i)
	}, Config{})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)

	order = nil
	For(5, func(i int) {
		order = append(order, i)
	}, Config{Enabled: true})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order, "fewer than two workers runs in order")
}

func TestChunks(t *testing.T) {
	tests := []struct {
		name string
		n    int
		cfg  Config
		want []Range
	}{
		{"empty", 0, DefaultConfig(), nil},
		{"sequential", 10, Config{}, []Range{{0, 10}}},
		{"below chunk size", 7, Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}, []Range{{0, 7}}},
		{"even", 8, Config{Enabled: true, NumWorkers: 4, MinChunkSize: 2}, []Range{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"min chunk wins", 10, Config{Enabled: true, NumWorkers: 8, MinChunkSize: 4}, []Range{{0, 4}, {4, 8}, {8, 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Chunks(tt.n, tt.cfg))
		})
	}
}

func TestForErrLowestIndex(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 2}
	var calls int64
	err := ForErr(100, func(i int) error {
		atomic.AddInt64(&calls, 1)
		if i == 30 || i == 70 {
			return fmt.Errorf("row %d", i)
		}
		return nil
	}, cfg)
	require.Error(t, err)
	assert.Equal(t, "row 30", err.Error())
	assert.Equal(t, int64(100), calls)

	sentinel := errors.New("boom")
	err = ForErr(3, func(i int) error {
		if i > 0 {
			return sentinel
		}
		return nil
	}, Config{})
	assert.ErrorIs(t, err, sentinel)

	assert.NoError(t, ForErr(0, func(int) error { return sentinel }, cfg))
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		seq := cfg
		seq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, seq)
		}
	})
}
