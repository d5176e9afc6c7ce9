package usecase_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"indices_monitor/internal/feature/indices/usecase"
)

func hasAtMostTwoDecimals(v float64) bool {
	return math.Abs(v*100-math.Round(v*100)) < 1e-6
}

func TestSimulator_Move_Bounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		draw      int
		base      float64
		wantPct   float64
		wantChg   float64
		wantPrice float64
	}{
		{"lowest draw is -2%", 0, 5800, -2.00, -116.00, 5684.00},
		{"highest draw stays below +2%", 399, 5800, 1.99, 115.42, 5915.42},
		{"middle draw is flat", 200, 42500, 0, 0, 42500},
		{"rounding of change", 250, 18200, 0.50, 91.00, 18291.00},
		{"odd base", 137, 8300, -0.63, -52.29, 8247.71},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotN int
			sim := usecase.NewSimulator(func(n int) int {
				gotN = n
				return tt.draw
			})

			m := sim.Move(tt.base)

			assert.Equal(t, 400, gotN)
			assert.InDelta(t, tt.wantPct, m.ChangePercent, 1e-9)
			assert.InDelta(t, tt.wantChg, m.Change, 1e-9)
			assert.InDelta(t, tt.wantPrice, m.Price, 1e-9)
		})
	}
}

func TestSimulator_Move_RandomDraws(t *testing.T) {
	t.Parallel()

	sim := usecase.NewSimulator(nil)
	bases := []float64{5800, 42500, 18200, 8100, 39800, 19500, 19200, 8300}

	for i := 0; i < 2000; i++ {
		base := bases[i%len(bases)]
		m := sim.Move(base)

		assert.GreaterOrEqual(t, m.ChangePercent, -2.0)
		assert.Less(t, m.ChangePercent, 2.0)
		assert.True(t, hasAtMostTwoDecimals(m.Price), "price %v", m.Price)
		assert.True(t, hasAtMostTwoDecimals(m.Change), "change %v", m.Change)
		assert.True(t, hasAtMostTwoDecimals(m.ChangePercent), "changePercent %v", m.ChangePercent)
		assert.GreaterOrEqual(t, m.Price, base*0.98-0.01)
		assert.Less(t, m.Price, base*1.02+0.01)
		assert.InDelta(t, base+m.Change, m.Price, 0.011)
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{1.234, 1.23},
		{1.235, 1.24},
		{-1.235, -1.24},
		{5801.25, 5801.25},
		{0.5678, 0.57},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, usecase.Round2(tt.in), "Round2(%v)", tt.in)
	}
}
