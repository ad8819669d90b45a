package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeNet(t *testing.T) {
	tests := []struct {
		name      string
		gross     float64
		shrinkage float64
		want      float64
	}{
		{name: "reference scenario", gross: 10.5, shrinkage: 2, want: 10.29},
		{name: "zero shrinkage keeps gross", gross: 10.5, shrinkage: 0, want: 10.5},
		{name: "full shrinkage", gross: 10.5, shrinkage: 100, want: 0},
		{name: "negative shrinkage clamps to zero", gross: 10.5, shrinkage: -5, want: 10.5},
		{name: "oversized shrinkage clamps to hundred", gross: 10.5, shrinkage: 150, want: 0},
		{name: "zero gross", gross: 0, shrinkage: 2, want: 0},
		{name: "negative gross", gross: -3, shrinkage: 2, want: 0},
		{name: "rounds to milligram", gross: 1.23456, shrinkage: 0, want: 1.235},
		{name: "nan gross", gross: math.NaN(), shrinkage: 2, want: 0},
		{name: "nan shrinkage treated as zero", gross: 10, shrinkage: math.NaN(), want: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeNet(tt.gross, tt.shrinkage))
		})
	}
}

func TestComputeNet_MonotoneInShrinkage(t *testing.T) {
	const gross = 12.345
	prev := ComputeNet(gross, 0)
	for s := 1.0; s <= 100; s++ {
		net := ComputeNet(gross, s)
		assert.LessOrEqual(t, net, prev, "shrinkage %v", s)
		prev = net
	}
}

func TestComputeSubtotal(t *testing.T) {
	assert.Equal(t, 10290000.0, ComputeSubtotal(10.29, 1000000))
	assert.Equal(t, 0.0, ComputeSubtotal(math.NaN(), 1000000))
	assert.Equal(t, 0.0, ComputeSubtotal(10.29, math.NaN()))
	assert.Equal(t, 0.0, ComputeSubtotal(-1, 1000000))
}

func TestDerive_Idempotent(t *testing.T) {
	// Repeated edits must re-derive from gross, never drift.
	net1, sub1 := Derive(10.5, 2, 1000000)
	for i := 0; i < 50; i++ {
		net, sub := Derive(10.5, 2, 1000000)
		assert.Equal(t, net1, net)
		assert.Equal(t, sub1, sub)
	}
	assert.Equal(t, 10.29, net1)
	assert.Equal(t, 10290000.0, sub1)
}
