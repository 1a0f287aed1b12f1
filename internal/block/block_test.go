package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrided_Padding(t *testing.T) {
	m := NewStrided[float64](2, 3, 4)
	assert.Equal(t, 4, m.Stride())

	m.SetRow(0, []float64{1, 2, 3})
	assert.Equal(t, []float64{1, 2, 3, 0}, m.Row(0))

	// A stride-long source replaces the whole row.
	m.SetRow(1, m.Row(0))
	assert.Equal(t, []float64{1, 2, 3, 0}, m.Row(1))

	// A dim-long source resets the padding.
	m.Row(1)[3] = 9
	m.SetRow(1, []float64{4, 5, 6})
	assert.Equal(t, []float64{4, 5, 6, 0}, m.Row(1))
}

func TestStrided_CloneAndZero(t *testing.T) {
	m := NewStrided[float32](1, 2, 1)
	m.SetRow(0, []float32{7, 8})

	c := m.Clone()
	m.Zero()

	assert.Equal(t, []float32{0, 0}, m.Row(0))
	assert.Equal(t, []float32{7, 8}, c.Row(0))
}

func TestPartitioned_BlockSplit(t *testing.T) {
	samples := make([]float64, 10*2)
	for i := range samples {
		samples[i] = float64(i)
	}

	pt := NewPartitioned(samples, 10, 2, 3, 4)
	require.Equal(t, 3, pt.Blocks())

	// 10 rows over 3 blocks: 4, 3, 3.
	rows, starts := []int{}, []int{}
	for b := 0; b < pt.Blocks(); b++ {
		blk, start := pt.Block(b)
		rows = append(rows, blk.Rows())
		starts = append(starts, start)
	}
	assert.Equal(t, []int{4, 3, 3}, rows)
	assert.Equal(t, []int{0, 4, 7}, starts)
}

func TestPartitioned_RowMapping(t *testing.T) {
	const n, dim = 11, 3
	samples := make([]float64, n*dim)
	for i := range samples {
		samples[i] = float64(i)
	}

	for _, p := range []int{1, 2, 3, 4, 11} {
		pt := NewPartitioned(samples, n, dim, p, 4)
		for i := 0; i < n; i++ {
			row := pt.Row(i)
			require.Len(t, row, pt.Stride())
			assert.Equal(t, samples[i*dim:(i+1)*dim], row[:dim], "p=%d row=%d", p, i)
			assert.Equal(t, []float64{0}, row[dim:], "padding must stay zero")
		}
	}
}

func TestPartitioned_ClampsParallelism(t *testing.T) {
	samples := []float64{1, 2, 3}

	pt := NewPartitioned(samples, 3, 1, 8, 1)
	assert.Equal(t, 3, pt.Blocks())

	pt = NewPartitioned(samples, 3, 1, 0, 1)
	assert.Equal(t, 1, pt.Blocks())
}
