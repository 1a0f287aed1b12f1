package block

import (
	"github.com/hupe1980/clustergo/internal/lanes"
)

// Strided is a dense rows x stride matrix with zero padding past dim.
type Strided[T lanes.Float] struct {
	data   []T
	rows   int
	dim    int
	stride int
}

// NewStrided allocates a zeroed rows x stride matrix.
func NewStrided[T lanes.Float](rows, dim, width int) *Strided[T] {
	stride := lanes.RoundUp(dim, width)
	return &Strided[T]{
		data:   make([]T, rows*stride),
		rows:   rows,
		dim:    dim,
		stride: stride,
	}
}

// Rows returns the number of rows.
func (m *Strided[T]) Rows() int { return m.rows }

// Dim returns the true dimension count.
func (m *Strided[T]) Dim() int { return m.dim }

// Stride returns the padded row width.
func (m *Strided[T]) Stride() int { return m.stride }

// Row returns the full stride-wide chunk of row i, padding included.
func (m *Strided[T]) Row(i int) []T {
	return m.data[i*m.stride : (i+1)*m.stride]
}

// SetRow copies vals into row i. vals may be dim or stride long; with a
// dim-long source the padding lanes are reset to zero.
func (m *Strided[T]) SetRow(i int, vals []T) {
	row := m.Row(i)
	n := copy(row, vals)
	for ; n < m.stride; n++ {
		row[n] = 0
	}
}

// Data returns the backing slice (rows * stride).
func (m *Strided[T]) Data() []T { return m.data }

// Clone returns a deep copy of the matrix.
func (m *Strided[T]) Clone() *Strided[T] {
	c := *m
	c.data = make([]T, len(m.data))
	copy(c.data, m.data)
	return &c
}

// Zero resets every element to zero.
func (m *Strided[T]) Zero() {
	clear(m.data)
}

// Partitioned is an immutable sample matrix split into contiguous row
// blocks for data-parallel iteration.
type Partitioned[T lanes.Float] struct {
	blocks []*Strided[T]
	starts []int // global index of each block's first row
	n      int
	dim    int
	stride int
	width  int
}

// NewPartitioned copies the flat n x dim sample buffer into p stride
// blocks. p is clamped to [1, n].
func NewPartitioned[T lanes.Float](samples []T, n, dim, p, width int) *Partitioned[T] {
	if p < 1 {
		p = 1
	}
	if p > n {
		p = n
	}

	pt := &Partitioned[T]{
		blocks: make([]*Strided[T], p),
		starts: make([]int, p),
		n:      n,
		dim:    dim,
		stride: lanes.RoundUp(dim, width),
		width:  width,
	}

	// First n%p blocks carry one extra row.
	base, rem := n/p, n%p
	start := 0
	for b := range pt.blocks {
		rows := base
		if b < rem {
			rows++
		}
		blk := NewStrided[T](rows, dim, width)
		for r := 0; r < rows; r++ {
			blk.SetRow(r, samples[(start+r)*dim:(start+r+1)*dim])
		}
		pt.blocks[b] = blk
		pt.starts[b] = start
		start += rows
	}

	return pt
}

// Blocks returns the number of blocks.
func (pt *Partitioned[T]) Blocks() int { return len(pt.blocks) }

// Block returns block b together with the global index of its first row.
func (pt *Partitioned[T]) Block(b int) (*Strided[T], int) {
	return pt.blocks[b], pt.starts[b]
}

// Row returns the stride-wide chunk of the global row i.
func (pt *Partitioned[T]) Row(i int) []T {
	base, rem := pt.n/len(pt.blocks), pt.n%len(pt.blocks)
	boundary := rem * (base + 1)

	var b, r int
	if i < boundary {
		b = i / (base + 1)
		r = i % (base + 1)
	} else {
		b = rem + (i-boundary)/base
		r = (i - boundary) % base
	}

	return pt.blocks[b].Row(r)
}

// N returns the sample count.
func (pt *Partitioned[T]) N() int { return pt.n }

// Dim returns the true dimension count.
func (pt *Partitioned[T]) Dim() int { return pt.dim }

// Stride returns the padded row width.
func (pt *Partitioned[T]) Stride() int { return pt.stride }

// Width returns the lane width the layout was built with.
func (pt *Partitioned[T]) Width() int { return pt.width }
