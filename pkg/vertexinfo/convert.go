package vertexinfo

import (
	"errors"
	"fmt"
	"math"
)

// ErrNarrowing is returned when a record cannot be represented in the compact
// form without losing information the caller did not opt into losing.
var ErrNarrowing = errors.New("vertexinfo: value outside compact range")

// Compact is the float32/int32 form of a VertexInfo, used where millions of
// per-vertex records are held at once and the full precision of the working
// form is not needed.
type Compact struct {
	borders int
	lengths []float32
	counts  []int32
}

// Borders returns the border vertex count of the compact record.
func (c *Compact) Borders() int { return c.borders }

// Narrow converts a record to its compact form. The border count is always
// preserved; the conversion fails if any count overflows int32 or any finite
// length overflows float32. Narrowing is explicit and checked here rather
// than hidden in a generic constructor, so precision loss in shortest-path
// arithmetic can never happen silently.
func Narrow(vi *VertexInfo) (*Compact, error) {
	out := &Compact{
		borders: vi.borders,
		lengths: make([]float32, vi.borders),
		counts:  make([]int32, vi.borders),
	}
	for i := 0; i < vi.borders; i++ {
		l := vi.lengths[i]
		if !math.IsInf(l, 0) && math.Abs(l) > math.MaxFloat32 {
			return nil, fmt.Errorf("%w: length %g at border %d", ErrNarrowing, l, i)
		}
		c := vi.counts[i]
		if c > math.MaxInt32 || c < math.MinInt32 {
			return nil, fmt.Errorf("%w: count %d at border %d", ErrNarrowing, c, i)
		}
		out.lengths[i] = float32(l)
		out.counts[i] = int32(c)
	}
	return out, nil
}

// Widen converts a compact record back to the working form. Widening is
// always exact.
func Widen(c *Compact) *VertexInfo {
	out := New(c.borders)
	for i := 0; i < c.borders; i++ {
		out.lengths[i] = float64(c.lengths[i])
		out.counts[i] = int64(c.counts[i])
	}
	return out
}
