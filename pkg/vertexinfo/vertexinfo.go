// Package vertexinfo implements the per-vertex border-distance record used by
// the clustered centrality engine. A VertexInfo stores, for every border
// vertex of the owning cluster, the shortest-path length and shortest-path
// count from its vertex to that border. The engine relies on three behaviors:
// normalization (closest border at distance zero, so vectors from clusters
// discovered at different absolute distances stay comparable), squared
// distance (relaxation convergence checks), and the lexicographic Compare
// (deterministic tie-breaking between otherwise equal-looking vertices).
//
// Index and shape violations are caller bugs and panic; they are never
// recoverable inside a run.
package vertexinfo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// VertexInfo holds shortest-path lengths and counts from one vertex to each
// border vertex of its cluster. Both sequences always have exactly Borders()
// elements.
type VertexInfo struct {
	borders int
	lengths []float64
	counts  []int64
}

// New creates a VertexInfo for the given number of border vertices, with all
// lengths and counts zero. A zero border count is valid: clusters with no
// external edge (isolated components) carry empty vectors.
func New(borderCount int) *VertexInfo {
	if borderCount < 0 {
		panic(fmt.Sprintf("vertexinfo: negative border count %d", borderCount))
	}
	return &VertexInfo{
		borders: borderCount,
		lengths: make([]float64, borderCount),
		counts:  make([]int64, borderCount),
	}
}

// Borders returns the border vertex count of this record.
func (vi *VertexInfo) Borders() int { return vi.borders }

// SetLength stores the shortest-path length to border i.
func (vi *VertexInfo) SetLength(i int, length float64) {
	vi.checkIndex(i)
	vi.lengths[i] = length
}

// Length returns the shortest-path length to border i.
func (vi *VertexInfo) Length(i int) float64 {
	vi.checkIndex(i)
	return vi.lengths[i]
}

// SetCount stores the shortest-path count to border i.
func (vi *VertexInfo) SetCount(i int, count int64) {
	vi.checkIndex(i)
	vi.counts[i] = count
}

// Count returns the shortest-path count to border i.
func (vi *VertexInfo) Count(i int) int64 {
	vi.checkIndex(i)
	return vi.counts[i]
}

// MinLength returns the minimum shortest-path length across all borders.
// A record with no borders reports zero: a cluster not connected to any
// external vertex is valid input and must not fault.
func (vi *VertexInfo) MinLength() float64 {
	if vi.borders == 0 {
		return 0
	}
	return floats.Min(vi.lengths)
}

// Normalize subtracts MinLength from every length so the closest border sits
// at distance zero. A no-op for borderless records, or when the minimum is
// not finite (a vertex that reaches no border at all keeps its +Inf entries).
func (vi *VertexInfo) Normalize() {
	if vi.borders == 0 {
		return
	}
	min := floats.Min(vi.lengths)
	if math.IsInf(min, 0) {
		return
	}
	floats.AddConst(-min, vi.lengths)
}

// Reset zeroes all lengths and counts so the record can be reused across
// relaxation passes without reallocating.
func (vi *VertexInfo) Reset() {
	for i := range vi.lengths {
		vi.lengths[i] = 0
	}
	for i := range vi.counts {
		vi.counts[i] = 0
	}
}

// Clone returns an independent copy.
func (vi *VertexInfo) Clone() *VertexInfo {
	out := New(vi.borders)
	copy(out.lengths, vi.lengths)
	copy(out.counts, vi.counts)
	return out
}

// Set overwrites this record with the contents of other. Border counts must
// match.
func (vi *VertexInfo) Set(other *VertexInfo) {
	vi.checkShape(other)
	copy(vi.lengths, other.lengths)
	copy(vi.counts, other.counts)
}

// SquaredDistance returns the sum of squared differences of lengths and of
// counts across all border positions. Zero means the two records are
// elementwise identical; the engine uses this to detect that relaxation
// passes have stopped changing anything.
func (vi *VertexInfo) SquaredDistance(other *VertexInfo) float64 {
	vi.checkShape(other)
	var d float64
	for i := 0; i < vi.borders; i++ {
		dl := vi.lengths[i] - other.lengths[i]
		dc := float64(vi.counts[i] - other.counts[i])
		d += dl*dl + dc*dc
	}
	return d
}

// Add adds other elementwise into this record.
func (vi *VertexInfo) Add(other *VertexInfo) {
	vi.checkShape(other)
	floats.Add(vi.lengths, other.lengths)
	for i, c := range other.counts {
		vi.counts[i] += c
	}
}

// Sub subtracts other elementwise from this record.
func (vi *VertexInfo) Sub(other *VertexInfo) {
	vi.checkShape(other)
	floats.Sub(vi.lengths, other.lengths)
	for i, c := range other.counts {
		vi.counts[i] -= c
	}
}

// Mul multiplies this record elementwise by other.
func (vi *VertexInfo) Mul(other *VertexInfo) {
	vi.checkShape(other)
	floats.Mul(vi.lengths, other.lengths)
	for i, c := range other.counts {
		vi.counts[i] *= c
	}
}

// Div divides this record elementwise by other. A zero length or count in
// other is a caller bug and panics.
func (vi *VertexInfo) Div(other *VertexInfo) {
	vi.checkShape(other)
	for i := 0; i < vi.borders; i++ {
		if other.lengths[i] == 0 || other.counts[i] == 0 {
			panic(fmt.Sprintf("vertexinfo: division by zero at border %d", i))
		}
	}
	floats.Div(vi.lengths, other.lengths)
	for i, c := range other.counts {
		vi.counts[i] /= c
	}
}

// AddConst adds length to every length entry and count to every count entry.
func (vi *VertexInfo) AddConst(length float64, count int64) {
	floats.AddConst(length, vi.lengths)
	for i := range vi.counts {
		vi.counts[i] += count
	}
}

// Scale multiplies every length entry by length and every count entry by
// count.
func (vi *VertexInfo) Scale(length float64, count int64) {
	floats.Scale(length, vi.lengths)
	for i := range vi.counts {
		vi.counts[i] *= count
	}
}

// Compare performs a lexicographic, border-index-ordered comparison: at each
// position the count difference is examined first, then the length
// difference, and the first nonzero difference is returned. The result is
// zero only for elementwise identical records. Downstream logic depends on
// this exact first-difference-wins semantics for deterministic ordering, so
// the per-index evaluation order must never be changed.
func (vi *VertexInfo) Compare(other *VertexInfo) float64 {
	vi.checkShape(other)
	for i := 0; i < vi.borders; i++ {
		if d := float64(vi.counts[i] - other.counts[i]); d != 0 {
			return d
		}
		if d := vi.lengths[i] - other.lengths[i]; d != 0 {
			return d
		}
	}
	return 0
}

// Equal reports whether the two records are elementwise identical.
func (vi *VertexInfo) Equal(other *VertexInfo) bool { return vi.Compare(other) == 0 }

// Less reports whether this record orders before other under Compare.
func (vi *VertexInfo) Less(other *VertexInfo) bool { return vi.Compare(other) < 0 }

func (vi *VertexInfo) checkIndex(i int) {
	if i < 0 || i >= vi.borders {
		panic(fmt.Sprintf("vertexinfo: border index %d out of range [0,%d)", i, vi.borders))
	}
}

func (vi *VertexInfo) checkShape(other *VertexInfo) {
	if vi.borders != other.borders {
		panic(fmt.Sprintf("vertexinfo: border count mismatch %d != %d", vi.borders, other.borders))
	}
}
