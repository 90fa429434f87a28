// Package mask provides binary masks that darken selected pixels of a grid.
package mask

import (
	"github.com/MeKo-Tech/colorgrid/internal/grid"
	"github.com/aquilax/go-perlin"
)

// DefaultStep is the brightness reduction, in HSB percent, applied by Apply.
const DefaultStep = 20

// DefaultNoiseScale is the feature size FromNoise uses for a non-positive
// scale.
const DefaultNoiseScale = 8.0

// Mask is a rows×cols matrix of integers. Only cells equal to 1 select a
// pixel; every other value, including 0, leaves the pixel alone.
//
// Mask does no locking.
type Mask struct {
	rows, cols int
	cells      []int
}

// New creates a mask with every cell set to 0. Negative dimensions are
// treated as zero.
func New(rows, cols int) *Mask {
	rows = max(rows, 0)
	cols = max(cols, 0)
	return &Mask{
		rows:  rows,
		cols:  cols,
		cells: make([]int, rows*cols),
	}
}

func (m *Mask) Rows() int { return m.rows }
func (m *Mask) Cols() int { return m.cols }

func (m *Mask) contains(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// Set stores v at (i, j). Out-of-bounds writes are ignored and v is not
// validated.
func (m *Mask) Set(i, j, v int) {
	if !m.contains(i, j) {
		return
	}
	m.cells[i*m.cols+j] = v
}

// Value returns the cell at (i, j), or -1 when out of bounds.
func (m *Mask) Value(i, j int) int {
	if !m.contains(i, j) {
		return -1
	}
	return m.cells[i*m.cols+j]
}

// Count returns the number of cells equal to 1.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.cells {
		if v == 1 {
			n++
		}
	}
	return n
}

// Apply darkens every set pixel of g whose mask cell is 1 by DefaultStep.
// It returns the number of pixels rewritten.
func (m *Mask) Apply(g *grid.Grid) int {
	return m.ApplyWithStep(g, DefaultStep)
}

// ApplyWithStep darkens selected pixels by step brightness points. The pixel
// goes through HSB, its brightness is reduced (never below 0), and the
// result is stored back as RGBA. Cells outside either the mask or the grid
// are skipped, as are unset pixels. A step of zero or less leaves the grid
// untouched.
func (m *Mask) ApplyWithStep(g *grid.Grid, step int) int {
	if step <= 0 {
		return 0
	}
	changed := 0
	for i := 0; i < m.rows && i < g.Rows(); i++ {
		for j := 0; j < m.cols && j < g.Cols(); j++ {
			if m.cells[i*m.cols+j] != 1 {
				continue
			}
			c, ok := g.At(i, j)
			if !ok {
				continue
			}
			hsb := c.ToHSB()
			darker := hsb.WithBrightness(max(hsb.B()-step, 0))
			g.Set(i, j, darker.ToRGBA())
			changed++
		}
	}
	return changed
}

// FromNoise builds a mask from 2D Perlin noise: a cell is 1 where the noise,
// normalized to roughly [0, 1], is at or above threshold.
// scale controls the feature size in cells (larger = smoother blobs) and
// falls back to DefaultNoiseScale when not positive; seed makes the result
// deterministic.
//
// Cells are sampled at their centers. Perlin noise is zero on every lattice
// point, so sampling corners would give a flat mask at integer scales.
func FromNoise(rows, cols int, scale, threshold float64, seed int64) *Mask {
	if scale <= 0 {
		scale = DefaultNoiseScale
	}

	// alpha: persistence, beta: lacunarity, n: octaves
	p := perlin.NewPerlin(2.0, 2.0, 3, seed)

	m := New(rows, cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			val := p.Noise2D((float64(j)+0.5)/scale, (float64(i)+0.5)/scale)
			if (val+1.0)/2.0 >= threshold {
				m.cells[i*m.cols+j] = 1
			}
		}
	}
	return m
}
