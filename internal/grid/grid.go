// Package grid provides a fixed-size rectangular grid of color values and its
// plain-text dump format.
package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/colorgrid/internal/colormodel"
)

// ErrUnsetPixel is returned when a dump is requested for a grid that still
// has cells without a color.
var ErrUnsetPixel = errors.New("pixel not set")

// Grid is a rows×cols matrix of colors. Cells start out unset.
//
// Grid does no locking; concurrent writers must synchronize externally.
type Grid struct {
	rows, cols int
	pixels     []colormodel.Color
}

// New creates an empty grid. Negative dimensions are treated as zero.
func New(rows, cols int) *Grid {
	rows = max(rows, 0)
	cols = max(cols, 0)
	return &Grid{
		rows:   rows,
		cols:   cols,
		pixels: make([]colormodel.Color, rows*cols),
	}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Contains reports whether (i, j) lies inside the grid.
func (g *Grid) Contains(i, j int) bool {
	return i >= 0 && i < g.rows && j >= 0 && j < g.cols
}

// Fill sets every cell to c.
func (g *Grid) Fill(c colormodel.Color) {
	for i := range g.pixels {
		g.pixels[i] = c
	}
}

// Set stores c at row i, column j. Out-of-bounds writes are ignored.
func (g *Grid) Set(i, j int, c colormodel.Color) {
	if !g.Contains(i, j) {
		return
	}
	g.pixels[i*g.cols+j] = c
}

// At returns the color at row i, column j. ok is false when the cell is out
// of bounds or has never been set.
func (g *Grid) At(i, j int) (c colormodel.Color, ok bool) {
	if !g.Contains(i, j) {
		return nil, false
	}
	c = g.pixels[i*g.cols+j]
	return c, c != nil
}

// WriteText writes the grid as rows of space-separated packed integers, one
// line per row, each value followed by a single space.
func (g *Grid) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 16)

	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			c := g.pixels[i*g.cols+j]
			if c == nil {
				return fmt.Errorf("write row %d col %d: %w", i, j, ErrUnsetPixel)
			}
			buf = strconv.AppendUint(buf[:0], uint64(c.Integer()), 10)
			buf = append(buf, ' ')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// SaveText writes the text dump to path, creating parent directories.
func (g *Grid) SaveText(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := g.WriteText(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// ReadText parses a dump written by WriteText, decoding every value as a
// packed color of the given space. Blank lines are skipped and every row
// must have the same number of values.
func ReadText(r io.Reader, space colormodel.Space) (*Grid, error) {
	var rows [][]colormodel.Color

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(rows) > 0 && len(fields) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: expected %d values, got %d", line, len(rows[0]), len(fields))
		}

		row := make([]colormodel.Color, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseUint(f, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d value %d: %w", line, j+1, err)
			}
			c, err := colormodel.FromInteger(space, uint32(v))
			if err != nil {
				return nil, err
			}
			row[j] = c
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read grid: %w", err)
	}

	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	g := New(len(rows), cols)
	for i, row := range rows {
		copy(g.pixels[i*cols:], row)
	}
	return g, nil
}
