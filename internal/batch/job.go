// Package batch reads mask jobs from whitespace-separated text, either a job
// file or an interactive console, and runs them against a pixel grid.
//
// A job is the ordered token sequence
//
//	rows cols r g b a maskRows maskCols <maskRows*maskCols cells> outputName
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/MeKo-Tech/colorgrid/internal/colormodel"
	"github.com/MeKo-Tech/colorgrid/internal/grid"
	"github.com/MeKo-Tech/colorgrid/internal/mask"
)

// Job describes one grid: its size, the fill color and the mask to apply.
type Job struct {
	Rows, Cols int
	Fill       colormodel.RGBA
	Mask       *mask.Mask

	// Output is the file name for the text dump, relative to the output
	// directory. It is empty for jobs read by Prompter.Job.
	Output string
}

// Run builds the grid, fills it and applies the mask with the given
// brightness step. A negative step selects mask.DefaultStep and a step of 0
// leaves the fill untouched. It returns the grid and the number of darkened
// pixels.
func (j Job) Run(step int) (*grid.Grid, int) {
	if step < 0 {
		step = mask.DefaultStep
	}
	g := grid.New(j.Rows, j.Cols)
	g.Fill(j.Fill)
	if j.Mask == nil {
		return g, 0
	}
	return g, j.Mask.ApplyWithStep(g, step)
}

// Parse reads a complete job, including the output name, from r.
func Parse(r io.Reader) (Job, error) {
	tr := newTokenReader(r, nil)
	job, err := tr.job()
	if err != nil {
		return Job{}, err
	}
	job.Output, err = tr.word("output name")
	if err != nil {
		return Job{}, err
	}
	return job, nil
}

// Prompter reads a job interactively, writing a prompt before each group of
// values. A nil out disables the prompts.
type Prompter struct {
	tr *tokenReader
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{tr: newTokenReader(in, out)}
}

// Job reads everything but the output name.
func (p *Prompter) Job() (Job, error) {
	return p.tr.job()
}

// OutputName asks for the file name of the text dump.
func (p *Prompter) OutputName() (string, error) {
	p.tr.prompt("Enter a file name for the result:")
	return p.tr.word("output name")
}

type tokenReader struct {
	sc  *bufio.Scanner
	out io.Writer
}

func newTokenReader(r io.Reader, out io.Writer) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc, out: out}
}

func (t *tokenReader) prompt(msg string) {
	if t.out != nil {
		fmt.Fprintln(t.out, msg)
	}
}

func (t *tokenReader) word(field string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("failed to read %s: %w", field, err)
		}
		return "", fmt.Errorf("failed to read %s: %w", field, io.ErrUnexpectedEOF)
	}
	return t.sc.Text(), nil
}

func (t *tokenReader) integer(field string) (int, error) {
	w, err := t.word(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(w)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, w, err)
	}
	return v, nil
}

func (t *tokenReader) ints(fields ...string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := t.integer(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

var errNegativeSize = errors.New("size must not be negative")

func (t *tokenReader) job() (Job, error) {
	t.prompt("Enter the grid size (rows cols):")
	size, err := t.ints("grid rows", "grid cols")
	if err != nil {
		return Job{}, err
	}
	if size[0] < 0 || size[1] < 0 {
		return Job{}, fmt.Errorf("grid %dx%d: %w", size[0], size[1], errNegativeSize)
	}

	t.prompt("Enter the fill color (r g b a):")
	rgba, err := t.ints("red", "green", "blue", "alpha")
	if err != nil {
		return Job{}, err
	}

	t.prompt("Enter the mask size (rows cols):")
	msize, err := t.ints("mask rows", "mask cols")
	if err != nil {
		return Job{}, err
	}
	if msize[0] < 0 || msize[1] < 0 {
		return Job{}, fmt.Errorf("mask %dx%d: %w", msize[0], msize[1], errNegativeSize)
	}

	t.prompt("Enter the mask cells (0 or 1 each):")
	m := mask.New(msize[0], msize[1])
	for i := 0; i < msize[0]; i++ {
		for j := 0; j < msize[1]; j++ {
			v, err := t.integer(fmt.Sprintf("mask cell (%d,%d)", i, j))
			if err != nil {
				return Job{}, err
			}
			m.Set(i, j, v)
		}
	}

	return Job{
		Rows: size[0],
		Cols: size[1],
		Fill: colormodel.NewRGBA(rgba[0], rgba[1], rgba[2], rgba[3]),
		Mask: m,
	}, nil
}
