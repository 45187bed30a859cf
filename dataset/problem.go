// Package dataset reads orthogonalization problems from YAML/JSON files and
// writes results back in the same formats.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orthtest/matrix"
	"github.com/katalvlaran/orthtest/orth"
)

var (
	// ErrUnsupportedFormat is returned for file extensions or output formats
	// other than yaml/yml/json.
	ErrUnsupportedFormat = errors.New("dataset: unsupported format")

	// ErrMissingField is returned when a required problem field is absent.
	ErrMissingField = errors.New("dataset: missing field")
)

// Matrix layouts accepted in the "layout" field.
const (
	LayoutRows    = "rows"
	LayoutColumns = "columns"
)

// Problem mirrors the on-disk problem description. Pointer fields distinguish
// "absent" from zero.
//
//	y: [1, 0, 1, 0]
//	x:                 # one entry per row (layout: rows, the default)
//	  - [1, 1, 0]
//	sig_hat: 1.0
//	k: 0.01
//	q2: 0              # tests the leading q1-(q2+1) columns
//	tested: [0, 1]     # explicit tested columns; wins over q2
type Problem struct {
	Y      []float64   `yaml:"y" json:"y"`
	X      [][]float64 `yaml:"x" json:"x"`
	Layout string      `yaml:"layout,omitempty" json:"layout,omitempty"`
	SigHat *float64    `yaml:"sig_hat" json:"sig_hat"`
	K      *float64    `yaml:"k" json:"k"`
	Q2     *int        `yaml:"q2,omitempty" json:"q2,omitempty"`
	Tested []int       `yaml:"tested,omitempty" json:"tested,omitempty"`
}

// Load reads a problem file. The decoder is chosen by extension: .yaml, .yml
// and .json are accepted (JSON is parsed as the YAML subset it is).
func Load(path string) (*Problem, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Decode parses a single YAML or JSON document. Unknown keys are rejected.
func Decode(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMissingField)
		}
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}

	return &p, nil
}

// ToOrth checks that the required fields are present and converts p into an
// orth.Problem. Tested columns come from the explicit list when given,
// otherwise from orth.LeadingColumns(q1, q2).
func (p *Problem) ToOrth() (orth.Problem, error) {
	switch {
	case len(p.Y) == 0:
		return orth.Problem{}, fmt.Errorf("%w: y", ErrMissingField)
	case len(p.X) == 0:
		return orth.Problem{}, fmt.Errorf("%w: x", ErrMissingField)
	case p.SigHat == nil:
		return orth.Problem{}, fmt.Errorf("%w: sig_hat", ErrMissingField)
	case p.K == nil:
		return orth.Problem{}, fmt.Errorf("%w: k", ErrMissingField)
	case p.Tested == nil && p.Q2 == nil:
		return orth.Problem{}, fmt.Errorf("%w: one of tested or q2", ErrMissingField)
	}

	var (
		x   *matrix.Dense
		err error
	)
	switch p.Layout {
	case "", LayoutRows:
		x, err = matrix.NewDenseFromRows(p.X)
	case LayoutColumns:
		x, err = matrix.NewDenseFromColumns(p.X)
	default:
		return orth.Problem{}, fmt.Errorf("dataset: layout %q: %w", p.Layout, ErrUnsupportedFormat)
	}
	if err != nil {
		return orth.Problem{}, fmt.Errorf("dataset: x: %w", err)
	}

	tested := p.Tested
	if tested == nil {
		if tested, err = orth.LeadingColumns(x.Cols(), *p.Q2); err != nil {
			return orth.Problem{}, fmt.Errorf("dataset: %w", err)
		}
	}

	return orth.Problem{
		Y:      append([]float64(nil), p.Y...),
		X:      x,
		SigHat: *p.SigHat,
		K:      *p.K,
		Tested: append([]int(nil), tested...),
	}, nil
}
