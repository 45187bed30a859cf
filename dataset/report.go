package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orthtest/orth"
)

// Format names an encoding for WriteReport.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" and "json".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: output %q", ErrUnsupportedFormat, s)
	}
}

// Report is a result tagged with the run that produced it.
type Report struct {
	RunID  string
	Solver string
	K      float64
	SigHat float64
	Result orth.Result
}

// reportDoc is the encoded shape. Output labels ts/pval match the positional
// entry point's result names.
type reportDoc struct {
	RunID    string         `yaml:"run_id" json:"run_id"`
	Solver   string         `yaml:"solver" json:"solver"`
	K        float64        `yaml:"k" json:"k"`
	SigHat   float64        `yaml:"sig_hat" json:"sig_hat"`
	Tested   []int          `yaml:"tested" json:"tested"`
	TS       nullableFloats `yaml:"ts" json:"ts"`
	PVal     nullableFloats `yaml:"pval" json:"pval"`
	ProjNorm nullableFloats `yaml:"proj_norm" json:"proj_norm"`
}

// nullableFloats encodes non-finite values as JSON null (JSON has no NaN).
// YAML keeps them as .nan / .inf.
type nullableFloats []float64

func (f nullableFloats) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 2+len(f)*12)
	buf = append(buf, '[')
	for i, v := range f {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf = append(buf, "null"...)
			continue
		}
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
	}

	return append(buf, ']'), nil
}

// WriteReport encodes r to w in the given format.
func WriteReport(w io.Writer, r Report, f Format) error {
	doc := reportDoc{
		RunID:    r.RunID,
		Solver:   r.Solver,
		K:        r.K,
		SigHat:   r.SigHat,
		Tested:   r.Result.Tested,
		TS:       nullableFloats(r.Result.TS),
		PVal:     nullableFloats(r.Result.PVal),
		ProjNorm: nullableFloats(r.Result.ProjNorm),
	}

	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("dataset: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("dataset: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: output %q", ErrUnsupportedFormat, string(f))
	}
}
