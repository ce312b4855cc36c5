package cli

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/viant/pointnd/point"
)

// Pipeline is a starting point followed by transform steps, as loaded from a
// YAML file:
//
//	point: [0, 1, 2]
//	steps:
//	  - op: add
//	    arg: 2
//	  - op: mul
//	    arg: 3
//	    dims: [x, z]
//	  - op: div
//	    with: [1, 3, 2]
type Pipeline struct {
	Point []interface{} `yaml:"point"`
	Steps []Step        `yaml:"steps"`
}

// Step is one transform. Dims restricts a unary op to the listed axes; With
// combines the current point with a second point instead.
type Step struct {
	Op   string        `yaml:"op"`
	Arg  interface{}   `yaml:"arg,omitempty"`
	Dims []interface{} `yaml:"dims,omitempty"`
	With []interface{} `yaml:"with,omitempty"`
}

// LoadPipeline reads and decodes a pipeline file.
func LoadPipeline(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline: %w", err)
	}
	return ParsePipeline(data)
}

// ParsePipeline decodes a pipeline from YAML.
func ParsePipeline(data []byte) (*Pipeline, error) {
	var p Pipeline
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline: %w", err)
	}
	if len(p.Point) == 0 {
		return nil, fmt.Errorf("pipeline has no point")
	}
	return &p, nil
}

// Run folds the steps over the starting point. Each step consumes the
// previous point.
func (p *Pipeline) Run(logger *slog.Logger) (*point.Point[float64], error) {
	coords, err := parseCoords(p.Point)
	if err != nil {
		return nil, err
	}
	current := point.New(coords...)
	logger.Debug("pipeline start", "point", current.String(), "steps", len(p.Steps))
	for i, step := range p.Steps {
		next, err := step.apply(current)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		logger.Debug("step applied", "step", i+1, "op", step.Op, "point", next.String())
		current = next
	}
	return current, nil
}

func (s Step) apply(current *point.Point[float64]) (*point.Point[float64], error) {
	op := OpSpec{Name: s.Op, Arg: s.Arg}
	if len(s.With) > 0 {
		if len(s.Dims) > 0 {
			return nil, fmt.Errorf("dims and with cannot be combined")
		}
		modifier, err := op.PairModifier()
		if err != nil {
			return nil, err
		}
		coords, err := parseCoords(s.With)
		if err != nil {
			return nil, err
		}
		if len(coords) != current.Dims() {
			return nil, fmt.Errorf("%w: with has %d values, point has %d", point.ErrDimsMismatch, len(coords), current.Dims())
		}
		return point.ApplyPoint(current, point.New(coords...), modifier)
	}
	modifier, err := op.Modifier()
	if err != nil {
		return nil, err
	}
	if len(s.Dims) == 0 {
		return point.Apply(current, modifier)
	}
	dims, err := parseDims(s.Dims)
	if err != nil {
		return nil, err
	}
	return point.ApplyDims(current, dims, modifier)
}
