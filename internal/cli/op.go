package cli

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/viant/pointnd/point"
)

var (
	errDivByZero = errors.New("division by zero")
	errNegSqrt   = errors.New("square root of negative value")
	errNotFinite = errors.New("result is not finite")
)

type unaryOp func(v, arg float64) (float64, error)

type pairOp func(a, b float64) (float64, error)

var unaryOps = map[string]struct {
	needsArg bool
	fn       unaryOp
}{
	"add":   {needsArg: true, fn: func(v, arg float64) (float64, error) { return v + arg, nil }},
	"sub":   {needsArg: true, fn: func(v, arg float64) (float64, error) { return v - arg, nil }},
	"mul":   {needsArg: true, fn: func(v, arg float64) (float64, error) { return v * arg, nil }},
	"div":   {needsArg: true, fn: func(v, arg float64) (float64, error) { return div(v, arg) }},
	"pow":   {needsArg: true, fn: func(v, arg float64) (float64, error) { return math.Pow(v, arg), nil }},
	"sqrt":  {fn: func(v, _ float64) (float64, error) { return sqrt(v) }},
	"abs":   {fn: func(v, _ float64) (float64, error) { return math.Abs(v), nil }},
	"neg":   {fn: func(v, _ float64) (float64, error) { return -v, nil }},
	"round": {fn: func(v, _ float64) (float64, error) { return math.Round(v), nil }},
}

var pairOps = map[string]pairOp{
	"add": func(a, b float64) (float64, error) { return a + b, nil },
	"sub": func(a, b float64) (float64, error) { return a - b, nil },
	"mul": func(a, b float64) (float64, error) { return a * b, nil },
	"div": div,
	"pow": func(a, b float64) (float64, error) { return math.Pow(a, b), nil },
}

func div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errDivByZero
	}
	return a / b, nil
}

func sqrt(v float64) (float64, error) {
	if v < 0 {
		return 0, errNegSqrt
	}
	return math.Sqrt(v), nil
}

// finite rejects NaN and infinite results, which have no JSON encoding.
func finite(v float64, err error) (float64, error) {
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

// OpSpec is a parsed "name[:arg]" operation.
type OpSpec struct {
	Name string
	Arg  interface{}
}

// ParseOpSpec parses "name" or "name:arg".
func ParseOpSpec(spec string) OpSpec {
	name, arg, found := strings.Cut(strings.TrimSpace(spec), ":")
	op := OpSpec{Name: strings.ToLower(name)}
	if found {
		op.Arg = arg
	}
	return op
}

// Modifier resolves the op into an elementwise modifier.
func (o OpSpec) Modifier() (point.Modifier[float64, float64], error) {
	op, ok := unaryOps[o.Name]
	if !ok {
		return nil, fmt.Errorf("unknown op %q (want one of %s)", o.Name, opNames(unaryOps))
	}
	var arg float64
	switch {
	case op.needsArg && o.Arg == nil:
		return nil, fmt.Errorf("op %q needs an argument", o.Name)
	case !op.needsArg && o.Arg != nil:
		return nil, fmt.Errorf("op %q takes no argument", o.Name)
	case op.needsArg:
		v, err := cast.ToFloat64E(o.Arg)
		if err != nil {
			return nil, fmt.Errorf("op %q: invalid argument %v: %w", o.Name, o.Arg, err)
		}
		arg = v
	}
	return func(v float64) (float64, error) { return finite(op.fn(v, arg)) }, nil
}

// PairModifier resolves the op into a modifier combining two points.
func (o OpSpec) PairModifier() (point.PairModifier[float64, float64, float64], error) {
	if o.Arg != nil {
		return nil, fmt.Errorf("op %q takes no argument when combined with a point", o.Name)
	}
	op, ok := pairOps[o.Name]
	if !ok {
		return nil, fmt.Errorf("unknown point op %q (want one of %s)", o.Name, opNames(pairOps))
	}
	return func(a, b float64) (float64, error) { return finite(op(a, b)) }, nil
}

func opNames[V any](ops map[string]V) string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
