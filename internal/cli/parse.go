package cli

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/viant/pointnd/point"
)

var errNonFiniteCoord = errors.New("not a finite number")

// parseCoords converts loosely typed values (CLI strings, YAML scalars) into
// coordinates. Comma separated strings are split.
func parseCoords(values []interface{}) ([]float64, error) {
	var coords []float64
	for _, value := range values {
		if s, ok := value.(string); ok && strings.Contains(s, ",") {
			for _, part := range strings.Split(s, ",") {
				v, err := parseCoord(part)
				if err != nil {
					return nil, err
				}
				coords = append(coords, v)
			}
			continue
		}
		v, err := parseCoord(value)
		if err != nil {
			return nil, err
		}
		coords = append(coords, v)
	}
	if len(coords) == 0 {
		return nil, point.ErrZeroDims
	}
	return coords, nil
}

func parseCoord(value interface{}) (float64, error) {
	if s, ok := value.(string); ok {
		value = strings.TrimSpace(s)
	}
	v, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %v: %w", value, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid coordinate %v: %w", value, errNonFiniteCoord)
	}
	return v, nil
}

// parseDims converts axis names or indexes, given as YAML scalars or comma
// separated strings, into point indexes.
func parseDims(values []interface{}) ([]int, error) {
	var names []string
	for _, value := range values {
		s, err := cast.ToStringE(value)
		if err != nil {
			return nil, fmt.Errorf("invalid dimension %v: %w", value, err)
		}
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				names = append(names, part)
			}
		}
	}
	return point.Axes(names...)
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
