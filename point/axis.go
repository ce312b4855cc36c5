package point

import (
	"fmt"
	"strconv"
	"strings"
)

// Axis names one of the first four coordinate slots.
type Axis int

const (
	X Axis = iota
	Y
	Z
	W
)

var axisNames = [...]string{"x", "y", "z", "w"}

func (a Axis) String() string {
	if a < X || a > W {
		return "Axis(" + strconv.Itoa(int(a)) + ")"
	}
	return axisNames[a]
}

// ParseAxis converts "x", "y", "z" or "w" (any case) to its index. Only those
// four names are accepted.
func ParseAxis(name string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	case "w":
		return W, nil
	}
	return 0, fmt.Errorf("point: unknown axis %q", name)
}

// Axes converts a list of axis names or decimal indexes into indexes suitable
// for ApplyDims. Repeats are kept.
//
//	dims, _ := point.Axes("y", "w", "5") // [1 3 5]
func Axes(names ...string) ([]int, error) {
	dims := make([]int, 0, len(names))
	for _, name := range names {
		if i, err := strconv.Atoi(strings.TrimSpace(name)); err == nil {
			if i < 0 {
				return nil, fmt.Errorf("point: negative index %d", i)
			}
			dims = append(dims, i)
			continue
		}
		a, err := ParseAxis(name)
		if err != nil {
			return nil, err
		}
		dims = append(dims, int(a))
	}
	return dims, nil
}
