package point

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errOdd = errors.New("odd value")

func add(n int) Modifier[int, int] {
	return func(v int) (int, error) { return v + n, nil }
}

func mul(n int) Modifier[int, int] {
	return func(v int) (int, error) { return v * n, nil }
}

func divide(a, b int) (int, error) {
	if b == 0 {
		return 0, errors.New("division by zero")
	}
	return a / b, nil
}

func TestApply(t *testing.T) {
	p, err := Apply(New[uint8](0, 1, 2, 3), func(v uint8) (uint8, error) { return v * 2, nil })
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 2, 4, 6}, p.IntoSlice())
}

func TestApply_Identity(t *testing.T) {
	p, err := Apply(New(3, 1, 4), func(v int) (int, error) { return v, nil })
	require.NoError(t, err)
	assert.True(t, Equal(New(3, 1, 4), p))
}

func TestApply_Chained(t *testing.T) {
	p, err := New(0, 1, 2).Apply(add(2))
	require.NoError(t, err)
	p, err = p.Apply(mul(3))
	require.NoError(t, err)
	assert.Equal(t, []int{6, 9, 12}, p.IntoSlice())
}

func TestApply_ChangesType(t *testing.T) {
	p, err := Apply(New(0, 1, 2), func(v int) (float32, error) { return float32(v), nil })
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 2}, p.IntoSlice())
}

func TestApply_ExternalFunction(t *testing.T) {
	square := func(v int) (int, error) { return v * v, nil }
	p, err := Apply(New(0, 1, 2, 3), square)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 9}, p.IntoSlice())
}

func TestApply_NonComparableItems(t *testing.T) {
	type item struct{ tags []string }
	next := map[string]string{"a": "b", "b": "c", "c": "a"}
	p, err := Apply(New(item{[]string{"a"}}, item{[]string{"b"}}, item{[]string{"c"}}),
		func(v item) (item, error) { return item{[]string{next[v.tags[0]]}}, nil })
	require.NoError(t, err)
	got := p.IntoSlice()
	assert.Equal(t, []string{"b"}, got[0].tags)
	assert.Equal(t, []string{"c"}, got[1].tags)
	assert.Equal(t, []string{"a"}, got[2].tags)
}

func TestApply_FailureAtEveryIndex(t *testing.T) {
	const n = 5
	for k := 0; k < n; k++ {
		t.Run(fmt.Sprintf("fail_at_%d", k), func(t *testing.T) {
			var calls []int
			p, err := Apply(Fill(n, 0), func(v int) (int, error) {
				calls = append(calls, len(calls))
				if len(calls)-1 == k {
					return 0, errOdd
				}
				return v + 1, nil
			})
			assert.Nil(t, p)
			require.Error(t, err)
			assert.ErrorIs(t, err, errOdd)

			var modErr *ModifierError
			require.ErrorAs(t, err, &modErr)
			assert.Equal(t, k, modErr.Index)
			assert.Len(t, calls, k+1, "modifier must not run past the failure")
		})
	}
}

func TestApply_ConsumesSource(t *testing.T) {
	src := New(1, 2)
	_, err := src.Apply(add(1))
	require.NoError(t, err)
	assert.True(t, src.Consumed())

	failed := New(1, 2)
	_, err = failed.Apply(func(int) (int, error) { return 0, errOdd })
	require.Error(t, err)
	assert.True(t, failed.Consumed(), "a failed transform still spends the point")

	assert.ErrorIs(t, recovered(func() { src.At(0) }), ErrConsumed)
	assert.ErrorIs(t, recovered(func() { _, _ = src.Apply(add(1)) }), ErrConsumed)
}

func TestApplyDims(t *testing.T) {
	p, err := New(0, 1, 2).ApplyDims([]int{0, 2}, mul(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4}, p.IntoSlice())

	p, err = ApplyDims(New(1, 1, 1), []int{0, 2}, mul(2))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 2}, p.IntoSlice())

	p, err = ApplyDims(New(-2, -1, 0, 1, 2), []int{0, 3}, add(-10))
	require.NoError(t, err)
	assert.Equal(t, []int{-12, -1, 0, -9, 2}, p.IntoSlice())
}

func TestApplyDims_Chained(t *testing.T) {
	dims, err := Axes("y", "w")
	require.NoError(t, err)
	p, err := New(0, 1, 2, 3, 4).ApplyDims(dims, mul(2))
	require.NoError(t, err)

	dims, err = Axes("x", "z")
	require.NoError(t, err)
	p, err = p.ApplyDims(dims, add(10))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 2, 12, 6, 4}, p.IntoSlice())
}

func TestApplyDims_RepeatedIndex(t *testing.T) {
	p, err := New(1, 1, 1).ApplyDims([]int{1, 1, 1}, mul(2))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 8, 1}, p.IntoSlice())
}

func TestApplyDims_Order(t *testing.T) {
	var seen []int
	record := func(v int) (int, error) {
		seen = append(seen, v)
		return v, nil
	}
	_, err := New(10, 11, 12, 13).ApplyDims([]int{3, 0, 2}, record)
	require.NoError(t, err)
	assert.Equal(t, []int{13, 10, 12}, seen)
}

func TestApplyDims_BadIndex(t *testing.T) {
	testCases := []struct {
		description string
		dims        []int
		expectCalls []int
	}{
		{description: "bad index first", dims: []int{3, 0, 1}, expectCalls: nil},
		{description: "bad index after valid ones", dims: []int{0, 2, 7, 1}, expectCalls: []int{0, 2}},
		{description: "negative index", dims: []int{1, -1}, expectCalls: []int{1}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			var calls []int
			p := New(0, 1, 2)
			out, err := p.ApplyDims(testCase.dims, func(v int) (int, error) {
				calls = append(calls, v)
				return v * 2, nil
			})
			assert.Nil(t, out)
			assert.ErrorIs(t, err, ErrBadIndex)
			assert.Equal(t, testCase.expectCalls, calls)
			assert.True(t, p.Consumed())
		})
	}
}

func TestApplyDims_ValidateFirst(t *testing.T) {
	dims := []int{0, 2, 7}
	p := New(0, 1, 2)

	err := CheckDims(p.Dims(), dims)
	require.ErrorIs(t, err, ErrBadIndex)
	assert.False(t, p.Consumed(), "validation does not consume the point")

	calls := 0
	require.NoError(t, CheckDims(p.Dims(), []int{0, 2}))
	out, err := p.ApplyDims([]int{0, 2}, func(v int) (int, error) {
		calls++
		return v, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 3, out.Dims())
}

func TestApplyDims_ModifierFailure(t *testing.T) {
	_, err := New(0, 1, 2).ApplyDims([]int{0, 1}, func(v int) (int, error) {
		if v%2 == 1 {
			return 0, errOdd
		}
		return v, nil
	})
	assert.ErrorIs(t, err, errOdd)
	var modErr *ModifierError
	require.ErrorAs(t, err, &modErr)
	assert.Equal(t, 1, modErr.Index)
}

func TestApplyVals(t *testing.T) {
	p, err := ApplyVals(New(0, 1, 2), []int{1, 3, 5}, func(a, b int) (int, error) { return a + b, nil })
	require.NoError(t, err)
	p, err = ApplyVals(p, []int{2, 4, 6}, func(a, b int) (int, error) { return a * b, nil })
	require.NoError(t, err)
	assert.Equal(t, []int{2, 16, 42}, p.IntoSlice())
}

func TestApplyVals_Optional(t *testing.T) {
	ten, twenty := 10, 20
	p, err := ApplyVals(New(0, 1, 2), []*int{&ten, nil, &twenty}, func(a int, b *int) (int, error) {
		if b == nil {
			return a, nil
		}
		return a + *b, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 1, 22}, p.IntoSlice())
}

func TestApplyVals_ChangesType(t *testing.T) {
	type op int
	const (
		opAdd op = iota
		opSub
	)
	p, err := ApplyVals(New(0, 1, 2), []op{opAdd, opSub, opAdd}, func(a int, o op) (float32, error) {
		if o == opSub {
			return float32(a - 10), nil
		}
		return float32(a + 10), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []float32{10, -9, 12}, p.IntoSlice())
}

func TestApplyVals_Failure(t *testing.T) {
	p, err := ApplyVals(New(4, 9), []int{2, 0}, divide)
	assert.Nil(t, p)
	var modErr *ModifierError
	require.ErrorAs(t, err, &modErr)
	assert.Equal(t, 1, modErr.Index)
}

func TestApplyVals_LengthMismatch(t *testing.T) {
	err := recovered(func() {
		_, _ = ApplyVals(New(0, 1, 2), []int{1}, func(a, b int) (int, error) { return a + b, nil })
	})
	assert.ErrorIs(t, err, ErrDimsMismatch)
}

func TestApplyPoint(t *testing.T) {
	p3, err := ApplyPoint(New(4, 9), New(2, 3), divide)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, p3.IntoSlice())

	p3, err = ApplyPoint(New(0, 1, 2, 3), New(0, -1, -2, -3), func(a, b int) (int, error) { return a - b, nil })
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 6}, p3.IntoSlice())
}

func TestApplyPoint_Chained(t *testing.T) {
	sub := func(a, b int) (int, error) { return a - b, nil }
	times := func(a, b int) (int, error) { return a * b, nil }

	p, err := ApplyPoint(New(1, 2, 3, 4), New(0, 9, 3, 1), sub)
	require.NoError(t, err)
	p, err = ApplyPoint(p, Fill(4, 10), times)
	require.NoError(t, err)
	assert.Equal(t, []int{10, -70, 0, 30}, p.IntoSlice())
}

func TestApplyPoint_ZeroDivisor(t *testing.T) {
	lhs, rhs := New(4, 9), New(2, 0)
	p, err := ApplyPoint(lhs, rhs, divide)
	assert.Nil(t, p)
	require.Error(t, err)
	assert.True(t, lhs.Consumed())
	assert.True(t, rhs.Consumed())
}

func TestApplyPoint_MixedTypes(t *testing.T) {
	p, err := ApplyPoint(New(1, 2), New("a", "bb"), func(n int, s string) (string, error) {
		return fmt.Sprintf("%d:%s", n, s), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1:a", "2:bb"}, p.IntoSlice())
}

func TestApplyPoint_DimsMismatch(t *testing.T) {
	err := recovered(func() { _, _ = ApplyPoint(New(1, 2), New(1, 2, 3), divide) })
	assert.ErrorIs(t, err, ErrDimsMismatch)
}
