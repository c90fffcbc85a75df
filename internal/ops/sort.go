package ops

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/born-ml/ndarray/internal/array"
	"golang.org/x/exp/constraints"
)

// sortable is the element type set that has a total order.
type sortable interface {
	constraints.Integer | constraints.Float
}

// Sort returns a copy of a with every lane along axis sorted ascending.
// NaNs sort first. Complex and Generic arrays are ErrUnsupportedKind.
func Sort(av any, axis int) (*array.Array, error) {
	a, ax, err := laneAxis(av, axis, "sort")
	if err != nil {
		return nil, err
	}
	lanes, err := alongLast(a, ax)
	if err != nil {
		return nil, fmt.Errorf("sort: %w", err)
	}
	n := lanes.Shape()[lanes.Rank()-1]
	switch lanes.Kind() {
	case array.Int8:
		sortLanes(lanes.AsInt8(), n)
	case array.Int16:
		sortLanes(lanes.AsInt16(), n)
	case array.Int32:
		sortLanes(lanes.AsInt32(), n)
	case array.Int64:
		sortLanes(lanes.AsInt64(), n)
	case array.Float32:
		sortLanes(lanes.AsFloat32(), n)
	case array.Float64:
		sortLanes(lanes.AsFloat64(), n)
	}
	result, err := fromLast(lanes, ax)
	if err != nil {
		return nil, fmt.Errorf("sort: %w", err)
	}
	return result, nil
}

// Argsort returns, for every lane along axis, the positions that would sort
// it. Equal elements keep their original order.
func Argsort(av any, axis int) (*array.Array, error) {
	a, ax, err := laneAxis(av, axis, "argsort")
	if err != nil {
		return nil, err
	}
	lanes, err := alongLast(a, ax)
	if err != nil {
		return nil, fmt.Errorf("argsort: %w", err)
	}
	out, err := array.New(lanes.Shape(), array.IntKind)
	if err != nil {
		return nil, fmt.Errorf("argsort: %w", err)
	}
	n := lanes.Shape()[lanes.Rank()-1]
	idx := out.AsInt64()
	switch lanes.Kind() {
	case array.Int8:
		argsortLanes(lanes.AsInt8(), idx, n)
	case array.Int16:
		argsortLanes(lanes.AsInt16(), idx, n)
	case array.Int32:
		argsortLanes(lanes.AsInt32(), idx, n)
	case array.Int64:
		argsortLanes(lanes.AsInt64(), idx, n)
	case array.Float32:
		argsortLanes(lanes.AsFloat32(), idx, n)
	case array.Float64:
		argsortLanes(lanes.AsFloat64(), idx, n)
	}
	result, err := fromLast(out, ax)
	if err != nil {
		return nil, fmt.Errorf("argsort: %w", err)
	}
	return result, nil
}

// Argmax returns the position of the first largest element of every lane
// along axis; the axis is removed.
func Argmax(av any, axis int) (*array.Array, error) {
	return argExtreme(av, axis, "argmax", 1)
}

// Argmin returns the position of the first smallest element of every lane
// along axis; the axis is removed.
func Argmin(av any, axis int) (*array.Array, error) {
	return argExtreme(av, axis, "argmin", -1)
}

func argExtreme(av any, axis int, name string, sign int) (*array.Array, error) {
	a, ax, err := laneAxis(av, axis, name)
	if err != nil {
		return nil, err
	}
	n := a.Shape()[ax]
	if n == 0 {
		return nil, fmt.Errorf("%s: %w: empty axis %d", name, array.ErrValue, axis)
	}
	lanes, err := alongLast(a, ax)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	shape := lanes.Shape()[:lanes.Rank()-1]
	out, err := array.New(shape, array.IntKind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	idx := out.AsInt64()
	switch lanes.Kind() {
	case array.Int8:
		extremeLanes(lanes.AsInt8(), idx, n, sign)
	case array.Int16:
		extremeLanes(lanes.AsInt16(), idx, n, sign)
	case array.Int32:
		extremeLanes(lanes.AsInt32(), idx, n, sign)
	case array.Int64:
		extremeLanes(lanes.AsInt64(), idx, n, sign)
	case array.Float32:
		extremeLanes(lanes.AsFloat32(), idx, n, sign)
	case array.Float64:
		extremeLanes(lanes.AsFloat64(), idx, n, sign)
	}
	return out, nil
}

// SearchSorted returns, for every element of values, the leftmost position
// in the ascending 1-D array a at which it could be inserted keeping a
// sorted. The result has the shape of values.
func SearchSorted(av, values any) (*array.Array, error) {
	a, err := array.AsArray(av)
	if err != nil {
		return nil, fmt.Errorf("searchsorted: %w", err)
	}
	v, err := array.AsArray(values)
	if err != nil {
		return nil, fmt.Errorf("searchsorted: %w", err)
	}
	if a.Rank() != 1 {
		return nil, fmt.Errorf("searchsorted: %w: need a 1-D array, got shape %v", array.ErrShape, a.Shape())
	}
	k := array.CommonType(a.Kind(), v.Kind())
	if k.Category() > array.Floating {
		return nil, fmt.Errorf("searchsorted: %w: %s has no ordering", array.ErrUnsupportedKind, k)
	}
	if a, err = array.AsType(a, k); err != nil {
		return nil, fmt.Errorf("searchsorted: %w", err)
	}
	if v, err = array.AsType(v, k); err != nil {
		return nil, fmt.Errorf("searchsorted: %w", err)
	}

	out, err := array.New(v.Shape(), array.IntKind)
	if err != nil {
		return nil, fmt.Errorf("searchsorted: %w", err)
	}
	idx := out.AsInt64()
	switch k {
	case array.Int8:
		search(a.AsInt8(), v.AsInt8(), idx)
	case array.Int16:
		search(a.AsInt16(), v.AsInt16(), idx)
	case array.Int32:
		search(a.AsInt32(), v.AsInt32(), idx)
	case array.Int64:
		search(a.AsInt64(), v.AsInt64(), idx)
	case array.Float32:
		search(a.AsFloat32(), v.AsFloat32(), idx)
	case array.Float64:
		search(a.AsFloat64(), v.AsFloat64(), idx)
	}
	return out, nil
}

// laneAxis converts av and normalizes axis, rejecting kinds without an
// ordering.
func laneAxis(av any, axis int, name string) (*array.Array, int, error) {
	a, err := array.AsArray(av)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", name, err)
	}
	if a.Kind().Category() > array.Floating {
		return nil, 0, fmt.Errorf("%s: %w: %s has no ordering", name, array.ErrUnsupportedKind, a.Kind())
	}
	ax, err := array.NormalizeAxis(axis, a.Rank())
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", name, err)
	}
	return a, ax, nil
}

func sortLanes[T sortable](data []T, n int) {
	if n == 0 {
		return
	}
	for lo := 0; lo < len(data); lo += n {
		slices.Sort(data[lo : lo+n])
	}
}

func argsortLanes[T sortable](data []T, idx []int64, n int) {
	if n == 0 {
		return
	}
	for lo := 0; lo < len(data); lo += n {
		lane, out := data[lo:lo+n], idx[lo:lo+n]
		for i := range out {
			out[i] = int64(i)
		}
		slices.SortStableFunc(out, func(i, j int64) int {
			return cmp.Compare(lane[i], lane[j])
		})
	}
}

func extremeLanes[T sortable](data []T, idx []int64, n, sign int) {
	for l := range idx {
		lane := data[l*n : (l+1)*n]
		best := 0
		for i := 1; i < n; i++ {
			if sign*cmp.Compare(lane[i], lane[best]) > 0 {
				best = i
			}
		}
		idx[l] = int64(best)
	}
}

func search[T sortable](sorted, values []T, idx []int64) {
	for i, v := range values {
		pos, _ := slices.BinarySearch(sorted, v)
		idx[i] = int64(pos)
	}
}
