package array

import "fmt"

// Index is one component of an index expression: Int, Slice, Ellipsis or
// NewAxis.
type Index interface {
	isIndex()
}

// Int selects one position along an axis and removes the axis.
// Negative values count from the end.
type Int int

// Slice selects start:stop:step along an axis with Python semantics:
// negative bounds wrap once, out-of-range bounds clamp, and omitted bounds
// default to the ends implied by the step's sign. Step 0 is illegal.
type Slice struct {
	Start, Stop, Step int
	HasStart, HasStop bool
}

type ellipsis struct{}

type newAxis struct{}

func (Int) isIndex()      {}
func (Slice) isIndex()    {}
func (ellipsis) isIndex() {}
func (newAxis) isIndex()  {}

// Ellipsis expands to as many full slices as needed to consume the axes not
// named by the rest of the expression. At most one may appear.
var Ellipsis Index = ellipsis{}

// NewAxis inserts a length-1 axis.
var NewAxis Index = newAxis{}

// Span returns start:stop:step.
func Span(start, stop, step int) Slice {
	return Slice{Start: start, Stop: stop, Step: step, HasStart: true, HasStop: true}
}

// All returns the full slice ":".
func All() Slice {
	return Slice{Step: 1}
}

// From returns "start:".
func From(start int) Slice {
	return Slice{Start: start, Step: 1, HasStart: true}
}

// To returns ":stop".
func To(stop int) Slice {
	return Slice{Stop: stop, Step: 1, HasStop: true}
}

// Reverse returns "::-1".
func Reverse() Slice {
	return Slice{Step: -1}
}

// Indices resolves the slice against an axis of the given length, returning the
// first selected position, the number of selected positions and the step.
func (s Slice) Indices(length int) (start, n, step int, err error) {
	step = s.Step
	if step == 0 {
		return 0, 0, 0, fmt.Errorf("%w: slice step cannot be zero", ErrIndex)
	}
	if step > 0 {
		start, stop := 0, length
		if s.HasStart {
			start = clampBound(s.Start, length, 0, length)
		}
		if s.HasStop {
			stop = clampBound(s.Stop, length, 0, length)
		}
		if stop > start {
			n = (stop - start + step - 1) / step
		}
		return start, n, step, nil
	}
	start, stop := length-1, -1
	if s.HasStart {
		start = clampBound(s.Start, length, -1, length-1)
	}
	if s.HasStop {
		stop = clampBound(s.Stop, length, -1, length-1)
	}
	if start > stop {
		n = (start - stop - step - 1) / -step
	}
	return start, n, step, nil
}

func clampBound(x, length, lo, hi int) int {
	if x < 0 {
		x += length
	}
	return min(max(x, lo), hi)
}

// View applies an index expression to a and returns a view sharing its buffer.
// Axes the expression does not reach are passed through unchanged.
//
// Example:
//
//	row := View(m, Int(1))                    // m[1]
//	col := View(m, All(), Int(0))             // m[:, 0]
//	evens := View(v, Span(0, 10, 2))          // v[0:10:2]
//	last := View(t, Ellipsis, Int(-1))        // t[..., -1]
//	column := View(v, All(), NewAxis)         // v[:, newaxis]
func View(a *Array, idx ...Index) (*Array, error) {
	// Pass 1: output rank and the number of source axes consumed.
	consumed, rank, ellipses := 0, 0, 0
	for _, ix := range idx {
		switch ix.(type) {
		case Int:
			consumed++
		case Slice:
			consumed++
			rank++
		case newAxis:
			rank++
		case ellipsis:
			ellipses++
		case nil:
			return nil, fmt.Errorf("view: %w: nil index", ErrIndex)
		}
	}
	if ellipses > 1 {
		return nil, fmt.Errorf("view: %w: at most one ellipsis allowed", ErrIndex)
	}
	if consumed > a.Rank() {
		return nil, fmt.Errorf("view: %w: too many indices for array of rank %d", ErrIndex, a.Rank())
	}
	fill := a.Rank() - consumed
	rank += fill

	// Pass 2: walk the expression with a source-axis cursor.
	shape := make(Shape, 0, rank)
	strides := make([]int, 0, rank)
	offset := a.offset
	src := 0
	for _, ix := range idx {
		switch x := ix.(type) {
		case Int:
			n, err := NormalizeIndex(int(x), a.shape[src])
			if err != nil {
				return nil, fmt.Errorf("view: axis %d: %w", src, err)
			}
			offset += n * a.strides[src]
			src++
		case Slice:
			start, n, step, err := x.Indices(a.shape[src])
			if err != nil {
				return nil, fmt.Errorf("view: axis %d: %w", src, err)
			}
			if n > 0 {
				offset += start * a.strides[src]
			}
			shape = append(shape, n)
			strides = append(strides, step*a.strides[src])
			src++
		case newAxis:
			shape = append(shape, 1)
			strides = append(strides, 0)
		case ellipsis:
			shape = append(shape, a.shape[src:src+fill]...)
			strides = append(strides, a.strides[src:src+fill]...)
			src += fill
			fill = 0
		}
	}
	shape = append(shape, a.shape[src:]...)
	strides = append(strides, a.strides[src:]...)
	return a.newView(shape, strides, offset), nil
}

// Assign writes value into the region of a selected by idx, broadcasting value
// to the region's shape and converting it to a's kind.
func Assign(a *Array, value any, idx ...Index) error {
	dst, err := View(a, idx...)
	if err != nil {
		return fmt.Errorf("assign: %w", err)
	}
	src, err := AsArray(value)
	if err != nil {
		return fmt.Errorf("assign: %w", err)
	}
	src, err = BroadcastTo(src, dst.shape)
	if err != nil {
		return fmt.Errorf("assign: %w", err)
	}
	if err := Copy(src, dst); err != nil {
		return fmt.Errorf("assign: %w", err)
	}
	return nil
}
