package array

// Operand is the traversal geometry of one array taking part in a walk:
// the buffer position of its first element and its per-axis strides.
type Operand struct {
	Offset  int
	Strides []int
}

// Walker visits every multi-index of a shape in row-major order while keeping
// one running buffer offset per operand. Operands must have one stride per axis
// of the walked shape; broadcast axes carry stride 0.
//
// The traversal is an iterative odometer, so rank does not grow the call stack.
//
// Example:
//
//	w := Walk(out.Shape(), a.Operand(), out.Operand())
//	for w.Next() {
//		dst[w.Offset(1)] = src[w.Offset(0)]
//	}
type Walker struct {
	shape   Shape
	strides [][]int
	offsets []int
	index   []int
	started bool
	done    bool
}

// Walk returns a Walker over shape for the given operands.
func Walk(shape Shape, ops ...Operand) *Walker {
	w := &Walker{
		shape:   shape,
		strides: make([][]int, len(ops)),
		offsets: make([]int, len(ops)),
		index:   make([]int, len(shape)),
		done:    shape.NumElements() == 0,
	}
	for i, op := range ops {
		w.strides[i] = op.Strides
		w.offsets[i] = op.Offset
	}
	return w
}

// Next advances to the next multi-index. The first call positions the walker
// on the first element.
func (w *Walker) Next() bool {
	if w.done {
		return false
	}
	if !w.started {
		w.started = true
		return true
	}
	for ax := len(w.shape) - 1; ax >= 0; ax-- {
		w.index[ax]++
		for i := range w.offsets {
			w.offsets[i] += w.strides[i][ax]
		}
		if w.index[ax] < w.shape[ax] {
			return true
		}
		for i := range w.offsets {
			w.offsets[i] -= w.strides[i][ax] * w.shape[ax]
		}
		w.index[ax] = 0
	}
	w.done = true
	return false
}

// Offset returns the current buffer position of operand i.
func (w *Walker) Offset(i int) int {
	return w.offsets[i]
}

// Index returns the current multi-index. The slice is reused between steps.
func (w *Walker) Index() []int {
	return w.index
}
