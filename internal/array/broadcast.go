package array

import "fmt"

// BroadcastTo returns a view of a stretched to shape. Missing leading axes and
// length-1 axes get stride 0; no data is copied.
func BroadcastTo(a *Array, shape Shape) (*Array, error) {
	if a.shape.Equal(shape) {
		return a, nil
	}
	if len(shape) < a.Rank() {
		return nil, fmt.Errorf("broadcast: %w: cannot broadcast %v to %v", ErrShape, a.shape, shape)
	}
	pad := len(shape) - a.Rank()
	strides := make([]int, len(shape))
	for i := range shape {
		in := i - pad
		switch {
		case in < 0:
			strides[i] = 0
		case a.shape[in] == shape[i]:
			strides[i] = a.strides[in]
		case a.shape[in] == 1:
			strides[i] = 0
		default:
			return nil, fmt.Errorf("broadcast: %w: matrices not aligned: cannot broadcast %v to %v",
				ErrShape, a.shape, shape)
		}
	}
	return a.newView(shape.Clone(), strides, a.offset), nil
}

// Broadcast stretches a and b to their common shape.
func Broadcast(a, b *Array) (*Array, *Array, error) {
	shape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, nil, fmt.Errorf("broadcast: %w", err)
	}
	if a, err = BroadcastTo(a, shape); err != nil {
		return nil, nil, err
	}
	if b, err = BroadcastTo(b, shape); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// BroadcastArrays stretches every array to the shape common to all of them.
func BroadcastArrays(arrays ...*Array) ([]*Array, error) {
	shape := Shape{}
	var err error
	for _, a := range arrays {
		if shape, err = BroadcastShapes(shape, a.shape); err != nil {
			return nil, fmt.Errorf("broadcast: %w", err)
		}
	}
	out := make([]*Array, len(arrays))
	for i, a := range arrays {
		if out[i], err = BroadcastTo(a, shape); err != nil {
			return nil, err
		}
	}
	return out, nil
}
