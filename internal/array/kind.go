package array

import "fmt"

// Kind identifies the element type stored in an Array.
type Kind int

// Supported element kinds.
const (
	Int8 Kind = iota
	Int16
	Int32
	Int64
	Float32
	Float64
	Complex64
	Complex128
	Generic
)

// NumKinds is the number of element kinds.
const NumKinds = 9

// IntKind is the kind of index and truth-value results (argsort, comparisons).
// It matches Go's int.
const IntKind = Int64

// Category orders kinds for promotion: Integer < Floating < Complex < Object.
type Category int

// Kind categories.
const (
	Integer Category = iota
	Floating
	Complex
	Object
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case Integer:
		return "integer"
	case Floating:
		return "floating"
	case Complex:
		return "complex"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Kinds lists every element kind in promotion order.
func Kinds() []Kind {
	return []Kind{Int8, Int16, Int32, Int64, Float32, Float64, Complex64, Complex128, Generic}
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	return k >= Int8 && k <= Generic
}

// Category returns the promotion category of k.
func (k Kind) Category() Category {
	switch k {
	case Int8, Int16, Int32, Int64:
		return Integer
	case Float32, Float64:
		return Floating
	case Complex64, Complex128:
		return Complex
	default:
		return Object
	}
}

// Width returns the size in bytes of one scalar component. Complex kinds store
// two components of the matching floating width. Generic values are boxed and
// have no fixed width.
func (k Kind) Width() int {
	switch k {
	case Int8:
		return 1
	case Int16:
		return 2
	case Int32, Float32, Complex64:
		return 4
	case Int64, Float64, Complex128:
		return 8
	default:
		return 0
	}
}

// Components returns the number of scalar components per element.
func (k Kind) Components() int {
	if k.Category() == Complex {
		return 2
	}
	return 1
}

// Size returns the byte size of one element.
func (k Kind) Size() int {
	return k.Width() * k.Components()
}

// Code returns the single-character kind code.
func (k Kind) Code() byte {
	switch k {
	case Int8:
		return '1'
	case Int16:
		return 's'
	case Int32:
		return 'i'
	case Int64:
		return 'l'
	case Float32:
		return 'f'
	case Float64:
		return 'd'
	case Complex64:
		return 'F'
	case Complex128:
		return 'D'
	case Generic:
		return 'O'
	default:
		return '?'
	}
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	case Generic:
		return "generic"
	default:
		return "unknown"
	}
}

// ParseKind decodes a kind code.
func ParseKind(code byte) (Kind, error) {
	for _, k := range Kinds() {
		if k.Code() == code {
			return k, nil
		}
	}
	return 0, fmt.Errorf("parse kind: %w: unknown kind code %q", ErrValue, code)
}

// CommonType returns the smallest kind both a and b promote to.
//
// The result category is the larger category; the result width is the wider of
// the two real-component widths, raised to the narrowest width the category
// offers. Generic absorbs everything. The rule is commutative and associative.
//
// Examples:
//
//	CommonType(Int8, Int32)       // Int32
//	CommonType(Int64, Float32)    // Float64
//	CommonType(Int16, Float32)    // Float32
//	CommonType(Float64, Complex64) // Complex128
func CommonType(a, b Kind) Kind {
	cat := max(a.Category(), b.Category())
	if cat == Object {
		return Generic
	}
	return kindFor(cat, max(a.Width(), b.Width()))
}

// CommonTypeOf folds CommonType over kinds. It returns Int8, the bottom of the
// lattice, when kinds is empty.
func CommonTypeOf(kinds ...Kind) Kind {
	k := Int8
	for _, other := range kinds {
		k = CommonType(k, other)
	}
	return k
}

func kindFor(cat Category, width int) Kind {
	switch cat {
	case Integer:
		switch {
		case width <= 1:
			return Int8
		case width <= 2:
			return Int16
		case width <= 4:
			return Int32
		default:
			return Int64
		}
	case Floating:
		if width <= 4 {
			return Float32
		}
		return Float64
	case Complex:
		if width <= 4 {
			return Complex64
		}
		return Complex128
	default:
		return Generic
	}
}

// FloatingKind returns the floating kind holding one component of k:
// Float32 for Complex64, Float64 for Complex128 and integers, k itself for
// floating kinds.
func FloatingKind(k Kind) Kind {
	switch k {
	case Float32, Complex64:
		return Float32
	default:
		return Float64
	}
}

// ComplexKind returns the complex kind whose components have k's width,
// Complex128 for integers.
func ComplexKind(k Kind) Kind {
	switch k {
	case Float32, Complex64:
		return Complex64
	default:
		return Complex128
	}
}

// KindOf returns the kind that stores Go values of type T.
func KindOf[T any]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		return Generic
	}
}

// KindOfValue infers the kind of a Go scalar. Non-numeric values report Generic
// with ok == false.
func KindOfValue(v any) (kind Kind, ok bool) {
	switch v.(type) {
	case bool, int8:
		return Int8, true
	case uint8, int16:
		return Int16, true
	case uint16, int32:
		return Int32, true
	case int, int64, uint32, uint, uint64, uintptr:
		return Int64, true
	case float32:
		return Float32, true
	case float64:
		return Float64, true
	case complex64:
		return Complex64, true
	case complex128:
		return Complex128, true
	default:
		return Generic, false
	}
}
