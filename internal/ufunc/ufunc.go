// Package ufunc implements universal functions: elementwise operations with a
// per-kind inner loop and the generalized reduce, accumulate, outer and
// reduceat forms.
//
// Every binary call follows the same protocol: coerce operands to arrays,
// promote both to their common kind, broadcast, and run the kind's loop into a
// fresh contiguous result (or a caller-supplied output). Rank-0 results are
// returned as rank-0 arrays; use Item to degrade them to Go scalars.
package ufunc

import (
	"sort"
	"sync/atomic"

	"github.com/born-ml/ndarray/internal/array"
	"github.com/born-ml/ndarray/internal/parallel"
)

// loop applies a binary kernel over operands already converted to the compute
// kind and broadcast to out's shape.
type loop func(a, b, out *array.Array) error

// kernel is the implementation of a binary ufunc for one compute kind.
type kernel struct {
	loop  loop
	boxed func(x, y any) (any, error)
}

// kernels is indexed by compute kind. A nil entry means the kind is unsupported.
type kernels [array.NumKinds]*kernel

// total builds a kernel from an infallible scalar function.
func total[T, R any](f func(T, T) R) *kernel {
	return &kernel{
		loop: func(a, b, out *array.Array) error {
			x, y, z := array.Data[T](a), array.Data[T](b), array.Data[R](out)
			if a.IsContiguous() && b.IsContiguous() && out.IsContiguous() {
				n := out.Size()
				xs, ys := x[a.Offset():a.Offset()+n], y[b.Offset():b.Offset()+n]
				zs := z[out.Offset() : out.Offset()+n]
				for i := range zs {
					zs[i] = f(xs[i], ys[i])
				}
				return nil
			}
			w := array.Walk(out.Shape(), a.Operand(), b.Operand(), out.Operand())
			for w.Next() {
				z[w.Offset(2)] = f(x[w.Offset(0)], y[w.Offset(1)])
			}
			return nil
		},
		boxed: func(x, y any) (any, error) {
			return f(x.(T), y.(T)), nil
		},
	}
}

// fallible builds a kernel from a scalar function that can fail (division by
// zero, overflow). The loop stops at the first failing element.
func fallible[T, R any](f func(T, T) (R, error)) *kernel {
	return &kernel{
		loop: func(a, b, out *array.Array) error {
			x, y, z := array.Data[T](a), array.Data[T](b), array.Data[R](out)
			w := array.Walk(out.Shape(), a.Operand(), b.Operand(), out.Operand())
			for w.Next() {
				r, err := f(x[w.Offset(0)], y[w.Offset(1)])
				if err != nil {
					return err
				}
				z[w.Offset(2)] = r
			}
			return nil
		},
		boxed: func(x, y any) (any, error) {
			return f(x.(T), y.(T))
		},
	}
}

// Binary is a two-argument ufunc.
type Binary struct {
	name      string
	identity  any
	predicate bool
	logical   bool
	kernels   kernels
	object    func(x, y any) (any, error)
	float64s  func(dst, s, t []float64) []float64
}

// Name returns the ufunc name, e.g. "add".
func (u *Binary) Name() string {
	return u.name
}

// Identity returns the identity element, if the ufunc has one.
func (u *Binary) Identity() (any, bool) {
	return u.identity, u.identity != nil
}

// Supports reports whether the ufunc has a loop for the compute kind k.
func (u *Binary) Supports(k array.Kind) bool {
	if k == array.Generic {
		return true
	}
	return k.Valid() && u.kernels[k] != nil
}

// ResultKind returns the kind of results computed in kind k: IntKind for
// comparisons and logical operations, k otherwise.
func (u *Binary) ResultKind(k array.Kind) array.Kind {
	if u.predicate {
		return array.IntKind
	}
	return k
}

// unaryKernel is the implementation of a unary ufunc for one input kind.
type unaryKernel struct {
	result array.Kind
	loop   func(a, out *array.Array) error
	boxed  func(x any) (any, error)
}

func unary[T, R any](f func(T) R) *unaryKernel {
	return &unaryKernel{
		result: array.KindOf[R](),
		loop: func(a, out *array.Array) error {
			x, z := array.Data[T](a), array.Data[R](out)
			w := array.Walk(out.Shape(), a.Operand(), out.Operand())
			for w.Next() {
				z[w.Offset(1)] = f(x[w.Offset(0)])
			}
			return nil
		},
		boxed: func(x any) (any, error) {
			return f(x.(T)), nil
		},
	}
}

// Unary is a one-argument ufunc.
type Unary struct {
	name      string
	kernels   [array.NumKinds]*unaryKernel
	promote   bool
	predicate bool
	object    func(x any) (any, error)
}

// Name returns the ufunc name, e.g. "sqrt".
func (u *Unary) Name() string {
	return u.name
}

// ============================================================================
// Registry
// ============================================================================

var (
	binaries = map[string]*Binary{}
	unaries  = map[string]*Unary{}
)

func register(u *Binary) *Binary {
	binaries[u.name] = u
	return u
}

func registerUnary(u *Unary) *Unary {
	unaries[u.name] = u
	return u
}

// LookupBinary returns the binary ufunc with the given name.
func LookupBinary(name string) (*Binary, bool) {
	u, ok := binaries[name]
	return u, ok
}

// LookupUnary returns the unary ufunc with the given name.
func LookupUnary(name string) (*Unary, bool) {
	u, ok := unaries[name]
	return u, ok
}

// BinaryNames lists the registered binary ufuncs in sorted order.
func BinaryNames() []string {
	names := make([]string, 0, len(binaries))
	for name := range binaries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnaryNames lists the registered unary ufuncs in sorted order.
func UnaryNames() []string {
	names := make([]string, 0, len(unaries))
	for name := range unaries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ============================================================================
// Parallelism
// ============================================================================

var parallelCfg atomic.Pointer[parallel.Config]

// SetParallel installs the worker configuration used by Outer, whose rows write
// disjoint regions of a fresh output. The zero Config (the default) keeps every
// ufunc single-threaded.
func SetParallel(cfg parallel.Config) {
	parallelCfg.Store(&cfg)
}

func parallelConfig() parallel.Config {
	if cfg := parallelCfg.Load(); cfg != nil {
		return *cfg
	}
	return parallel.Config{}
}
