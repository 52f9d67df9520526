// Package options implements the generic functional-option pattern shared by
// the codec factory and the block encoder.
package options

// Option configures a target of type T, usually a pointer to a config
// struct.
type Option[T any] interface {
	apply(T) error
}

// Func is a function used as an Option.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New wraps a setter that may reject its input.
func New[T any](fn func(T) error) Func[T] {
	return fn
}

// NoError wraps a setter that can't fail.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply applies opts to target in order and stops at the first error. Nil
// options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
