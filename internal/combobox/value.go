package combobox

// ValueSource holds a value that is either owned by the caller (controlled)
// or by the controller (uncontrolled, seeded from a default). Controlled
// always wins: Set is ignored while controlled and only Sync moves the value.
type ValueSource[T any] struct {
	controlled bool
	value      T
}

// Controlled returns a source whose value only the caller may change.
func Controlled[T any](v T) ValueSource[T] {
	return ValueSource[T]{controlled: true, value: v}
}

// Uncontrolled returns a source owned by the controller, seeded with def.
func Uncontrolled[T any](def T) ValueSource[T] {
	return ValueSource[T]{value: def}
}

// IsControlled reports whether the caller owns the value.
func (s ValueSource[T]) IsControlled() bool {
	return s.controlled
}

// Get returns the current value.
func (s ValueSource[T]) Get() T {
	return s.value
}

// Set stores v when uncontrolled and reports whether it was applied.
func (s *ValueSource[T]) Set(v T) bool {
	if s.controlled {
		return false
	}
	s.value = v
	return true
}

// Sync pushes a new caller-owned value. It is a no-op when uncontrolled.
func (s *ValueSource[T]) Sync(v T) {
	if s.controlled {
		s.value = v
	}
}
