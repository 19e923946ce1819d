package pure

// Pure returns a transition emitting v without advancing the state.
func Pure[S, V any](v V) Transition[S, V] {
	return func(s S) Step[S, V] {
		return Step[S, V]{State: s, Value: v}
	}
}

// Then sequences two transitions. The state f's transition receives is
// always the one t produced; the input state is consumed here and never
// handed out again.
func Then[S, A, B any](t Transition[S, A], f func(A) Transition[S, B]) Transition[S, B] {
	return func(s S) Step[S, B] {
		var step = t(s)
		return f(step.Value)(step.State)
	}
}

// Map transforms the emitted value, leaving state threading untouched.
func Map[S, A, B any](t Transition[S, A], f func(A) B) Transition[S, B] {
	return func(s S) Step[S, B] {
		var step = t(s)
		return Step[S, B]{State: step.State, Value: f(step.Value)}
	}
}

// Replicate sequences t count times, collecting values in draw order. A
// count of zero or less emits an empty slice and leaves the state
// unchanged.
func Replicate[S, V any](t Transition[S, V], count int) Transition[S, []V] {
	if count < 0 {
		count = 0
	}
	return func(s S) Step[S, []V] {
		var values = make([]V, 0, count)
		for i := 0; i < count; i++ {
			var step = t(s)
			s = step.State
			values = append(values, step.Value)
		}
		return Step[S, []V]{State: s, Value: values}
	}
}
