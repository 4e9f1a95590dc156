package parser

// ParseFunc is a parser for one value. On failure the reader may be left
// mid-consumption; callers that want to try something else restore the state
// they saved before the call. The combinators below do this themselves.
type ParseFunc[T any] func(*Reader) (T, error)

// TryLiteral consumes s exactly, or fails recoverably at the starting
// position without consuming anything.
func TryLiteral(s string, r *Reader) error {
	start := r.State()
	for _, want := range s {
		c, ok := r.Read()
		if !ok || c != want {
			r.Restore(start)
			return newError(start.Pos, true, Expecting{Value: s})
		}
	}
	return nil
}

// Literal consumes s exactly, or fails fatally. Used for tokens that are
// mandatory once the surrounding production has been selected.
func Literal(s string, r *Reader) error {
	if err := TryLiteral(s, r); err != nil {
		pe := err.(*Error)
		return newError(pe.Pos, false, pe.Inner)
	}
	return nil
}

// Optional runs f and returns nil when it failed recoverably, rewinding the
// reader. Fatal failures propagate.
func Optional[T any](f ParseFunc[T], r *Reader) (*T, error) {
	start := r.State()
	v, err := f(r)
	if err != nil {
		if IsRecoverable(err) {
			r.Restore(start)
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

// ZeroOrMore applies f until it fails recoverably or stops consuming input.
// It never fails recoverably itself; zero matches is a valid result.
func ZeroOrMore[T any](f ParseFunc[T], r *Reader) ([]T, error) {
	var out []T
	for {
		start := r.State()
		if r.IsEOF() {
			return out, nil
		}
		v, err := f(r)
		if err != nil {
			if IsRecoverable(err) {
				r.Restore(start)
				return out, nil
			}
			return nil, err
		}
		if r.State() == start {
			// f accepted the empty string; stop rather than loop.
			return out, nil
		}
		out = append(out, v)
	}
}

// Choice tries each alternative in order, rewinding after each recoverable
// failure. The first fatal failure is returned immediately. When every
// alternative fails recoverably, the failure is re-described as "one of the
// alternatives" at the starting position.
func Choice[T any](fs []ParseFunc[T], r *Reader) (T, error) {
	var zero T
	start := r.State()
	for _, f := range fs {
		r.Restore(start)
		v, err := f(r)
		if err == nil {
			return v, nil
		}
		if !IsRecoverable(err) {
			return zero, err
		}
	}
	r.Restore(start)
	return zero, newError(start.Pos, true, Expecting{Value: "one of the alternatives"})
}

// NonRecover promotes a recoverable failure of f to a fatal one at the same
// position. Applied once a production has been unambiguously selected.
func NonRecover[T any](f ParseFunc[T], r *Reader) (T, error) {
	v, err := f(r)
	if err != nil && IsRecoverable(err) {
		pe := err.(*Error)
		return v, newError(pe.Pos, false, pe.Inner)
	}
	return v, err
}

// Recover demotes any failure of f to a recoverable one, so an enclosing
// repetition or choice can move on.
func Recover[T any](f ParseFunc[T], r *Reader) (T, error) {
	v, err := f(r)
	if err != nil && !IsRecoverable(err) {
		pe := err.(*Error)
		return v, newError(pe.Pos, true, pe.Inner)
	}
	return v, err
}
