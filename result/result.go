/*
Package result provides a type for the outcome of an operation which may fail:
either a value or an error. Package adt uses it as the explicit result type
of a structural match.

Clients may either unpack a result Go-style with Get, or match on it:

	var caps adt.Captures
	var err error
	switch m := adt.Try(pattern, value).Match(); m {
	case m.Ok(&caps):
	    ...
	case m.Err(&err):
	    ...
	}
*/
package result

// Result is the result of a computation that may fail.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	IsOk() bool
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful outcome.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. A nil error is a successful outcome with a zero value.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Map applies f to the value of a successful result and leaves failures untouched.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	x, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(x))
}

// AndThen chains a computation which may fail itself.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	x, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return f(x)
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to branch on a result.
// Each method returns nil if it does not apply.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm *matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm *matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
