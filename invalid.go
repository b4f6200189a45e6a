package fixed

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrInvalidArgument is matched by every [ArgumentError] through [errors.Is].
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a call with an argument outside of the domain
// of a function, such as a division by zero or the logarithm of a negative number.
type ArgumentError struct {
	// Op is the qualified name of the function, for example "fixed32.Sqrt".
	Op string
	// Args are the raw values of the offending arguments.
	Args []int64
}

func (e *ArgumentError) Error() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = fmt.Sprint(a)
	}
	return fmt.Sprintf("%v(%v): %v", e.Op, strings.Join(args, ", "), ErrInvalidArgument)
}

// Is reports whether target is [ErrInvalidArgument].
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Handler is called when a function receives an argument outside of its domain.
// The function returns 0 after the handler returns.
// Handlers may be called from multiple goroutines at once and
// must be safe for concurrent use.
type Handler func(op string, args ...int64)

var handler atomic.Pointer[Handler]

// SetHandler installs h as the process-wide invalid argument handler and
// returns the previously installed one.
// Passing nil restores the default handler [Trap].
func SetHandler(h Handler) Handler {
	if h == nil {
		h = Trap
	}
	prev := handler.Swap(&h)
	if prev == nil {
		return Trap
	}
	return *prev
}

// InvalidArgument reports a domain violation to the installed handler.
// It is called by the fixed32 and fixed64 packages and can be used by code
// building its own functions on top of them.
func InvalidArgument(op string, args ...int64) {
	h := handler.Load()
	if h == nil {
		Trap(op, args...)
		return
	}
	(*h)(op, args...)
}

// Trap is the default handler.
// It panics with an [ArgumentError] carrying the stack trace of the call.
// Use [Catch] to turn the panic into an error.
func Trap(op string, args ...int64) {
	panic(errors.WithStack(&ArgumentError{Op: op, Args: args}))
}

// Ignore is a handler that does nothing.
// Invalid calls silently return 0.
func Ignore(string, ...int64) {}

// Log returns a handler that reports every invalid call as a warning.
func Log(logger logrus.FieldLogger) Handler {
	return func(op string, args ...int64) {
		logger.WithFields(logrus.Fields{
			"op":   op,
			"args": args,
		}).Warn(ErrInvalidArgument)
	}
}

// Catch calls f and returns the [ArgumentError] raised by [Trap], if any.
// Panics unrelated to invalid arguments are propagated unchanged.
func Catch(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok {
			panic(r)
		}
		var ae *ArgumentError
		if !errors.As(e, &ae) {
			panic(r)
		}
		err = e
	}()
	f()
	return nil
}
