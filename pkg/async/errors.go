package async

import "errors"

// ErrPanic wraps a value recovered from a panicking task.
var ErrPanic = errors.New("async task panicked")
