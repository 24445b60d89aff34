package seqs

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ResourceError is the single failure kind native failures of an external resource (a
// cursor read, a connection acquisition, a row decoding) are wrapped into before they
// cross a Sequence boundary. The native failure is kept as the cause.
type ResourceError struct {
	msg   string
	cause error
}

// WrapResourceError wraps cause. Its message is derived from the cause: the cause's type
// followed by its own message. A nil cause gives a nil error and a cause that is a
// *ResourceError is returned unchanged. A cause that only wraps one is wrapped again, so the
// result is always a *ResourceError itself.
func WrapResourceError(cause error) error {
	if cause == nil {
		return nil
	}
	if re, ok := cause.(*ResourceError); ok {
		return re
	}
	return &ResourceError{cause: cause}
}

// NewResourceError wraps cause with a custom message.
func NewResourceError(msg string, cause error) *ResourceError {
	return &ResourceError{msg: msg, cause: cause}
}

func (err *ResourceError) Error() string {
	if err.msg != "" {
		return err.msg
	}
	return fmt.Sprintf("%T: %s", err.cause, err.cause)
}

func (err *ResourceError) Unwrap() error {
	return err.cause
}

// MarshalZerologObject implements zerolog object marshalling.
func (err *ResourceError) MarshalZerologObject(e *zerolog.Event) {
	e.Str("cause_type", fmt.Sprintf("%T", err.cause)).Err(err.cause)
	if err.msg != "" {
		e.Str("msg", err.msg)
	}
}
