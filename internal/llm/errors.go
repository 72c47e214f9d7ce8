package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

type ErrorKind string

const (
	KindParse    ErrorKind = "parse"
	KindTimeout  ErrorKind = "timeout"
	KindProvider ErrorKind = "provider"
)

// InterpretationError wraps a failure of the interpretation stage with a
// classification the orchestrator can act on.
type InterpretationError struct {
	Kind ErrorKind
	Err  error
}

func (e *InterpretationError) Error() string {
	return fmt.Sprintf("interpretation failed (%s): %v", e.Kind, e.Err)
}

func (e *InterpretationError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an InterpretationError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ie *InterpretationError
	return errors.As(err, &ie) && ie.Kind == kind
}

// classifyCallError sorts a provider call failure into timeout vs provider.
func classifyCallError(err error) *InterpretationError {
	if isTimeout(err) {
		return &InterpretationError{Kind: KindTimeout, Err: err}
	}
	return &InterpretationError{Kind: KindProvider, Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
