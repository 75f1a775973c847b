package internal

import "fmt"

// DomainError reports a violated evaluation precondition. Evaluators panic
// with a *DomainError rather than returning it; these conditions mean the
// caller passed a parameter or description the evaluator cannot accept.
type DomainError struct {
	Op     string
	Detail string
}

// NewDomainError builds the error for operation op and traces it.
func NewDomainError(op, format string, args ...interface{}) *DomainError {
	err := &DomainError{Op: op, Detail: fmt.Sprintf(format, args...)}
	tracer().Errorf("%s", err)
	return err
}

func (this *DomainError) Error() string {
	return "nurbs: " + this.Op + ": " + this.Detail
}
