package httperr

import "errors"

// Kind classifies the failures the core is allowed to raise. Anything
// outside these three is treated as an internal error by the transport.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindInvalidRequest
	KindConflict
)

type BusinessError struct {
	Kind    Kind
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func NotFoundError(message string) error {
	return &BusinessError{Kind: KindNotFound, Message: message}
}

func InvalidRequestError(message string) error {
	return &BusinessError{Kind: KindInvalidRequest, Message: message}
}

func ConflictError(message string) error {
	return &BusinessError{Kind: KindConflict, Message: message}
}

// KindOf reports the business kind of err, if it carries one.
func KindOf(err error) (Kind, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return 0, false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
