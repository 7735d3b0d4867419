package backmap

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/radsim/roadstyle/element"
	"github.com/radsim/roadstyle/infrastructure"
)

// Kind classifies back-mapping failures. All kinds are permanent: the same
// input always fails the same way.
type Kind int

const (
	// NoRuleForTransition is returned when the matrix holds no rule for a
	// pair of categories.
	NoRuleForTransition Kind = iota + 1
	// StallDetected is returned when a rule did not change the category.
	StallDetected
	// CycleDetected is returned when a (category, tags) state repeats.
	CycleDetected
	// PreconditionViolated is returned for illegal combinations of input
	// tags and category.
	PreconditionViolated
	// UnknownCategory is returned for categories or values that are not
	// known.
	UnknownCategory
)

var kindNames = map[Kind]string{
	NoRuleForTransition:  "NoRuleForTransition",
	StallDetected:        "StallDetected",
	CycleDetected:        "CycleDetected",
	PreconditionViolated: "PreconditionViolated",
	UnknownCategory:      "UnknownCategory",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the error type of all back-mapping failures. Fields that are
// not known for a kind are left empty.
type Error struct {
	Kind    Kind
	From    infrastructure.Coarse
	To      infrastructure.Coarse
	Next    infrastructure.Coarse
	Tags    element.Tags
	Delta   element.Delta
	Updated element.Tags
	Msg     string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	if e.From != "" || e.To != "" {
		msg += fmt.Sprintf(" (%s -> %s)", e.From, e.To)
	}
	return msg
}

// KindOf returns the Kind of err, or 0 if err is not (or does not wrap) an
// *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind returns whether err is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}

// NewError returns an *Error of kind k, for callers outside of this package
// that report failures of the same kinds.
func NewError(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}
