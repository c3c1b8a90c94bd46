package ncaserr

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrCode int

const (
	None        ErrCode = iota
	Unevaluable ErrCode = iota
	Script
	Suite
	IdentityMismatch
	UndefinedComparison
)

func (c ErrCode) String() string {
	switch c {
	case None:
		return "none"
	case Unevaluable:
		return "unevaluable"
	case Script:
		return "script"
	case Suite:
		return "suite"
	case IdentityMismatch:
		return "identity-mismatch"
	case UndefinedComparison:
		return "undefined-comparison"
	default:
		return fmt.Sprintf("ErrCode(%d)", int(c))
	}
}

// Error is an error classified by an ErrCode
type Error interface {
	error
	Code() ErrCode
}

func FormatWithCode(e Error) string {
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

// New attaches the current stack to err. The result still unwraps to err,
// so errors.As recovers the coded value.
func New[E Error](err E) error {
	return errors.WithStack(err)
}

// CodeOf returns the code of the first Error in err's chain, or None
func CodeOf(err error) ErrCode {
	var coded Error
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return None
}

// AsError returns the first Error in err's chain, or err as Unclassified
func AsError(err error) Error {
	var coded Error
	if errors.As(err, &coded) {
		return coded
	}
	return Unclassified{From: err}
}

type Unclassified struct {
	From error
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Code() ErrCode { return None }
func (e Unclassified) Unwrap() error { return e.From }

type NewScript struct {
	Source string
	From   error
}

func (e NewScript) Error() string {
	return fmt.Sprintf("could not interpret script %q: %v", e.Source, e.From)
}
func (e NewScript) Code() ErrCode { return Script }
func (e NewScript) Unwrap() error { return e.From }

type NewSuite struct {
	Path string
	From error
}

func (e NewSuite) Error() string {
	return fmt.Sprintf("invalid identity suite '%s': %v", e.Path, e.From)
}
func (e NewSuite) Code() ErrCode { return Suite }
func (e NewSuite) Unwrap() error { return e.From }

type NewIdentityMismatch struct {
	Name     string
	Relation string
	Lhs, Rhs string
}

func (e NewIdentityMismatch) Error() string {
	return fmt.Sprintf("identity '%s' does not hold: %s is not %s %s", e.Name, e.Lhs, e.Relation, e.Rhs)
}
func (e NewIdentityMismatch) Code() ErrCode { return IdentityMismatch }

type NewUndefinedComparison struct {
	Name       string
	Difference string
}

func (e NewUndefinedComparison) Error() string {
	return fmt.Sprintf("identity '%s' is undecidable: difference simplifies to %s", e.Name, e.Difference)
}
func (e NewUndefinedComparison) Code() ErrCode { return UndefinedComparison }
