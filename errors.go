package adt

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	tp "github.com/xlab/treeprint"
)

// ErrConstraintViolation is the sentinel for values rejected by a field constraint.
var ErrConstraintViolation = errors.New("constraint violation")

// ErrArity is returned if a variant is constructed with the wrong number of values.
var ErrArity = errors.New("wrong number of field values")

// ErrMatchFailed is the sentinel for structural mismatches.
var ErrMatchFailed = errors.New("match failed")

// ErrCasesExhausted is the sentinel for values no case of a case table accepts.
var ErrCasesExhausted = errors.New("cases exhausted")

// ErrInvalidPattern is the sentinel for structural misuse of patterns.
var ErrInvalidPattern = errors.New("invalid pattern use")

// --- Constraint violations -------------------------------------------------

// ConstraintViolation is returned when constructing an instance with a field value
// which fails the field's constraint. Variant and Field are empty if the constraint
// has been checked standalone.
type ConstraintViolation struct {
	Variant  string
	Field    string
	Expected string // description of the constraint
	Got      string // dynamic type of the offending value
}

func (cv *ConstraintViolation) Error() string {
	var b strings.Builder
	b.WriteString(ErrConstraintViolation.Error())
	if cv.Variant != "" {
		fmt.Fprintf(&b, " in %s.%s", cv.Variant, cv.Field)
	}
	fmt.Fprintf(&b, ": expected %s, got %s", cv.Expected, cv.Got)
	return b.String()
}

// Is makes ConstraintViolation match ErrConstraintViolation.
func (cv *ConstraintViolation) Is(target error) bool {
	return target == ErrConstraintViolation
}

// --- Match failures --------------------------------------------------------

// MatchFailed describes a structural mismatch between a pattern and a value.
// Failures of nested sub-patterns are chained through Cause, outermost first.
type MatchFailed struct {
	Pattern any
	Value   any
	Reason  string
	Cause   *MatchFailed
}

func (mf *MatchFailed) Error() string {
	var b strings.Builder
	b.WriteString(mf.Reason)
	for c := mf.Cause; c != nil; c = c.Cause {
		b.WriteString(": ")
		b.WriteString(c.Reason)
	}
	return b.String()
}

// Is makes MatchFailed match ErrMatchFailed.
func (mf *MatchFailed) Is(target error) bool {
	return target == ErrMatchFailed
}

func (mf *MatchFailed) Unwrap() error {
	if mf.Cause == nil {
		return nil
	}
	return mf.Cause
}

// Innermost returns the failure at the end of the chain, i.e. the sub-pattern/sub-value
// pair which caused the mismatch.
func (mf *MatchFailed) Innermost() *MatchFailed {
	f := mf
	for f.Cause != nil {
		f = f.Cause
	}
	return f
}

// Tree renders the chain of failures as an indented tree, for diagnostics.
func (mf *MatchFailed) Tree() string {
	printer := tp.New()
	branch := printer
	for f := mf; f != nil; f = f.Cause {
		if f.Cause == nil {
			branch.AddNode(f.Reason)
			break
		}
		branch = branch.AddBranch(f.Reason)
	}
	return printer.String()
}

func mismatch(pattern, value any, format string, args ...any) *MatchFailed {
	return &MatchFailed{
		Pattern: pattern,
		Value:   value,
		Reason:  fmt.Sprintf(format, args...),
	}
}

// --- Exhausted cases -------------------------------------------------------

// CasesExhausted is returned by Cases.Dispatch if no case matched a value.
type CasesExhausted struct {
	Table string
	Value any
}

func (ce *CasesExhausted) Error() string {
	return fmt.Sprintf("no case for %s in %s", describe(ce.Value), ce.Table)
}

// Is makes CasesExhausted match ErrCasesExhausted.
func (ce *CasesExhausted) Is(target error) bool {
	return target == ErrCasesExhausted
}

// --- Pattern misuse --------------------------------------------------------

// InvalidPatternUse flags a programmer error in the structure of a pattern, e.g.,
// a Rest binding which is not the last element of a sequence pattern.
type InvalidPatternUse struct {
	Pattern any
	Reason  string
}

func (ip *InvalidPatternUse) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidPattern.Error(), ip.Reason)
}

// Is makes InvalidPatternUse match ErrInvalidPattern.
func (ip *InvalidPatternUse) Is(target error) bool {
	return target == ErrInvalidPattern
}

func invalid(pattern any, format string, args ...any) *InvalidPatternUse {
	return &InvalidPatternUse{Pattern: pattern, Reason: fmt.Sprintf(format, args...)}
}

// describe formats a value for error messages.
func describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", x)
	case fmt.Stringer:
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Ptr && rv.IsNil() {
			return "nil"
		}
		return x.String()
	}
	return fmt.Sprintf("%#v", v)
}
