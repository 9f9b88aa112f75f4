package adt

import (
	"fmt"
	"reflect"
)

// Constraint restricts the values a variant field accepts.
// Check returns a *ConstraintViolation for values it rejects.
type Constraint interface {
	Check(value any) error
	String() string
}

// --- Anything --------------------------------------------------------------

type anything struct{}

// Anything is the constraint for fields accepting any value.
var Anything Constraint = anything{}

func (anything) Check(any) error { return nil }
func (anything) String() string  { return "anything" }

// --- Require ---------------------------------------------------------------

// Require returns a constraint demanding values to be of a given type or of a subtype.
// target may be
//
//   - a reflect.Type: the dynamic type of a value must be assignable to it, i.e. be
//     the type itself or, for interface types, implement it
//   - a *SumType: values must be instances of one of its variants
//   - a *Variant: values must be instances of exactly this variant
//
// Sum types may therefore refer to themselves in the constraints of their own variants.
// Require panics for other targets, as constraints are part of static definitions.
func Require(target any) Constraint {
	switch t := target.(type) {
	case reflect.Type:
		if t == nil {
			break
		}
		return requireType{t: t}
	case *SumType:
		if t == nil {
			break
		}
		return requireSum{sum: t}
	case *Variant:
		if t == nil {
			break
		}
		return requireVariant{v: t}
	}
	panic(invalid(target, "cannot require %s: not a type, sum type or variant", describe(target)))
}

// RequireType is a shortcut for Require(reflect.TypeOf((*T)(nil)).Elem()).
func RequireType[T any]() Constraint {
	return requireType{t: reflect.TypeOf((*T)(nil)).Elem()}
}

type requireType struct {
	t reflect.Type
}

func (r requireType) Check(value any) error {
	if value != nil && reflect.TypeOf(value).AssignableTo(r.t) {
		return nil
	}
	return violation(r, value)
}

func (r requireType) String() string { return r.t.String() }

type requireSum struct {
	sum *SumType
}

func (r requireSum) Check(value any) error {
	if inst, ok := value.(*Instance); ok && inst != nil && inst.variant.sum == r.sum {
		return nil
	}
	return violation(r, value)
}

func (r requireSum) String() string { return r.sum.name }

type requireVariant struct {
	v *Variant
}

func (r requireVariant) Check(value any) error {
	if inst, ok := value.(*Instance); ok && inst != nil && inst.variant == r.v {
		return nil
	}
	return violation(r, value)
}

func (r requireVariant) String() string { return r.v.String() }

// --- Predicates ------------------------------------------------------------

// Satisfies returns a constraint accepting values for which predicate returns true.
// description is used in error messages.
func Satisfies(description string, predicate func(any) bool) Constraint {
	return satisfies{desc: description, pred: predicate}
}

type satisfies struct {
	desc string
	pred func(any) bool
}

func (s satisfies) Check(value any) error {
	if s.pred(value) {
		return nil
	}
	return violation(s, value)
}

func (s satisfies) String() string { return s.desc }

// ---------------------------------------------------------------------------

func violation(c Constraint, value any) *ConstraintViolation {
	return &ConstraintViolation{Expected: c.String(), Got: typeName(value)}
}

func typeName(value any) string {
	if inst, ok := value.(*Instance); ok && inst != nil {
		return inst.variant.String()
	}
	return fmt.Sprintf("%T", value)
}
