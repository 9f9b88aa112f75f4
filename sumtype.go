package adt

import (
	"fmt"
	"sync"

	"github.com/benbjohnson/immutable"
	"github.com/npillmayer/adt/maybe"
)

// SumType is a named type with a closed set of variants. Variants are registered in
// the order of their definition and never removed; the registry serves introspection
// only and is never consulted by the matcher.
type SumType struct {
	name     string
	mx       sync.Mutex
	variants *immutable.List // of *Variant, append-only
}

// NewSumType creates a sum type without any variants.
func NewSumType(name string) *SumType {
	if name == "" {
		panic(invalid(name, "sum type must have a name"))
	}
	return &SumType{name: name, variants: immutable.NewList()}
}

// Name returns the name of the sum type.
func (s *SumType) Name() string {
	return s.name
}

func (s *SumType) String() string {
	return s.name
}

// Variants returns a snapshot of the variants of s, in definition order.
func (s *SumType) Variants() []*Variant {
	list := s.registry()
	vs := make([]*Variant, 0, list.Len())
	itr := list.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		vs = append(vs, v.(*Variant))
	}
	return vs
}

// Lookup finds a variant by name.
func (s *SumType) Lookup(name string) maybe.Maybe[*Variant] {
	for _, v := range s.Variants() {
		if v.name == name {
			return maybe.Just(v)
		}
	}
	return maybe.Nothing[*Variant]()
}

func (s *SumType) registry() *immutable.List {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.variants
}

// Field is a (name, constraint) pair of a variant definition.
type Field struct {
	Name       string
	Constraint Constraint
}

// F is a shortcut for creating a field definition. A nil constraint stands for Anything.
func F(name string, c Constraint) Field {
	return Field{Name: name, Constraint: c}
}

// Variant defines a new variant of s and registers it. Variants with no fields
// are singletons: all constructions return the identical instance.
//
// Definitions are static, therefore Variant panics with an *InvalidPatternUse if
// the name is already taken or a field name is invalid or used twice.
func (s *SumType) Variant(name string, fields ...Field) *Variant {
	if !isIdentifier(name) {
		panic(invalid(name, "variant name %q is not an identifier", name))
	}
	v := &Variant{
		sum:         s,
		name:        name,
		fields:      make([]string, len(fields)),
		constraints: make([]Constraint, len(fields)),
	}
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		if !isIdentifier(f.Name) {
			panic(invalid(f.Name, "field name %q of %s.%s is not an identifier", f.Name, s.name, name))
		}
		if seen[f.Name] {
			panic(invalid(f.Name, "duplicate field %q in %s.%s", f.Name, s.name, name))
		}
		seen[f.Name] = true
		v.fields[i] = f.Name
		v.constraints[i] = f.Constraint
		if f.Constraint == nil {
			v.constraints[i] = Anything
		}
	}
	if len(fields) == 0 {
		v.singleton = &Instance{variant: v}
	}
	s.mx.Lock()
	defer s.mx.Unlock()
	itr := s.variants.Iterator()
	for !itr.Done() {
		if _, other := itr.Next(); other.(*Variant).name == name {
			panic(invalid(name, "duplicate variant %s.%s", s.name, name))
		}
	}
	s.variants = s.variants.Append(v)
	tracer().Debugf("registered variant %s with fields %v", v, v.fields)
	return v
}

// --- Variant ---------------------------------------------------------------

// Variant is one labeled alternative of a sum type. Its field and constraint lists
// have equal length and are fixed after definition.
type Variant struct {
	sum         *SumType
	name        string
	fields      []string
	constraints []Constraint
	singleton   *Instance // set iff variant has no fields
}

// Name returns the name of the variant.
func (v *Variant) Name() string {
	return v.name
}

// SumType returns the sum type v belongs to.
func (v *Variant) SumType() *SumType {
	return v.sum
}

// Arity is the number of fields of v.
func (v *Variant) Arity() int {
	return len(v.fields)
}

// Fields returns the field names of v, in definition order.
func (v *Variant) Fields() []string {
	return append([]string(nil), v.fields...)
}

// Constraints returns the field constraints of v, parallel to Fields().
func (v *Variant) Constraints() []Constraint {
	return append([]Constraint(nil), v.constraints...)
}

func (v *Variant) String() string {
	return v.sum.name + "." + v.name
}

// New constructs an instance of v. Every value which is not a Binding is checked
// against the constraint of its field; a failing check is reported as a
// *ConstraintViolation. Bindings are accepted for any field, which lets instances
// serve as patterns.
func (v *Variant) New(values ...any) (*Instance, error) {
	if len(values) != len(v.fields) {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, v, len(v.fields), len(values))
	}
	if v.singleton != nil {
		return v.singleton, nil
	}
	for i, value := range values {
		if _, ok := value.(Binding); ok {
			continue
		}
		if err := v.constraints[i].Check(value); err != nil {
			if cv, ok := err.(*ConstraintViolation); ok {
				cv.Variant, cv.Field = v.String(), v.fields[i]
				return nil, cv
			}
			return nil, err
		}
	}
	inst := &Instance{variant: v, values: make([]any, len(values))}
	copy(inst.values, values)
	return inst, nil
}

// Must is like New, but panics if construction fails.
func (v *Variant) Must(values ...any) *Instance {
	inst, err := v.New(values...)
	if err != nil {
		panic(err)
	}
	return inst
}

// With constructs an instance of v from named field values. Fields not present in
// named are set to a binding of the field's name, making the result a pattern which
// pins some fields and captures the others:
//
//	Cons.With(map[string]any{"tail": Nil.Must()})  // ≡ Cons.Must(Bind("head"), Nil.Must())
//
// Unknown field names are an *InvalidPatternUse.
func (v *Variant) With(named map[string]any) (*Instance, error) {
	for name := range named {
		if v.fieldIndex(name) < 0 {
			return nil, invalid(named, "%s has no field %q", v, name)
		}
	}
	values := make([]any, len(v.fields))
	for i, f := range v.fields {
		if x, ok := named[f]; ok {
			values[i] = x
		} else {
			values[i] = Bind(f)
		}
	}
	return v.New(values...)
}

func (v *Variant) fieldIndex(name string) int {
	for i, f := range v.fields {
		if f == name {
			return i
		}
	}
	return -1
}
