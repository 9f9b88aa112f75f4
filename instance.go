package adt

import (
	"strings"
)

// Instance is a value of a variant: an immutable tuple of field values whose length
// equals the arity of the variant. Instances holding bindings are patterns.
type Instance struct {
	variant *Variant
	values  []any
}

// Variant returns the variant of inst.
func (inst *Instance) Variant() *Variant {
	return inst.variant
}

// Len returns the number of fields.
func (inst *Instance) Len() int {
	return len(inst.values)
}

// At returns the value of the i-th field.
func (inst *Instance) At(i int) any {
	return inst.values[i]
}

// Get returns the value of a field by name.
func (inst *Instance) Get(field string) (any, bool) {
	if i := inst.variant.fieldIndex(field); i >= 0 {
		return inst.values[i], true
	}
	return nil, false
}

// Values returns a copy of the field values.
func (inst *Instance) Values() []any {
	return append([]any(nil), inst.values...)
}

// Equal is true if other is an instance of the same variant with equal field values.
func (inst *Instance) Equal(other any) bool {
	o, ok := other.(*Instance)
	if !ok || o == nil || inst == nil {
		return ok && o == inst
	}
	if o.variant != inst.variant {
		return false
	}
	for i := range inst.values {
		if !equal(inst.values[i], o.values[i]) {
			return false
		}
	}
	return true
}

// String renders inst like a constructor call, e.g. "Cons(1, Nil)".
func (inst *Instance) String() string {
	if inst == nil {
		return "<nil>"
	}
	if len(inst.values) == 0 {
		return inst.variant.name
	}
	var b strings.Builder
	b.WriteString(inst.variant.name)
	b.WriteByte('(')
	for i, v := range inst.values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(describe(v))
	}
	b.WriteByte(')')
	return b.String()
}
