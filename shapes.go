package adt

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Mapping is implemented by map-like values. Foreign tree nodes may implement it to be
// matched structurally against mapping patterns. Keys should report the keys in
// insertion order; mapping patterns of this type are traversed in that order.
type Mapping interface {
	Keys() []any
	Lookup(key any) (any, bool)
}

// Sequence is implemented by sequence-like values. Instances of variants implement it
// as well, therefore a sequence pattern will match the fields of an instance.
type Sequence interface {
	Len() int
	At(i int) any
}

// --- Ordered mapping patterns ----------------------------------------------

// Entry is a key/pattern pair of a Map.
type Entry struct {
	Key     any
	Pattern any
}

// Map is a mapping pattern which preserves the order of its entries. Bindings are
// extracted and captured in entry order. Go maps used as patterns are traversed in
// sorted key order instead.
//
// Map values may also be matched against mapping patterns, as Map implements Mapping.
type Map []Entry

// Keys returns the keys of m in declaration order.
func (m Map) Keys() []any {
	keys := make([]any, len(m))
	for i, e := range m {
		keys[i] = e.Key
	}
	return keys
}

// Lookup finds the entry for key.
func (m Map) Lookup(key any) (any, bool) {
	for _, e := range m {
		if equal(e.Key, key) {
			return e.Pattern, true
		}
	}
	return nil, false
}

// entries lists the (key, sub-pattern) pairs of a mapping pattern in traversal order.
// The extractor and the matcher both depend on it, which keeps the order of
// extracted names and of captured values identical.
func entries(pattern any) []Entry {
	switch m := pattern.(type) {
	case Map:
		return m
	case Mapping:
		keys := m.Keys()
		es := make([]Entry, 0, len(keys))
		for _, k := range keys {
			p, _ := m.Lookup(k)
			es = append(es, Entry{Key: k, Pattern: p})
		}
		return es
	}
	rv := reflect.ValueOf(pattern)
	keys := sortedKeys(rv)
	es := make([]Entry, len(keys))
	for i, k := range keys {
		es[i] = Entry{Key: k.Interface(), Pattern: rv.MapIndex(k).Interface()}
	}
	return es
}

func sortedKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return keyLess(keys[i], keys[j])
	})
	return keys
}

// keyLess orders map keys by the name of their dynamic type first, then by value.
// Values of the same type compare natively where possible, else by their rendering.
func keyLess(a, b reflect.Value) bool {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	ta, tb := keyType(a), keyType(b)
	if ta != tb {
		return ta < tb
	}
	if !a.IsValid() || !b.IsValid() {
		return false
	}
	switch a.Kind() {
	case reflect.String:
		return a.String() < b.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	case reflect.Bool:
		return !a.Bool() && b.Bool()
	}
	return fmt.Sprintf("%v", a.Interface()) < fmt.Sprintf("%v", b.Interface())
}

func keyType(v reflect.Value) string {
	if !v.IsValid() {
		return "<nil>"
	}
	return v.Type().String()
}

// --- Views on values -------------------------------------------------------

// asMapping returns a map-like view of value.
func asMapping(value any) (Mapping, bool) {
	if m, ok := value.(Mapping); ok {
		return m, true
	}
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	return goMap{rv}, true
}

type goMap struct {
	rv reflect.Value
}

func (m goMap) Keys() []any {
	keys := sortedKeys(m.rv)
	ks := make([]any, len(keys))
	for i, k := range keys {
		ks[i] = k.Interface()
	}
	return ks
}

func (m goMap) Lookup(key any) (any, bool) {
	kt := m.rv.Type().Key()
	kv := reflect.ValueOf(key)
	if !kv.IsValid() {
		switch kt.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			kv = reflect.Zero(kt)
		default:
			return nil, false
		}
	} else if !kv.Type().AssignableTo(kt) || !kv.Type().Comparable() {
		return nil, false // unhashable keys cannot be present
	}
	if x := m.rv.MapIndex(kv); x.IsValid() {
		return x.Interface(), true
	}
	return nil, false
}

// asSequence returns a sequence view of value. Strings are not sequences.
func asSequence(value any) (Sequence, bool) {
	switch s := value.(type) {
	case Sequence:
		return s, true
	case []any:
		return anySlice(s), true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return nil, false
	}
	return goSlice{rv}, true
}

type anySlice []any

func (s anySlice) Len() int     { return len(s) }
func (s anySlice) At(i int) any { return s[i] }

type goSlice struct {
	rv reflect.Value
}

func (s goSlice) Len() int     { return s.rv.Len() }
func (s goSlice) At(i int) any { return s.rv.Index(i).Interface() }

// --- Foreign struct types --------------------------------------------------

// StructPattern is an instance pattern for a foreign struct type: it matches values
// of exactly this type if every given field matches its sub-pattern.
// Create one with Kw.
type StructPattern struct {
	typ      reflect.Type
	fields   []string
	patterns []any
}

// Type returns the struct type s matches.
func (s *StructPattern) Type() reflect.Type {
	return s.typ
}

func (s *StructPattern) String() string {
	var b strings.Builder
	b.WriteString(s.typ.String())
	b.WriteByte('{')
	for i, f := range s.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", f, describe(s.patterns[i]))
	}
	b.WriteByte('}')
	return b.String()
}

// Kw builds an instance pattern from a constructor and sub-patterns for some of
// its fields; every other field is bound to its own name. ctor may be a *Variant or
// the reflect.Type of a foreign struct (or pointer to struct). Kw panics with an
// *InvalidPatternUse for unknown field names or unsupported constructors.
func Kw(ctor any, named map[string]any) any {
	var pattern any
	var err error
	switch c := ctor.(type) {
	case *Variant:
		pattern, err = c.With(named)
	case reflect.Type:
		pattern, err = NewStructPattern(c, named)
	default:
		err = invalid(ctor, "%s is not a constructor", describe(ctor))
	}
	if err != nil {
		panic(err)
	}
	return pattern
}

// NewStructPattern creates a pattern for struct type typ. Exported fields missing
// from named are bound to their own name.
func NewStructPattern(typ reflect.Type, named map[string]any) (*StructPattern, error) {
	if !isStructType(typ) {
		return nil, invalid(typ, "%v is not a struct type", typ)
	}
	s := &StructPattern{typ: typ, fields: structFields(typ)}
	for name := range named {
		found := false
		for _, f := range s.fields {
			found = found || f == name
		}
		if !found {
			return nil, invalid(named, "%v has no exported field %q", typ, name)
		}
	}
	s.patterns = make([]any, len(s.fields))
	for i, f := range s.fields {
		if p, ok := named[f]; ok {
			s.patterns[i] = p
		} else {
			s.patterns[i] = Bind(f)
		}
	}
	return s, nil
}

func isStructType(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// structFields lists the exported fields of a struct type, in declaration order.
func structFields(t reflect.Type) []string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	var names []string
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.PkgPath == "" {
			names = append(names, f.Name)
		}
	}
	return names
}

// structValues returns the values of fields of a struct value of type t.
func structValues(t reflect.Type, value any, fields []string) ([]any, bool) {
	if value == nil || reflect.TypeOf(value) != t {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	values := make([]any, len(fields))
	for i, f := range fields {
		values[i] = rv.FieldByName(f).Interface()
	}
	return values, true
}
