package adt

import (
	"strings"

	"github.com/npillmayer/adt/maybe"
)

// Captures is the result of a successful match: values captured by bindings, keyed
// by binding name. Names keep the order in which they have been captured, which is
// the order of Bindings(pattern). If a name is captured more than once, the last
// value wins and the name keeps its first position.
type Captures struct {
	names  []string
	values map[string]any
}

// Len returns the number of captured names.
func (c Captures) Len() int {
	return len(c.names)
}

// Names returns the captured names in capture order.
func (c Captures) Names() []string {
	return append([]string(nil), c.names...)
}

// Get returns the value captured for name.
func (c Captures) Get(name string) (any, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Value returns the value captured for name, or nil.
func (c Captures) Value(name string) any {
	return c.values[name]
}

// Lookup returns the value captured for name, if any.
func (c Captures) Lookup(name string) maybe.Maybe[any] {
	if v, ok := c.values[name]; ok {
		return maybe.Just(v)
	}
	return maybe.Nothing[any]()
}

// Map returns the captures as a fresh Go map.
func (c Captures) Map() map[string]any {
	m := make(map[string]any, len(c.names))
	for k, v := range c.values {
		m[k] = v
	}
	return m
}

func (c Captures) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range c.names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(describe(c.values[name]))
	}
	b.WriteByte('}')
	return b.String()
}

// Capture returns the value captured for name, converted to T. ok is false if
// nothing has been captured for name or the value is not a T.
func Capture[T any](c Captures, name string) (value T, ok bool) {
	x, found := c.values[name]
	if !found {
		return
	}
	value, ok = x.(T)
	return
}

func (c *Captures) put(name string, value any) {
	if name == "" {
		return
	}
	if c.values == nil {
		c.values = make(map[string]any)
	}
	if _, seen := c.values[name]; !seen {
		c.names = append(c.names, name)
	}
	c.values[name] = value
}

// project re-orders c by names, which is the frozen argument shape of a case.
func (c Captures) project(names []string) Captures {
	p := Captures{names: make([]string, 0, len(names)), values: make(map[string]any, len(names))}
	for _, name := range names {
		if v, ok := c.values[name]; ok {
			p.put(name, v)
		}
	}
	return p
}
