package eval

import (
	"fmt"
	"slices"
	"strings"
)

// Context maps names to values. Lookups fall back to the parent scope.
type Context struct {
	parent *Context
	values map[string]Value
}

func NewContext() *Context {
	return newContext(nil)
}

func newContext(parent *Context) *Context {
	return &Context{
		parent: parent,
		values: make(map[string]Value),
	}
}

func (c *Context) String() string {
	var b strings.Builder
	b.WriteString("{")
	for _, name := range c.Names() {
		b.WriteString(fmt.Sprintf(" %s:%v", name, c.values[name]))
	}
	b.WriteString(" }")
	if c.parent != nil {
		b.WriteString("\n\t&")
		b.WriteString(c.parent.String())
	}
	return b.String()
}

func (c *Context) Get(name string) (Value, bool) {
	if v, ok := c.values[name]; ok {
		return v, true
	}
	if c.parent != nil {
		return c.parent.Get(name)
	}
	return nil, false
}

// Set binds name in this scope, shadowing any outer binding.
func (c *Context) Set(name string, v Value) {
	c.values[name] = v
}

// Names lists the names bound in this scope.
func (c *Context) Names() []string {
	names := make([]string, 0, len(c.values))
	for name := range c.values {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
