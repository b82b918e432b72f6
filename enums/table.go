// Package enums turns raw numeric metafile fields into symbolic text.
//
// Every lookup is pure and table driven. Values without a mapping are never
// an error: they render as the raw number with no symbolic suffix.
package enums

import (
	"fmt"
	"slices"
)

// Formatter renders a raw field value as display text.
type Formatter interface {
	Format(v uint32) string
}

// FormatFunc adapts a plain function to the Formatter interface.
type FormatFunc func(v uint32) string

// Format calls f(v).
func (f FormatFunc) Format(v uint32) string { return f(v) }

// Table maps the values of one field role to symbolic names.
type Table struct {
	Name   string
	Hex    bool // raw value shown as 0x%08X instead of decimal
	Signed bool // raw value is a signed 32-bit quantity
	Labels map[uint32]string
}

// Label returns the symbolic name for v.
func (t *Table) Label(v uint32) (string, bool) {
	l, ok := t.Labels[v]
	return l, ok && l != ""
}

// Raw renders v the way the table displays raw values.
func (t *Table) Raw(v uint32) string {
	switch {
	case t.Hex:
		return fmt.Sprintf("0x%08X", v)
	case t.Signed:
		return fmt.Sprintf("%d", int32(v))
	default:
		return fmt.Sprintf("%d", v)
	}
}

// Format renders v as "raw  LABEL", or just the raw value when unmapped.
func (t *Table) Format(v uint32) string {
	if l, ok := t.Label(v); ok {
		return t.Raw(v) + "  " + l
	}
	return t.Raw(v)
}

// Values returns the mapped values in ascending order.
func (t *Table) Values() []uint32 {
	vals := make([]uint32, 0, len(t.Labels))
	for v := range t.Labels {
		vals = append(vals, v)
	}
	slices.Sort(vals)
	return vals
}

// Hex renders an enumerated value that has no textual mapping.
func Hex(v uint32) string {
	return fmt.Sprintf("%08X", v)
}

var registry []*Table

func register(t *Table) *Table {
	registry = append(registry, t)
	return t
}

// Tables returns every registered table, in registration order.
func Tables() []*Table {
	return slices.Clone(registry)
}

// Lookup finds a table by name.
func Lookup(name string) *Table {
	for _, t := range registry {
		if t.Name == name {
			return t
		}
	}
	return nil
}
