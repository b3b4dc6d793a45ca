// Package models wraps API reply payloads in attribute-accessible model
// values. Most models are thin projections over an XML element parsed from a
// response; attribute access is delegated to the wrapped element with a
// naming-convention bridge, so m.Get("company_name") and
// m.Get("companyName") resolve identically.
package models

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/samber/lo"

	"github.com/antagonisthq/openprovider-go/errors"
	"github.com/antagonisthq/openprovider-go/naming"
	"github.com/antagonisthq/openprovider-go/xmlutil"
)

// ErrAttributeNotFound is the sentinel behind AttributeNotFoundError,
// matchable with errors.Is.
const ErrAttributeNotFound = errors.Error("model has no such attribute")

// AttributeNotFoundError reports a failed attribute lookup, carrying the
// requested name (snake_cased for readability) and the names that would have
// resolved.
type AttributeNotFoundError struct {
	Name  string
	Known []string
}

func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("model has no attribute %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

func (e *AttributeNotFoundError) Unwrap() error {
	return ErrAttributeNotFound
}

// Model is the superclass for all models. It delegates attribute access to a
// wrapped XML element, with override attributes supplied at construction
// taking precedence over the element's contents. The wrapped element stays
// owned by whoever parsed it; Model never mutates it.
type Model struct {
	elem   *etree.Element
	attrs  map[string]any
	fields []string
}

// New wraps elem, which may be nil for a purely attribute-backed model.
// Override keys may be given in either snake_case or camelCase; they are
// stored camelCased, matching the wire convention.
func New(elem *etree.Element, overrides map[string]any) *Model {
	m := &Model{elem: elem, attrs: make(map[string]any, len(overrides))}
	for k, v := range overrides {
		m.attrs[naming.SnakeToCamel(k)] = v
	}
	return m
}

// declare records the schema's documented attribute names, in snake_case.
// They feed enumeration and lookup diagnostics only; lookup itself stays
// dynamic.
func (m *Model) declare(fields ...string) {
	m.fields = append(m.fields, fields...)
}

// Get resolves a logical attribute name. A snake_case name is converted to
// camelCase first, then tried against the overrides and finally against the
// wrapped element, as an XML attribute or a child element (returned as its
// text). A name that resolves nowhere yields an *AttributeNotFoundError.
func (m *Model) Get(name string) (any, error) {
	key := name
	if strings.Contains(key, "_") {
		key = naming.SnakeToCamel(key)
	}

	if v, ok := m.attrs[key]; ok {
		return v, nil
	}

	if m.elem != nil {
		if attr := m.elem.SelectAttr(key); attr != nil {
			return attr.Value, nil
		}
		if child := m.elem.SelectElement(key); child != nil {
			return child.Text(), nil
		}
	}

	return nil, &AttributeNotFoundError{
		Name:  naming.CamelToSnake(key),
		Known: m.Attributes(),
	}
}

// GetString resolves name and renders the value as text.
func (m *Model) GetString(name string) (string, error) {
	v, err := m.Get(name)
	if err != nil {
		return "", err
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprintf("%v", v), nil
}

// Has reports whether name resolves via any tier of the lookup chain.
func (m *Model) Has(name string) bool {
	_, err := m.Get(name)
	return err == nil
}

// Attributes reports the model's attribute surface in snake_case: the
// schema's declared fields, the override keys and the wrapped element's
// immediate children, deduped and sorted. Names with the private underscore
// prefix are omitted.
func (m *Model) Attributes() []string {
	names := append([]string(nil), m.fields...)
	names = append(names, lo.Map(lo.Keys(m.attrs), func(k string, _ int) string {
		return naming.CamelToSnake(k)
	})...)
	if m.elem != nil {
		names = append(names, lo.Map(m.elem.ChildElements(), func(c *etree.Element, _ int) string {
			return naming.CamelToSnake(c.Tag)
		})...)
	}

	names = lo.Uniq(lo.Filter(names, func(n string, _ int) bool {
		return !strings.HasPrefix(n, "_")
	}))
	sort.Strings(names)
	return names
}

// Elem returns the wrapped element, or nil if the model wraps none.
func (m *Model) Elem() *etree.Element {
	return m.elem
}

// Dump writes an indented rendering of the wrapped element to w.
func (m *Model) Dump(w io.Writer) {
	xmlutil.Dump(w, m.elem)
}

// submodel builds a child model around the named child of m's element. The
// child is looked up fresh on every call, so replacing it in the underlying
// tree is visible on the next access. An absent child yields a model
// wrapping no element; its attribute lookups fail with AttributeNotFound.
func submodel[T any](m *Model, key string, ctor func(*etree.Element) *T) *T {
	if m.elem == nil {
		return ctor(nil)
	}
	return ctor(m.elem.SelectElement(key))
}
