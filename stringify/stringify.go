// Package stringify renders arbitrary Go values as short, human-readable
// text for diagnostics: assertion failures, CLI output and log attributes.
//
// The format is close to a literal: strings are quoted, floats always show a
// decimal point or exponent, containers use [] and {}, and map keys appear in
// natural order so output is stable.
package stringify

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"facette.io/natsort"
)

const recursionMarker = "*RECURSION*"

var (
	stringerType = reflect.TypeFor[fmt.Stringer]()
	errorType    = reflect.TypeFor[error]()
)

type options struct {
	pretty bool
	indent string
}

// Option configures Value.
type Option func(*options)

// WithPretty renders nested containers one element per line, each level
// indented by indent.
func WithPretty(indent string) Option {
	return func(o *options) {
		o.pretty = true
		o.indent = indent
	}
}

// Value renders v. A pointer, map or slice that is reached again while it is
// still being rendered is shown as *RECURSION*.
func Value(v any, opts ...Option) string {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	r := &renderer{opts: o, visiting: make(map[visitKey]bool)}

	return r.render(reflect.ValueOf(v), 0)
}

// Float renders f the way Value does.
func Float(f float64) string {
	return formatFloat(f, 64)
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}

	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}

	return s
}

type visitKey struct {
	ptr  uintptr
	kind reflect.Kind
	len  int
}

type renderer struct {
	opts     options
	visiting map[visitKey]bool
}

func (r *renderer) render(rv reflect.Value, depth int) string {
	if !rv.IsValid() {
		return "null"
	}

	if s, ok := r.viaMethod(rv); ok {
		return s
	}

	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()

		return "(" + Float(real(c)) + ", " + Float(imag(c)) + "i)"
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Interface:
		return r.render(rv.Elem(), depth)
	case reflect.Pointer:
		if rv.IsNil() {
			return "null"
		}

		return r.guard(rv, func() string { return r.render(rv.Elem(), depth) })
	case reflect.Slice:
		if rv.IsNil() {
			return "[]"
		}

		return r.guard(rv, func() string { return r.list(rv, depth) })
	case reflect.Array:
		return r.list(rv, depth)
	case reflect.Map:
		if rv.IsNil() {
			return "{}"
		}

		return r.guard(rv, func() string { return r.mapping(rv, depth) })
	case reflect.Struct:
		return r.structure(rv, depth)
	default:
		return "<" + rv.Type().String() + ">"
	}
}

// viaMethod uses Error or String when the value provides one.
func (r *renderer) viaMethod(rv reflect.Value) (string, bool) {
	if !rv.CanInterface() {
		return "", false
	}

	if rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
	}

	switch {
	case rv.Type().Implements(errorType):
		return rv.Interface().(error).Error(), true //nolint:forcetypeassert
	case rv.Type().Implements(stringerType):
		return rv.Interface().(fmt.Stringer).String(), true //nolint:forcetypeassert
	default:
		return "", false
	}
}

func (r *renderer) guard(rv reflect.Value, fn func() string) string {
	key := visitKey{ptr: rv.Pointer(), kind: rv.Kind()}
	if rv.Kind() == reflect.Slice {
		key.len = rv.Len()
	}

	if r.visiting[key] {
		return recursionMarker
	}

	r.visiting[key] = true
	defer delete(r.visiting, key)

	return fn()
}

func (r *renderer) list(rv reflect.Value, depth int) string {
	items := make([]string, rv.Len())
	for i := range items {
		items[i] = r.render(rv.Index(i), depth+1)
	}

	return r.join("[", "]", items, depth)
}

type entry struct {
	key, value string
}

// mapping orders entries by rendered key. Distinct keys may render alike
// (several NaN keys, say), so each entry is kept and ties order by value.
func (r *renderer) mapping(rv reflect.Value, depth int) string {
	entries := make([]entry, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{
			key:   r.render(iter.Key(), depth+1),
			value: r.render(iter.Value(), depth+1),
		})
	}

	slices.SortFunc(entries, func(a, b entry) int {
		return cmp.Or(natural(a.key, b.key), natural(a.value, b.value))
	})

	items := make([]string, len(entries))
	for i, e := range entries {
		items[i] = e.key + ": " + e.value
	}

	return r.join("{", "}", items, depth)
}

// natural is a three-way natsort. natsort.Compare reports true both ways for
// strings it considers equal, so those fall back to byte order.
func natural(a, b string) int {
	if a == b {
		return 0
	}

	less, greater := natsort.Compare(a, b), natsort.Compare(b, a)
	if less != greater {
		if less {
			return -1
		}

		return 1
	}

	return strings.Compare(a, b)
}

func (r *renderer) structure(rv reflect.Value, depth int) string {
	typ := rv.Type()

	name := typ.Name()
	if name == "" {
		name = "struct"
	}

	items := make([]string, 0, typ.NumField())

	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		items = append(items, field.Name+": "+r.render(rv.Field(i), depth+1))
	}

	return name + r.join("{", "}", items, depth)
}

func (r *renderer) join(open, closing string, items []string, depth int) string {
	if len(items) == 0 {
		return open + closing
	}

	if !r.opts.pretty {
		return open + strings.Join(items, ", ") + closing
	}

	inner := strings.Repeat(r.opts.indent, depth+1)
	outer := strings.Repeat(r.opts.indent, depth)

	var sb strings.Builder

	sb.WriteString(open)
	sb.WriteString("\n")

	for i, item := range items {
		sb.WriteString(inner)
		sb.WriteString(item)

		if i < len(items)-1 {
			sb.WriteString(",")
		}

		sb.WriteString("\n")
	}

	sb.WriteString(outer)
	sb.WriteString(closing)

	return sb.String()
}
