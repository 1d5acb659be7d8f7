// Package presentation renders values in failure messages.
package presentation

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/scenarigo/verify/config"
)

// Unquoted is a string rendered as is, without quotes.
type Unquoted string

// Representation formats values for failure messages.
type Representation struct {
	maxElements     int
	maxStringLength int
}

// Standard returns the representation configured by the defaults.
func Standard() Representation {
	return New(config.Default())
}

// New returns a representation following cfg.
func New(cfg *config.Config) Representation {
	if cfg == nil {
		cfg = config.Default()
	}
	return Representation{
		maxElements:     cfg.MaxElementsForPrinting,
		maxStringLength: cfg.MaxStringLength,
	}
}

// Format returns the string representation of v.
func (r Representation) Format(v any) string {
	var b strings.Builder
	r.format(&b, v, 0)
	return b.String()
}

const maxDepth = 8

func (r Representation) format(b *strings.Builder, v any, depth int) {
	if v == nil {
		b.WriteString("nil")
		return
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		fmt.Fprintf(b, "(%T)(nil)", v)
		return
	}
	switch v := v.(type) {
	case Unquoted:
		b.WriteString(string(v))
		return
	case string:
		b.WriteString(strconv.Quote(r.truncate(v)))
		return
	case time.Time:
		b.WriteString(v.Format(time.RFC3339Nano))
		return
	case time.Duration:
		b.WriteString(v.String())
		return
	case error:
		b.WriteString(strconv.Quote(r.truncate(v.Error())))
		return
	case fmt.Stringer:
		b.WriteString(v.String())
		return
	}
	rv := reflect.ValueOf(v)
	if depth > maxDepth {
		fmt.Fprintf(b, "%T{...}", v)
		return
	}
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			b.WriteString("nil")
			return
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			fmt.Fprintf(b, "%v", rv.Bytes())
			return
		}
		r.formatArray(b, rv, depth)
	case reflect.Array:
		r.formatArray(b, rv, depth)
	case reflect.Map:
		if rv.IsNil() {
			b.WriteString("nil")
			return
		}
		r.formatMap(b, rv, depth)
	case reflect.Pointer:
		b.WriteString("&")
		r.format(b, rv.Elem().Interface(), depth+1)
	case reflect.Float32, reflect.Float64:
		b.WriteString(strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits()))
	case reflect.Struct:
		fmt.Fprintf(b, "%+v", v)
	default:
		fmt.Fprintf(b, "%v", v)
	}
}

func (r Representation) formatArray(b *strings.Builder, rv reflect.Value, depth int) {
	b.WriteString("[")
	n := rv.Len()
	for i := range n {
		if r.maxElements > 0 && i >= r.maxElements {
			b.WriteString(", ...")
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		r.format(b, interfaceOf(rv.Index(i)), depth+1)
	}
	b.WriteString("]")
}

func (r Representation) formatMap(b *strings.Builder, rv reflect.Value, depth int) {
	type entry struct {
		key   string
		value reflect.Value
	}
	entries := make([]entry, 0, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		entries = append(entries, entry{
			key:   r.Format(interfaceOf(it.Key())),
			value: it.Value(),
		})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.key, b.key)
	})
	b.WriteString("{")
	for i, e := range entries {
		if r.maxElements > 0 && i >= r.maxElements {
			b.WriteString(", ...")
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.key)
		b.WriteString(": ")
		r.format(b, interfaceOf(e.value), depth+1)
	}
	b.WriteString("}")
}

func (r Representation) truncate(s string) string {
	if r.maxStringLength <= 0 {
		return s
	}
	rs := []rune(s)
	if len(rs) <= r.maxStringLength {
		return s
	}
	return string(rs[:r.maxStringLength]) + "..."
}

func interfaceOf(v reflect.Value) any {
	if !v.CanInterface() {
		return Unquoted(fmt.Sprintf("%v", v))
	}
	return v.Interface()
}
