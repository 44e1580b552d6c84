package render

import (
	"fmt"
	"strconv"

	"github.com/graphport/graphport/pkg/errors"
)

// Store is the per-element attribute source consumed during attribute
// resolution. graph.VertexSeq and graph.EdgeSeq satisfy it.
type Store interface {
	AttrValues(name string) ([]any, bool)
}

type attrKind int

const (
	attrUnset attrKind = iota
	attrLiteral
	attrRef
	attrSeq
	attrOff
)

// Attr is a drawing parameter: a literal value applied to every element, a
// reference to a named per-element attribute, or an explicit per-element
// sequence. The zero value means "unset" and resolves through the property's
// documented default chain.
type Attr struct {
	kind    attrKind
	literal any
	name    string
	values  []any
}

// Lit returns an Attr holding a single literal applied to every element.
func Lit(v any) Attr { return Attr{kind: attrLiteral, literal: v} }

// Ref returns an Attr naming a per-element attribute to look up.
func Ref(name string) Attr { return Attr{kind: attrRef, name: name} }

// Seq returns an Attr holding one value per element.
func Seq(values ...any) Attr { return Attr{kind: attrSeq, values: values} }

// Off returns an Attr that disables the property entirely. Only meaningful
// for labels, where it resolves every element to the empty string.
func Off() Attr { return Attr{kind: attrOff} }

// IsOff reports whether the Attr explicitly disables its property.
func (a Attr) IsOff() bool { return a.kind == attrOff }

// Converter normalizes one resolved scalar into the representation the
// drawing surface expects.
type Converter func(any) (any, error)

// DefaultFunc produces a per-element default value. Properties whose
// documented fallback depends on the element index (vertex labels default to
// the 1-based ordinal) pass a DefaultFunc as the default.
type DefaultFunc func(i int) any

// Resolve turns a drawing parameter into one concrete value per element.
//
// The fallback policy, applied in order and identically for every drawable
// property:
//
//  1. An explicit sequence is used as-is, truncated to count if longer and
//     padded with the default if shorter.
//  2. A name that exists as an attribute in store yields the attribute's
//     per-element values.
//  3. Otherwise every position is filled with def.
//
// After resolution conv is applied to each scalar; positions holding nil
// (sparse attribute values) are replaced with the default before
// conversion. A nil conv passes values through unchanged.
func Resolve(count int, a Attr, store Store, def any, conv Converter) ([]any, error) {
	out := make([]any, count)

	fill := func(i int) any {
		if f, ok := def.(DefaultFunc); ok {
			return f(i)
		}
		return def
	}

	switch a.kind {
	case attrSeq:
		for i := range out {
			if i < len(a.values) && a.values[i] != nil {
				out[i] = a.values[i]
			} else {
				out[i] = fill(i)
			}
		}
	case attrLiteral:
		for i := range out {
			out[i] = a.literal
		}
	case attrRef:
		if vals, ok := store.AttrValues(a.name); ok {
			for i := range out {
				if i < len(vals) && vals[i] != nil {
					out[i] = vals[i]
				} else {
					out[i] = fill(i)
				}
			}
			break
		}
		fallthrough
	default:
		for i := range out {
			out[i] = fill(i)
		}
	}

	if conv == nil {
		return out, nil
	}
	for i, v := range out {
		c, err := conv(v)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeValidation, err, "element %d", i)
		}
		out[i] = c
	}
	return out, nil
}

// AsFloat coerces numeric scalars (and numeric strings) to float64.
func AsFloat(v any) (any, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", x)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to float", v)
	}
}

// AsInt coerces numeric scalars to int. Used for shape codes.
func AsInt(v any) (any, error) {
	f, err := AsFloat(v)
	if err != nil {
		return nil, err
	}
	return int(f.(float64)), nil
}

// AsString coerces any scalar to its string form.
func AsString(v any) (any, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func resolveFloats(count int, a Attr, store Store, def float64) ([]float64, error) {
	vals, err := Resolve(count, a, store, def, AsFloat)
	if err != nil {
		return nil, err
	}
	out := make([]float64, count)
	for i, v := range vals {
		out[i] = v.(float64)
	}
	return out, nil
}

func resolveInts(count int, a Attr, store Store, def int) ([]int, error) {
	vals, err := Resolve(count, a, store, def, AsInt)
	if err != nil {
		return nil, err
	}
	out := make([]int, count)
	for i, v := range vals {
		out[i] = v.(int)
	}
	return out, nil
}

func resolveStrings(count int, a Attr, store Store, def any) ([]string, error) {
	vals, err := Resolve(count, a, store, def, AsString)
	if err != nil {
		return nil, err
	}
	out := make([]string, count)
	for i, v := range vals {
		out[i] = v.(string)
	}
	return out, nil
}
