package env

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Kind is the JSON type of a looked-up value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a value found in a Document.
type Value struct {
	Kind Kind
	text string
}

// IsScalar reports whether the value can be substituted into text.
func (v Value) IsScalar() bool {
	return v.Kind != KindObject && v.Kind != KindArray
}

// String returns the textual form used for substitution. Strings are
// unquoted, numbers keep the form they were written in, null is "null".
func (v Value) String() string {
	return v.text
}

// Document is the parsed key/value data of one environment.
type Document struct {
	name string
	raw  []byte
	root gjson.Result
}

func newDocument(name string, raw []byte) *Document {
	return &Document{
		name: name,
		raw:  raw,
		root: gjson.ParseBytes(raw),
	}
}

// Name is the logical name of the environment the document came from.
func (d *Document) Name() string {
	return d.name
}

// JSON returns the document as compact JSON.
func (d *Document) JSON() []byte {
	return d.raw
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	var keys []string
	d.root.ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

// Lookup resolves a key path given as segments. Numeric segments index into
// arrays. Segments must already be validated by the caller; they are joined
// into a plain gjson path with no wildcards or modifiers.
func (d *Document) Lookup(path []string) (Value, bool) {
	if len(path) == 0 {
		return Value{}, false
	}
	for _, seg := range path {
		if seg == "" || strings.ContainsAny(seg, `.*?|#@\!=<>%"`) {
			return Value{}, false
		}
	}

	result := d.root.Get(strings.Join(path, "."))
	if !result.Exists() {
		return Value{}, false
	}
	return valueOf(result), true
}

func valueOf(r gjson.Result) Value {
	switch r.Type {
	case gjson.String:
		return Value{Kind: KindString, text: r.String()}
	case gjson.Number:
		return Value{Kind: KindNumber, text: r.Raw}
	case gjson.True, gjson.False:
		return Value{Kind: KindBool, text: r.Raw}
	case gjson.Null:
		return Value{Kind: KindNull, text: "null"}
	default:
		if r.IsArray() {
			return Value{Kind: KindArray, text: r.Raw}
		}
		return Value{Kind: KindObject, text: r.Raw}
	}
}
