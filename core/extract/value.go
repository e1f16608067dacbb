package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the variants of a [Value].
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindMapping
	KindSequence
)

// String returns a short name for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is an immutable tagged union over the shapes a completion provider
// can return once interpreted as JSON: null, bool, number, string, mapping,
// or sequence. Mappings preserve the key order encountered in the source
// text, which the renderer relies on for deterministic traversal.
//
// The zero Value is the null value.
type Value struct {
	kind    Kind
	boolVal bool
	numVal  float64
	numRaw  string // original literal, e.g. "5" rather than "5.000000"
	strVal  string
	entries []Entry
	items   []Value
}

// Entry is a single key/value pair of a mapping, in encounter order.
type Entry struct {
	Key   string
	Value Value
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// NewBool returns a boolean value.
func NewBool(b bool) Value { return Value{kind: KindBool, boolVal: b} }

// NewNumber returns a numeric value. The display form is derived from f with
// the shortest representation that round-trips (5 renders as "5").
func NewNumber(f float64) Value {
	return Value{kind: KindNumber, numVal: f, numRaw: strconv.FormatFloat(f, 'f', -1, 64)}
}

// NewString returns a string value.
func NewString(s string) Value { return Value{kind: KindString, strVal: s} }

// NewMapping returns a mapping value preserving the order of entries.
// The entries slice is copied; later mutation of the argument does not
// affect the returned value.
func NewMapping(entries ...Entry) Value {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return Value{kind: KindMapping, entries: out}
}

// NewSequence returns a sequence value. The items slice is copied.
func NewSequence(items ...Value) Value {
	out := make([]Value, len(items))
	copy(out, items)
	return Value{kind: KindSequence, items: out}
}

// Kind reports which variant this value holds.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload. Valid only when Kind is KindBool.
func (v Value) Bool() bool { return v.boolVal }

// Number returns the numeric payload. Valid only when Kind is KindNumber.
func (v Value) Number() float64 { return v.numVal }

// Text returns the string payload. Valid only when Kind is KindString.
func (v Value) Text() string { return v.strVal }

// Entries returns a copy of the mapping entries in encounter order.
// Returns nil for non-mapping values.
func (v Value) Entries() []Entry {
	if v.kind != KindMapping || len(v.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Items returns a copy of the sequence items. Returns nil for non-sequence
// values.
func (v Value) Items() []Value {
	if v.kind != KindSequence || len(v.items) == 0 {
		return nil
	}
	out := make([]Value, len(v.items))
	copy(out, v.items)
	return out
}

// Len returns the number of entries of a mapping or items of a sequence,
// and 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindMapping:
		return len(v.entries)
	case KindSequence:
		return len(v.items)
	default:
		return 0
	}
}

// IsEmptyScalar reports whether the value is null or the empty string, the
// two shapes the renderer surfaces as "Not specified".
func (v Value) IsEmptyScalar() bool {
	return v.kind == KindNull || (v.kind == KindString && v.strVal == "")
}

// String renders a generic display form: scalars as their literal text and
// containers as compact JSON. It implements fmt.Stringer.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.boolVal)
	case KindNumber:
		return v.numRaw
	case KindString:
		return v.strVal
	default:
		b, err := v.MarshalJSON()
		if err != nil {
			return v.kind.String()
		}
		return string(b)
	}
}

// MarshalJSON re-emits the value as JSON, preserving mapping key order.
// It implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) writeJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.boolVal))
	case KindNumber:
		if v.numRaw != "" {
			buf.WriteString(v.numRaw)
		} else {
			buf.WriteString(strconv.FormatFloat(v.numVal, 'f', -1, 64))
		}
	case KindString:
		b, err := json.Marshal(v.strVal)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindMapping:
		buf.WriteByte('{')
		for i, e := range v.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(e.Key)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := e.Value.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case KindSequence:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return fmt.Errorf("cannot marshal value of %s", v.kind)
	}
	return nil
}

// UnmarshalJSON decodes a JSON value, preserving mapping key order.
// It implements json.Unmarshaler, so values survive a marshal round-trip
// through stores that persist them as JSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := parseStrict(string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Indent re-emits the value as indented JSON, preserving mapping key order.
// Used for on-screen raw views and file export.
func (v Value) Indent(prefix, indent string) (string, error) {
	compact, err := v.MarshalJSON()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, prefix, indent); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// decodeValue consumes exactly one JSON value from dec, preserving mapping
// key order. The decoder must be configured with UseNumber.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q: %w", t.String(), err)
		}
		return Value{kind: KindNumber, numVal: f, numRaw: t.String()}, nil
	case json.Delim:
		switch t {
		case '{':
			var entries []Entry
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("unexpected mapping key token %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				entries = append(entries, Entry{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Value{}, err
			}
			return Value{kind: KindMapping, entries: entries}, nil
		case '[':
			var items []Value
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Value{}, err
			}
			return Value{kind: KindSequence, items: items}, nil
		}
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

// parseStrict parses text as a single complete JSON value. Trailing
// non-whitespace content is an error, which is what makes the fast path of
// [Extract] strict.
func parseStrict(text string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if dec.More() {
		return Value{}, fmt.Errorf("trailing content after JSON value")
	}
	return v, nil
}
