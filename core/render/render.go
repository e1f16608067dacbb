package render

import (
	"errors"
	"fmt"

	"github.com/pverdi/omniassist/core/extract"
)

// ErrInvalidShape is returned when the top-level value is not a mapping.
// No directives are produced in that case; the host decides what to show.
var ErrInvalidShape = errors.New("top-level value is not a mapping")

// YesPhrase and NoPhrase are the display forms for boolean fields.
const (
	YesPhrase = "Yes"
	NoPhrase  = "No"
)

// NotSpecifiedPhrase is what painters emit for [KindEmptyLine] directives.
const NotSpecifiedPhrase = "Not specified"

// Render converts a structured value into an ordered sequence of display
// directives. It is a pure function: the input is never mutated and the same
// value always yields the same directive sequence.
//
// The top-level value must be a mapping; any other shape returns
// [ErrInvalidShape] and zero directives. Traversal expands the top level and
// one nested level; anything deeper is stringified generically.
func Render(v extract.Value) ([]Directive, error) {
	if v.Kind() != extract.KindMapping {
		return nil, fmt.Errorf("got %s: %w", v.Kind(), ErrInvalidShape)
	}

	var out []Directive
	for _, entry := range v.Entries() {
		label := Humanize(entry.Key)

		switch entry.Value.Kind() {
		case extract.KindMapping:
			out = append(out, Directive{
				Kind:      KindSectionHeader,
				Depth:     0,
				Label:     label,
				ItemCount: -1,
			})
			for _, sub := range entry.Value.Entries() {
				out = append(out, renderNested(sub.Key, sub.Value)...)
			}

		case extract.KindSequence:
			items := entry.Value.Items()
			out = append(out, Directive{
				Kind:      KindSectionHeader,
				Depth:     0,
				Label:     label,
				ItemCount: len(items),
			})
			for i, item := range items {
				if item.Kind() == extract.KindMapping {
					out = append(out, Directive{
						Kind:      KindSectionHeader,
						Depth:     1,
						Label:     fmt.Sprintf("Item %d", i+1),
						ItemCount: -1,
					})
					for _, sub := range item.Entries() {
						out = append(out, renderItem(sub.Key, sub.Value, 2))
					}
				} else {
					out = append(out, Directive{
						Kind:  KindTextLine,
						Depth: 1,
						Value: item.String(),
					})
				}
			}

		default:
			out = append(out, renderItem(entry.Key, entry.Value, 0))
		}
	}

	return out, nil
}

// renderNested maps one entry of a nested mapping section. Sequences at this
// level still get their own counted sub-header with bullet lines; everything
// else collapses to a single directive via renderItem. This is the last
// level of structural expansion.
func renderNested(key string, v extract.Value) []Directive {
	if v.Kind() != extract.KindSequence {
		return []Directive{renderItem(key, v, 1)}
	}

	items := v.Items()
	out := make([]Directive, 0, len(items)+1)
	out = append(out, Directive{
		Kind:      KindSectionHeader,
		Depth:     1,
		Label:     Humanize(key),
		ItemCount: len(items),
	})
	for _, item := range items {
		out = append(out, Directive{
			Kind:  KindTextLine,
			Depth: 2,
			Value: item.String(),
		})
	}
	return out
}

// renderItem maps a single key/value pair to one directive, choosing the
// directive kind by value shape. Mappings and sequences reaching this depth
// are not expanded further.
func renderItem(key string, v extract.Value, depth int) Directive {
	label := Humanize(key)

	switch v.Kind() {
	case extract.KindBool:
		phrase := NoPhrase
		if v.Bool() {
			phrase = YesPhrase
		}
		return Directive{Kind: KindTextLine, Depth: depth, Label: label, Value: phrase}

	case extract.KindNumber:
		return Directive{
			Kind:       KindMetricLine,
			Depth:      depth,
			Label:      label,
			Number:     v.Number(),
			NumberText: v.String(),
		}

	case extract.KindSequence:
		items := v.Items()
		strs := make([]string, len(items))
		for i, item := range items {
			strs[i] = item.String()
		}
		return Directive{Kind: KindListLine, Depth: depth, Label: label, Items: strs}

	default:
		if v.IsEmptyScalar() {
			return Directive{Kind: KindEmptyLine, Depth: depth, Label: label}
		}
		// Strings render literally; deeper mappings fall back to generic
		// stringification rather than further expansion.
		return Directive{Kind: KindTextLine, Depth: depth, Label: label, Value: v.String()}
	}
}
