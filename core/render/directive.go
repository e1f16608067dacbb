package render

import "strconv"

// DirectiveKind discriminates the variants of a [Directive].
type DirectiveKind int

const (
	// KindSectionHeader opens a titled group of lines, optionally with an
	// item count for sequences.
	KindSectionHeader DirectiveKind = iota
	// KindMetricLine displays a labelled numeric value.
	KindMetricLine
	// KindListLine displays a labelled bullet list of scalar items.
	KindListLine
	// KindTextLine displays a labelled text value. An empty label means a
	// bare bullet item inside a sequence section.
	KindTextLine
	// KindEmptyLine marks a field whose value was null or the empty string;
	// painters render the "Not specified" phrase.
	KindEmptyLine
)

func (k DirectiveKind) String() string {
	switch k {
	case KindSectionHeader:
		return "section_header"
	case KindMetricLine:
		return "metric_line"
	case KindListLine:
		return "list_line"
	case KindTextLine:
		return "text_line"
	case KindEmptyLine:
		return "empty_line"
	default:
		return "directive(" + strconv.Itoa(int(k)) + ")"
	}
}

// Directive is one unit of UI output, decoupled from any rendering
// technology. Directives are produced in a fixed traversal order; painters
// must preserve that order. Depth indicates nesting for indentation and
// grouping: 0 for top-level directives, 1 inside a section, 2 inside an
// "Item N" block.
type Directive struct {
	Kind  DirectiveKind
	Depth int

	// Label is the humanized key. Empty for bullet items of a sequence.
	Label string

	// Value carries the text for KindTextLine.
	Value string

	// Number carries the value for KindMetricLine. NumberText is its
	// original literal form ("5" rather than "5.000000").
	Number     float64
	NumberText string

	// Items carries the stringified elements for KindListLine.
	Items []string

	// ItemCount is the sequence length for KindSectionHeader, or -1 when
	// the section has no count (mapping sections, "Item N" blocks).
	ItemCount int
}
