// Package render maps a structured [extract.Value] tree onto an ordered
// sequence of display directives.
//
// A [Directive] describes one unit of UI output (section header, metric,
// list, text line, empty line) without committing to a rendering technology;
// painters in render/term and render/web turn the same sequence into
// terminal text or HTML widgets.
//
// [Render] expands the top-level mapping and one nested level, matching the
// expandable-widget layout of the assistant UI. It is a pure function and
// signals [ErrInvalidShape] when the top-level value is not a mapping.
package render
