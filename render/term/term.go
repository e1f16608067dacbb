package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pverdi/omniassist/core/render"
)

// Styles groups the lipgloss styles used by the painter. Zero-value styles
// render plain text, so a Styles{} painter degrades to unstyled output.
type Styles struct {
	Header    lipgloss.Style
	SubHeader lipgloss.Style
	Label     lipgloss.Style
	Metric    lipgloss.Style
	Bullet    lipgloss.Style
	Empty     lipgloss.Style
}

// DefaultStyles returns the standard color scheme.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		SubHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Label:     lipgloss.NewStyle().Bold(true),
		Metric:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Bullet:    lipgloss.NewStyle(),
		Empty:     lipgloss.NewStyle().Faint(true),
	}
}

// PlainStyles returns styles that apply no formatting, for terminals
// without color support or for piping output.
func PlainStyles() Styles {
	return Styles{}
}

// Painter writes display directives to a terminal as styled, indented
// lines.
type Painter struct {
	w      io.Writer
	styles Styles
}

// Option configures a [Painter].
type Option func(*Painter)

// WithStyles replaces the default color scheme.
func WithStyles(styles Styles) Option {
	return func(p *Painter) {
		p.styles = styles
	}
}

// NewPainter returns a painter writing to w with [DefaultStyles].
func NewPainter(w io.Writer, opts ...Option) *Painter {
	p := &Painter{
		w:      w,
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Paint writes one line per directive, indented two spaces per depth
// level. List directives additionally get one bulleted line per item.
func (p *Painter) Paint(directives []render.Directive) error {
	for _, d := range directives {
		if err := p.paintLine(d); err != nil {
			return err
		}
	}
	return nil
}

func (p *Painter) paintLine(d render.Directive) error {
	indent := strings.Repeat("  ", d.Depth)

	switch d.Kind {
	case render.KindSectionHeader:
		style := p.styles.Header
		if d.Depth > 0 {
			style = p.styles.SubHeader
		}
		label := d.Label
		if d.ItemCount >= 0 {
			label = fmt.Sprintf("%s (%d items)", d.Label, d.ItemCount)
		}
		return p.println(indent + style.Render(label))

	case render.KindMetricLine:
		return p.println(indent + p.styles.Label.Render(d.Label+":") + " " + p.styles.Metric.Render(d.NumberText))

	case render.KindListLine:
		if err := p.println(indent + p.styles.Label.Render(d.Label+":")); err != nil {
			return err
		}
		for _, item := range d.Items {
			if err := p.println(indent + "  " + p.styles.Bullet.Render("• "+item)); err != nil {
				return err
			}
		}
		return nil

	case render.KindEmptyLine:
		return p.println(indent + p.styles.Label.Render(d.Label+":") + " " + p.styles.Empty.Render(render.NotSpecifiedPhrase))

	default:
		if d.Label == "" {
			return p.println(indent + p.styles.Bullet.Render("• "+d.Value))
		}
		return p.println(indent + p.styles.Label.Render(d.Label+":") + " " + d.Value)
	}
}

func (p *Painter) println(line string) error {
	_, err := fmt.Fprintln(p.w, line)
	return err
}
