package term

import (
	"strings"
	"testing"

	"github.com/pverdi/omniassist/core/extract"
	"github.com/pverdi/omniassist/core/render"
)

func paintPlain(t *testing.T, directives []render.Directive) []string {
	t.Helper()
	var buf strings.Builder
	p := NewPainter(&buf, WithStyles(PlainStyles()))
	if err := p.Paint(directives); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	out := strings.TrimRight(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestPaint_PlanExample(t *testing.T) {
	value, err := extract.Extract(`{"plan":{"steps":["pack","go"],"duration":5}}`)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	directives, err := render.Render(value)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := paintPlain(t, directives)

	want := []string{
		"Plan",
		"  Steps (2 items)",
		"    • pack",
		"    • go",
		"  Duration: 5",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestPaint_DirectiveKinds(t *testing.T) {
	tests := []struct {
		name      string
		directive render.Directive
		want      []string
	}{
		{
			name:      "labeled text",
			directive: render.Directive{Kind: render.KindTextLine, Label: "Owner", Value: "alice"},
			want:      []string{"Owner: alice"},
		},
		{
			name:      "unlabeled bullet",
			directive: render.Directive{Kind: render.KindTextLine, Depth: 1, Value: "draft"},
			want:      []string{"  • draft"},
		},
		{
			name:      "metric",
			directive: render.Directive{Kind: render.KindMetricLine, Label: "Score", Number: 9.5, NumberText: "9.5"},
			want:      []string{"Score: 9.5"},
		},
		{
			name:      "list",
			directive: render.Directive{Kind: render.KindListLine, Depth: 2, Label: "Tags", Items: []string{"a", "b"}},
			want:      []string{"    Tags:", "      • a", "      • b"},
		},
		{
			name:      "empty",
			directive: render.Directive{Kind: render.KindEmptyLine, Label: "Notes"},
			want:      []string{"Notes: Not specified"},
		},
		{
			name:      "header without count",
			directive: render.Directive{Kind: render.KindSectionHeader, Label: "Summary", ItemCount: -1},
			want:      []string{"Summary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := paintPlain(t, []render.Directive{tt.directive})
			if len(lines) != len(tt.want) {
				t.Fatalf("got lines %q, want %q", lines, tt.want)
			}
			for i := range tt.want {
				if lines[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, lines[i], tt.want[i])
				}
			}
		})
	}
}

func TestPaint_Empty(t *testing.T) {
	var buf strings.Builder
	p := NewPainter(&buf)
	if err := p.Paint(nil); err != nil {
		t.Fatalf("Paint(nil) error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}
