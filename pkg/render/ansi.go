package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/walteh/minimark/pkg/component"
	"gitlab.com/tozd/go/errors"
)

// ANSI writes root to w with colors suited to w's terminal.
func ANSI(w io.Writer, root *component.Component) error {
	return ANSIWithRenderer(w, lipgloss.NewRenderer(w), root)
}

// ANSIWithRenderer is ANSI with an explicit lipgloss renderer, so callers can pin the
// color profile.
func ANSIWithRenderer(w io.Writer, r *lipgloss.Renderer, root *component.Component) error {
	var sb strings.Builder

	for _, seg := range merge(Segments(root)) {
		if seg.Color == "" {
			sb.WriteString(seg.Text)
			continue
		}
		sb.WriteString(r.NewStyle().Foreground(lipgloss.Color(seg.Color)).Render(seg.Text))
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Errorf("writing rendered markup: %w", err)
	}
	return nil
}

// merge joins neighbouring segments of the same color.
func merge(segments []Segment) []Segment {
	var out []Segment
	for _, seg := range segments {
		if n := len(out); n > 0 && out[n-1].Color == seg.Color {
			out[n-1].Text += seg.Text
			continue
		}
		out = append(out, seg)
	}
	return out
}
