// Package render turns a component tree into colored terminal output.
package render

import (
	"bufio"
	"strings"

	"github.com/apparentlymart/go-textseg/v13/textseg"
	"github.com/walteh/minimark/pkg/component"
	"github.com/walteh/minimark/pkg/playerid"
	"github.com/walteh/minimark/pkg/tag/standard"
)

// Segment is one grapheme cluster (or one uncolored run) with its color. Color is empty
// for text outside any placement.
type Segment struct {
	Text  string
	Color string
}

// placementScope tracks how far the walk is into one placement component's text.
type placementScope struct {
	fn     component.PlacementFunc
	total  int
	index  int
	parent *placementScope
}

func (s *placementScope) advance() {
	for ; s != nil; s = s.parent {
		s.index++
	}
}

// Graphemes splits s into user-perceived characters.
func Graphemes(s string) []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(s))
	sc.Buffer(make([]byte, 0, len(s)+1), len(s)+1)
	sc.Split(textseg.ScanGraphemeClusters)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out
}

// Segments walks the tree depth first. Every component with a placement function is
// sampled once per grapheme of its subtree at index/total. A nested placement colors its
// own subtree while the outer one keeps counting, so the outer gradient resumes where it
// would have been.
func Segments(root *component.Component) []Segment {
	var out []Segment
	walk(root, nil, &out)
	return out
}

func walk(c *component.Component, scope *placementScope, out *[]Segment) {
	if fn := c.Placement(); fn != nil {
		scope = &placementScope{fn: fn, total: len(Graphemes(displayText(c))), parent: scope}
	}

	if text := ownText(c); text != "" {
		if scope == nil {
			*out = append(*out, Segment{Text: text})
		} else {
			for _, g := range Graphemes(text) {
				color := scope.fn(float64(scope.index) / float64(scope.total))
				scope.advance()
				*out = append(*out, Segment{Text: g, Color: color})
			}
		}
	}

	for _, child := range c.Children() {
		walk(child, scope, out)
	}
}

// ownText is the text a component shows itself, excluding children.
func ownText(c *component.Component) string {
	if c.Content() != "" {
		return c.Content()
	}
	if v, ok := c.Property(standard.PropertyPlayer); ok {
		if p, ok := v.(playerid.Profile); ok {
			return "[" + p.String() + "]"
		}
	}
	return ""
}

func displayText(c *component.Component) string {
	var sb strings.Builder
	sb.WriteString(ownText(c))
	for _, child := range c.Children() {
		sb.WriteString(displayText(child))
	}
	return sb.String()
}

// Plain returns the displayed text without color.
func Plain(root *component.Component) string {
	return displayText(root)
}
