// Package component holds the styled text tree that tags mutate.
package component

// PlacementFunc maps a relative position in [0,1) within a component's text to a color.
type PlacementFunc func(relativePosition float64) string

// Component is a node in the output text tree.
type Component struct {
	content    string
	properties map[string]any
	children   []*Component
	placement  PlacementFunc
}

// Empty returns a component with no content, properties or children.
func Empty() *Component {
	return &Component{properties: map[string]any{}}
}

// Text returns a leaf component carrying literal text.
func Text(s string) *Component {
	c := Empty()
	c.content = s
	return c
}

func (c *Component) Content() string {
	return c.content
}

func (c *Component) SetProperty(name string, value any) {
	c.properties[name] = value
}

func (c *Component) Property(name string) (any, bool) {
	v, ok := c.properties[name]
	return v, ok
}

// Properties returns a copy of the property map.
func (c *Component) Properties() map[string]any {
	out := make(map[string]any, len(c.properties))
	for k, v := range c.properties {
		out[k] = v
	}
	return out
}

// SetColorByPlacement stores fn to be sampled by the renderer once per glyph.
func (c *Component) SetColorByPlacement(fn PlacementFunc) {
	c.placement = fn
}

func (c *Component) Placement() PlacementFunc {
	return c.placement
}

// ColorAt samples the placement function, if any.
func (c *Component) ColorAt(relativePosition float64) (string, bool) {
	if c.placement == nil {
		return "", false
	}
	return c.placement(relativePosition), true
}

func (c *Component) Append(children ...*Component) {
	c.children = append(c.children, children...)
}

func (c *Component) Children() []*Component {
	return c.children
}

// PlainText concatenates the content of the whole subtree, depth first.
func (c *Component) PlainText() string {
	out := c.content
	for _, child := range c.children {
		out += child.PlainText()
	}
	return out
}
