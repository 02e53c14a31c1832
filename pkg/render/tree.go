package render

import (
	"io"
	"sort"

	"github.com/walteh/minimark/pkg/component"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Node is the serializable view of a component.
type Node struct {
	Content    string         `yaml:"content,omitempty"`
	Placement  bool           `yaml:"placement,omitempty"`
	Sample     []string       `yaml:"sample,omitempty"`
	Properties map[string]any `yaml:"properties,omitempty"`
	Children   []*Node        `yaml:"children,omitempty"`
}

// samplePositions are where placement functions are probed for the tree view.
var samplePositions = []float64{0, 0.25, 0.5, 0.75}

// NewNode snapshots a component tree.
func NewNode(c *component.Component) *Node {
	n := &Node{
		Content: c.Content(),
	}

	if props := c.Properties(); len(props) > 0 {
		n.Properties = props
	}

	if fn := c.Placement(); fn != nil {
		n.Placement = true
		for _, x := range samplePositions {
			n.Sample = append(n.Sample, fn(x))
		}
	}

	for _, child := range c.Children() {
		n.Children = append(n.Children, NewNode(child))
	}

	return n
}

// Tree writes a YAML dump of root to w.
func Tree(w io.Writer, root *component.Component) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(NewNode(root)); err != nil {
		return errors.Errorf("encoding component tree: %w", err)
	}
	if err := enc.Close(); err != nil {
		return errors.Errorf("flushing component tree: %w", err)
	}
	return nil
}

// PropertyNames lists the properties of a node in sorted order.
func (n *Node) PropertyNames() []string {
	names := make([]string, 0, len(n.Properties))
	for k := range n.Properties {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
