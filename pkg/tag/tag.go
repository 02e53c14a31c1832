// Package tag defines what a resolved markup tag does to the component tree and the
// contract resolvers implement to produce it.
package tag

import (
	"github.com/walteh/minimark/pkg/component"
)

// Tag is the result of resolving a tag name. It is either an Insert or a Modify.
type Tag interface {
	isTag()
}

// Insert splices a new component into the tree.
type Insert struct {
	Component *component.Component
}

// Modify transforms the component under construction.
type Modify struct {
	Apply func(*component.Component) *component.Component
}

func (Insert) isTag() {}
func (Modify) isTag() {}

func NewInsert(c *component.Component) Tag {
	return Insert{Component: c}
}

func NewModify(fn func(*component.Component) *component.Component) Tag {
	return Modify{Apply: fn}
}
