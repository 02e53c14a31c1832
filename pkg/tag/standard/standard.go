// Package standard provides the built-in tag resolvers.
package standard

import (
	"github.com/walteh/minimark/pkg/palette"
	"github.com/walteh/minimark/pkg/tag"
)

// NewRegistry returns a registry holding every built-in resolver. A nil palette set
// means the built-in flags.
func NewRegistry(palettes *palette.Set) *tag.Registry {
	if palettes == nil {
		palettes = palette.Builtin()
	}

	return tag.NewRegistry(
		HeadResolver{},
		PrideResolver{Palettes: palettes},
		GradientResolver{},
		KeybindResolver{},
		ClickResolver{},
	)
}
