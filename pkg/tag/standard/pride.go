package standard

import (
	"context"
	"strings"

	"github.com/walteh/minimark/pkg/args"
	"github.com/walteh/minimark/pkg/component"
	"github.com/walteh/minimark/pkg/palette"
	"github.com/walteh/minimark/pkg/placement"
	"github.com/walteh/minimark/pkg/tag"
	"gitlab.com/tozd/go/errors"
)

const PrideTag = "pride"

// PrideResolver colors text along a flag palette: <pride[:flag|phase]>.
type PrideResolver struct {
	Palettes *palette.Set
}

func (PrideResolver) Has(name string) bool {
	return name == PrideTag
}

// ParseFlagArgument splits "flag|phase". Missing parts fall back to the default flag and
// a zero phase.
func ParseFlagArgument(raw string, defaultFlag string) (string, float64) {
	flag := defaultFlag
	phase := 0.0

	parts := strings.Split(raw, "|")
	if parts[0] != "" {
		flag = parts[0]
	}
	if len(parts) > 1 && parts[1] != "" {
		if p, ok := args.NewArgument(parts[1]).AsNumber(); ok {
			phase = p
		}
	}

	return flag, phase
}

func (r PrideResolver) Resolve(ctx context.Context, name string, q *args.Queue, env *tag.Context) (tag.Tag, error) {
	palettes := r.Palettes
	if palettes == nil {
		palettes = palette.Builtin()
	}

	flag, phase := palettes.Default(), 0.0
	if arg, ok := q.Peek(); ok {
		flag, phase = ParseFlagArgument(arg.Value(), palettes.Default())
	}

	fn, err := placement.Gradient(palettes.Lookup(flag), phase)
	if err != nil {
		return nil, errors.Errorf("building %q gradient: %w", flag, err)
	}

	return tag.NewModify(func(c *component.Component) *component.Component {
		c.SetColorByPlacement(fn)
		return c
	}), nil
}
