package standard

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/minimark/pkg/args"
	"github.com/walteh/minimark/pkg/component"
	"github.com/walteh/minimark/pkg/placement"
	"github.com/walteh/minimark/pkg/tag"
	"gitlab.com/tozd/go/errors"
)

const GradientTag = "gradient"

var defaultGradient = placement.MustParseHexes("#FFFFFF", "#000000")

// GradientResolver colors text along explicit stops: <gradient:#hex:#hex[:...][:phase]>.
type GradientResolver struct{}

func (GradientResolver) Has(name string) bool {
	return name == GradientTag
}

func (GradientResolver) Resolve(ctx context.Context, name string, q *args.Queue, env *tag.Context) (tag.Tag, error) {
	var stops []placement.RGB
	phase := 0.0

	for q.HasNext() {
		arg, err := q.Pop()
		if err != nil {
			return nil, err
		}

		if c, err := placement.ParseHex(arg.Value()); err == nil {
			stops = append(stops, c)
			continue
		}

		p, ok := arg.AsNumber()
		if !ok || q.HasNext() {
			zerolog.Ctx(ctx).Debug().Str("arg", arg.Value()).Msg("gradient argument is neither a color nor a trailing phase")
			return nil, nil
		}
		phase = p
	}

	switch len(stops) {
	case 0:
		stops = defaultGradient
	case 1:
		return nil, nil
	}

	fn, err := placement.Gradient(stops, phase)
	if err != nil {
		return nil, errors.Errorf("building gradient: %w", err)
	}

	return tag.NewModify(func(c *component.Component) *component.Component {
		c.SetColorByPlacement(fn)
		return c
	}), nil
}
