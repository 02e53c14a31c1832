package standard

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/minimark/pkg/args"
	"github.com/walteh/minimark/pkg/component"
	"github.com/walteh/minimark/pkg/playerid"
	"github.com/walteh/minimark/pkg/tag"
	"gitlab.com/tozd/go/errors"
)

const (
	HeadTag = "head"

	PropertyHat    = "hat"
	PropertyPlayer = "player"
)

// HeadResolver turns <head:identifier[:hat]> into a player head component.
type HeadResolver struct{}

func (HeadResolver) Has(name string) bool {
	return name == HeadTag
}

func (HeadResolver) Resolve(ctx context.Context, name string, q *args.Queue, env *tag.Context) (tag.Tag, error) {
	arg, err := q.Pop()
	if err != nil {
		return nil, errors.Errorf("reading player identifier: %w", err)
	}

	identifier := strings.TrimSpace(arg.Value())

	showHat := true
	if flag, ok := q.Peek(); ok {
		if v := strings.TrimSpace(flag.Value()); v != "" {
			showHat = strings.ToLower(v) != "false"
		}
	}

	profile, kind, err := playerid.NewProfile(identifier)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("identifier", identifier).Msg("rejecting head")
		return nil, nil
	}

	c := component.Empty()
	c.SetProperty(PropertyHat, showHat)
	c.SetProperty(PropertyPlayer, profile)

	zerolog.Ctx(ctx).Trace().Str("kind", kind.String()).Bool("hat", showHat).Msg("resolved head")

	return tag.NewInsert(c), nil
}
