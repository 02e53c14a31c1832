package standard

import (
	"context"

	"github.com/walteh/minimark/pkg/args"
	"github.com/walteh/minimark/pkg/component"
	"github.com/walteh/minimark/pkg/keybind"
	"github.com/walteh/minimark/pkg/tag"
	"gitlab.com/tozd/go/errors"
)

const (
	KeybindTag = "key"

	PropertyKeybind = "keybind"
)

// KeybindResolver inserts the display text of a keybind: <key:key.jump>.
type KeybindResolver struct{}

func (KeybindResolver) Has(name string) bool {
	return name == KeybindTag
}

func (KeybindResolver) Resolve(ctx context.Context, name string, q *args.Queue, env *tag.Context) (tag.Tag, error) {
	arg, err := q.Pop()
	if err != nil {
		return nil, errors.Errorf("reading keybind: %w", err)
	}
	if arg.Value() == "" {
		return nil, nil
	}

	c := component.Text(keybind.Render(arg.Value(), env.TranslationMap()))
	c.SetProperty(PropertyKeybind, arg.Value())

	return tag.NewInsert(c), nil
}
