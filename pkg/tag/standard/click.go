package standard

import (
	"context"

	"github.com/walteh/minimark/pkg/args"
	"github.com/walteh/minimark/pkg/component"
	"github.com/walteh/minimark/pkg/tag"
	"gitlab.com/tozd/go/errors"
)

const (
	ClickTag = "click"

	PropertyClickEvent = "clickEvent"
)

var clickActions = map[string]struct{}{
	"open_url":          {},
	"open_file":         {},
	"run_command":       {},
	"suggest_command":   {},
	"change_page":       {},
	"copy_to_clipboard": {},
}

// ClickEvent is stored on components wrapped in a click tag.
type ClickEvent struct {
	Action string `yaml:"action" json:"action"`
	Value  string `yaml:"value" json:"value"`
}

// ClickResolver attaches a click action: <click:open_url:'https://example.com'>.
type ClickResolver struct{}

func (ClickResolver) Has(name string) bool {
	return name == ClickTag
}

func (ClickResolver) Resolve(ctx context.Context, name string, q *args.Queue, env *tag.Context) (tag.Tag, error) {
	action, err := q.Pop()
	if err != nil {
		return nil, errors.Errorf("reading click action: %w", err)
	}
	if _, ok := clickActions[action.LowerValue()]; !ok {
		return nil, nil
	}

	value, err := q.Pop()
	if err != nil {
		return nil, errors.Errorf("reading click value: %w", err)
	}

	event := ClickEvent{Action: action.LowerValue(), Value: value.Value()}

	return tag.NewModify(func(c *component.Component) *component.Component {
		c.SetProperty(PropertyClickEvent, event)
		return c
	}), nil
}
