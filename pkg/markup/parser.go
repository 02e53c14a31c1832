package markup

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/minimark/pkg/args"
	"github.com/walteh/minimark/pkg/component"
	"github.com/walteh/minimark/pkg/tag"
	"gitlab.com/tozd/go/errors"
)

// Parser turns markup into a component tree.
type Parser struct {
	Registry *tag.Registry
	Env      *tag.Context
}

func NewParser(registry *tag.Registry, env *tag.Context) *Parser {
	return &Parser{Registry: registry, Env: env}
}

type frame struct {
	name string
	comp *component.Component
}

// Parse builds the tree for input. Unknown or unresolvable tags stay in the output as
// literal text and unclosed tags close at end of input.
func (p *Parser) Parse(ctx context.Context, input string) (*component.Component, error) {
	lex, err := MarkupLexer.LexString("", input)
	if err != nil {
		return nil, errors.Errorf("lexing markup: %w", err)
	}

	root := component.Empty()
	stack := []frame{{comp: root}}

	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, errors.Errorf("lexing markup: %w", err)
		}
		if tok.EOF() {
			break
		}

		top := stack[len(stack)-1].comp

		switch tok.Type {
		case symOpenTag:
			name, raw, selfClosing := splitOpenTag(tok.Value)

			q := args.New(raw)

			resolved, err := p.Registry.Resolve(ctx, name, q, p.Env)
			if err != nil {
				if errors.Is(err, tag.ErrUnknownTag) {
					top.Append(component.Text(tok.Value))
					continue
				}
				return nil, errors.Errorf("tag %q at %d:%d: %w", name, tok.Pos.Line, tok.Pos.Column, err)
			}

			switch t := resolved.(type) {
			case tag.Insert:
				top.Append(t.Component)
			case tag.Modify:
				child := t.Apply(component.Empty())
				top.Append(child)
				if !selfClosing {
					stack = append(stack, frame{name: tag.Normalize(name), comp: child})
				}
			default:
				zerolog.Ctx(ctx).Debug().Str("tag", tok.Value).Msg("tag passed through")
				top.Append(component.Text(tok.Value))
			}

		case symCloseTag:
			name := tag.Normalize(closeTagName(tok.Value))

			closed := false
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].name == name {
					stack = stack[:i]
					closed = true
					break
				}
			}
			if !closed {
				top.Append(component.Text(tok.Value))
			}

		default:
			top.Append(component.Text(tok.Value))
		}
	}

	if len(stack) > 1 {
		zerolog.Ctx(ctx).Trace().Int("unclosed", len(stack)-1).Msg("closing tags at end of input")
	}

	return root, nil
}
