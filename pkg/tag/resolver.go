package tag

import (
	"context"

	"github.com/walteh/minimark/pkg/args"
)

// Resolver handles one or more tag names.
//
// Resolve returns a nil Tag and a nil error when it recognizes the name but cannot build
// anything from the arguments; callers pass such tags through untouched. A non-nil error
// is a contract violation, such as popping more arguments than the tag carries.
// Resolvers must not keep the queue after returning.
type Resolver interface {
	Has(name string) bool
	Resolve(ctx context.Context, name string, q *args.Queue, env *Context) (Tag, error)
}

// Context is the ambient state a resolver may read. Resolvers never modify it.
type Context struct {
	// Translations maps translation keys to display text.
	Translations map[string]string
	// Placeholders maps placeholder names to replacement text.
	Placeholders map[string]string
}

// Translation looks up a translation key.
func (c *Context) Translation(key string) (string, bool) {
	if c == nil || c.Translations == nil {
		return "", false
	}
	v, ok := c.Translations[key]
	return v, ok
}

// Placeholder looks up a placeholder value.
func (c *Context) Placeholder(name string) (string, bool) {
	if c == nil || c.Placeholders == nil {
		return "", false
	}
	v, ok := c.Placeholders[name]
	return v, ok
}

// TranslationMap returns the translations, or nil for a nil context.
func (c *Context) TranslationMap() map[string]string {
	if c == nil {
		return nil
	}
	return c.Translations
}
