package tag

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/minimark/pkg/args"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/cases"
)

// ErrUnknownTag is returned when no resolver in a registry claims a name.
var ErrUnknownTag = errors.Base("no resolver handles tag")

// Registry is an ordered collection of resolvers. Earlier resolvers win.
type Registry struct {
	resolvers []Resolver
}

func NewRegistry(resolvers ...Resolver) *Registry {
	return &Registry{resolvers: resolvers}
}

func (r *Registry) Add(resolver Resolver) {
	r.resolvers = append(r.resolvers, resolver)
}

// Normalize case-folds a tag name.
func Normalize(name string) string {
	return cases.Fold().String(name)
}

// Lookup returns the first resolver that handles name.
func (r *Registry) Lookup(name string) (Resolver, bool) {
	name = Normalize(name)
	for _, resolver := range r.resolvers {
		if resolver.Has(name) {
			return resolver, true
		}
	}
	return nil, false
}

func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Resolve dispatches to the first resolver that handles name.
func (r *Registry) Resolve(ctx context.Context, name string, q *args.Queue, env *Context) (Tag, error) {
	name = Normalize(name)

	resolver, ok := r.Lookup(name)
	if !ok {
		zerolog.Ctx(ctx).Trace().Str("tag", name).Msg("no resolver")
		return nil, errors.Errorf("resolving %q: %w", name, ErrUnknownTag)
	}

	if q == nil {
		q = args.EmptyQueue
	}

	t, err := resolver.Resolve(ctx, name, q, env)
	if err != nil {
		return nil, errors.Errorf("resolving %q: %w", name, err)
	}

	zerolog.Ctx(ctx).Trace().Str("tag", name).Str("args", q.Raw()).Bool("resolved", t != nil).Msg("resolved tag")

	return t, nil
}
