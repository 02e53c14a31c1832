package standard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/minimark/pkg/args"
	"github.com/walteh/minimark/pkg/tag"
	"github.com/walteh/minimark/pkg/tag/standard"
)

func TestKeybindResolver(t *testing.T) {
	env := &tag.Context{Translations: map[string]string{"key.keyboard.space": "Leertaste"}}

	got, err := standard.KeybindResolver{}.Resolve(context.Background(), "key", args.New("key.jump"), env)
	require.NoError(t, err)
	insert, ok := got.(tag.Insert)
	require.True(t, ok)
	assert.Equal(t, "Leertaste", insert.Component.Content())

	v, ok := insert.Component.Property(standard.PropertyKeybind)
	require.True(t, ok)
	assert.Equal(t, "key.jump", v)

	c := resolveInsert(t, standard.KeybindResolver{}, "key", "key.sneak")
	assert.Equal(t, "Left Shift", c.Content())
}

func TestKeybindResolver_Invalid(t *testing.T) {
	got, err := standard.KeybindResolver{}.Resolve(context.Background(), "key", args.New("''"), nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = standard.KeybindResolver{}.Resolve(context.Background(), "key", args.EmptyQueue, nil)
	assert.ErrorIs(t, err, args.ErrEmptyQueue)
}
