package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/minimark/pkg/component"
)

func TestComponent_Properties(t *testing.T) {
	c := component.Empty()
	c.SetProperty("hat", true)
	c.SetProperty("player", "Notch")

	v, ok := c.Property("hat")
	require.True(t, ok)
	assert.Equal(t, true, v)

	props := c.Properties()
	props["hat"] = false
	v, _ = c.Property("hat")
	assert.Equal(t, true, v, "Properties should return a copy")

	_, ok = c.Property("missing")
	assert.False(t, ok)
}

func TestComponent_ColorAt(t *testing.T) {
	c := component.Text("abc")

	_, ok := c.ColorAt(0)
	assert.False(t, ok, "no placement installed")

	c.SetColorByPlacement(func(x float64) string {
		if x < 0.5 {
			return "#000000"
		}
		return "#FFFFFF"
	})

	got, ok := c.ColorAt(0.25)
	require.True(t, ok)
	assert.Equal(t, "#000000", got)

	got, _ = c.ColorAt(0.75)
	assert.Equal(t, "#FFFFFF", got)
}

func TestComponent_PlainText(t *testing.T) {
	root := component.Empty()
	inner := component.Text("b")
	inner.Append(component.Text("c"))
	root.Append(component.Text("a"), inner, component.Text("d"))

	assert.Equal(t, "abcd", root.PlainText())
	assert.Len(t, root.Children(), 3)
}
