// Package placement maps a relative text position to a color along an ordered list of
// color stops.
package placement

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gitlab.com/tozd/go/errors"
)

// ErrTooFewStops is returned when a gradient is built from fewer than two stops.
var ErrTooFewStops = errors.Base("gradient needs at least two color stops")

// RGB is one color stop.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses #RRGGBB (or #RGB).
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return RGB{}, errors.Errorf("parsing color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustParseHexes parses a static list of stops and panics on a malformed one.
func MustParseHexes(hexes ...string) []RGB {
	out := make([]RGB, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}

// Hex renders the color as upper-case #RRGGBB.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

// Interpolate blends a towards b by t. t is not clamped; each channel is.
func Interpolate(a, b RGB, t float64) RGB {
	return RGB{
		R: channel(a.R, b.R, t),
		G: channel(a.G, b.G, t),
		B: channel(a.B, b.B, t),
	}
}

func channel(start, end uint8, t float64) uint8 {
	v := float64(start) + (float64(end)-float64(start))*t
	if math.IsNaN(v) {
		return start
	}
	// round half up
	v = math.Floor(v + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Gradient builds the placement function for stops shifted by phase.
//
// The shifted position is not wrapped: positions past either end of the list clamp to
// the first or last segment and extrapolate from it.
func Gradient(stops []RGB, phase float64) (func(relativePosition float64) string, error) {
	if len(stops) < 2 {
		return nil, errors.Errorf("building gradient from %d stops: %w", len(stops), ErrTooFewStops)
	}

	palette := make([]RGB, len(stops))
	copy(palette, stops)

	return func(relativePosition float64) string {
		return At(palette, phase, relativePosition).Hex()
	}, nil
}

// At samples the gradient at one position. stops must hold at least two colors.
func At(stops []RGB, phase, relativePosition float64) RGB {
	last := len(stops) - 2
	step := 1 / float64(len(stops)-1)

	shifted := relativePosition + phase
	if math.IsNaN(shifted) {
		shifted = 0
	}

	segment := math.Floor(shifted / step)
	switch {
	case segment < 0:
		segment = 0
	case segment > float64(last):
		segment = float64(last)
	}
	index := int(segment)

	t := (shifted - float64(index)*step) / step

	return Interpolate(stops[index], stops[index+1], t)
}
