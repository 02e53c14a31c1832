package palette

import (
	"sort"

	"github.com/walteh/minimark/pkg/placement"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
)

// Set is a lookup table of palettes. It is populated once at startup and read-only
// afterwards.
type Set struct {
	flags       map[string][]placement.RGB
	defaultName string
}

// NewSet returns an empty set whose default is DefaultFlag.
func NewSet() *Set {
	return &Set{
		flags:       map[string][]placement.RGB{},
		defaultName: DefaultFlag,
	}
}

// Builtin returns a set holding the built-in flags.
func Builtin() *Set {
	s := NewSet()
	for name, hexes := range builtinFlags {
		s.flags[name] = placement.MustParseHexes(hexes...)
	}
	return s
}

// Add registers or replaces a palette. Every malformed color is reported.
func (s *Set) Add(name string, hexes []string) error {
	if name == "" {
		return errors.New("palette name is empty")
	}
	if len(hexes) < 2 {
		return errors.Errorf("palette %q has %d colors: %w", name, len(hexes), placement.ErrTooFewStops)
	}

	var errs error
	stops := make([]placement.RGB, 0, len(hexes))
	for _, h := range hexes {
		c, err := placement.ParseHex(h)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		stops = append(stops, c)
	}
	if errs != nil {
		return errors.Errorf("palette %q: %w", name, errs)
	}

	s.flags[name] = stops
	return nil
}

// SetDefault changes the fallback palette. The name must already be registered.
func (s *Set) SetDefault(name string) error {
	if _, ok := s.flags[name]; !ok {
		return errors.Errorf("default palette %q is not registered", name)
	}
	s.defaultName = name
	return nil
}

func (s *Set) Default() string {
	return s.defaultName
}

func (s *Set) Has(name string) bool {
	_, ok := s.flags[name]
	return ok
}

// Lookup returns the stops for name, or the default palette's stops when name is unknown.
func (s *Set) Lookup(name string) []placement.RGB {
	if stops, ok := s.flags[name]; ok {
		return stops
	}
	return s.flags[s.defaultName]
}

// Names lists registered palettes in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.flags))
	for name := range s.flags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
