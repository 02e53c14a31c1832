// Package playerid classifies player identifiers and converts UUIDs to the four
// signed 32-bit integers used as their internal representation.
package playerid

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gitlab.com/tozd/go/errors"
)

// TexturePrefix is prepended to texture paths that do not carry a namespace.
const TexturePrefix = "minecraft:"

var (
	uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	namePattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,16}$`)
)

type Kind int

const (
	KindUnknown Kind = iota
	KindUUID
	KindTexture
	KindName
)

func (k Kind) String() string {
	switch k {
	case KindUUID:
		return "uuid"
	case KindTexture:
		return "texture"
	case KindName:
		return "name"
	default:
		return "unknown"
	}
}

// Classify decides what shape an identifier has. UUIDs win over texture paths, which
// win over player names.
func Classify(id string) Kind {
	switch {
	case uuidPattern.MatchString(id):
		return KindUUID
	case strings.Contains(id, "/"):
		return KindTexture
	case namePattern.MatchString(id):
		return KindName
	default:
		return KindUnknown
	}
}

// ToInts converts a hyphenated UUID into four big-endian signed 32-bit groups.
func ToInts(id string) ([4]int32, error) {
	var out [4]int32

	if !uuidPattern.MatchString(id) {
		return out, errors.Errorf("%q is not a canonical uuid", id)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return out, errors.Errorf("parsing uuid %q: %w", id, err)
	}

	for i := range out {
		out[i] = int32(binary.BigEndian.Uint32(parsed[i*4 : i*4+4]))
	}

	return out, nil
}

// FromInts is the inverse of ToInts and yields the lower-case hyphenated form, so only
// lower-case input round-trips to identical text.
func FromInts(ints [4]int32) string {
	var raw uuid.UUID
	for i, v := range ints {
		binary.BigEndian.PutUint32(raw[i*4:i*4+4], uint32(v))
	}
	return raw.String()
}

// Profile is the classified player reference stored on a head component. Exactly one
// field is set.
type Profile struct {
	ID      *[4]int32 `yaml:"id,omitempty"`
	Texture string    `yaml:"texture,omitempty"`
	Name    string    `yaml:"name,omitempty"`
}

// NewProfile classifies id and builds the matching profile.
func NewProfile(id string) (Profile, Kind, error) {
	kind := Classify(id)
	switch kind {
	case KindUUID:
		ints, err := ToInts(id)
		if err != nil {
			return Profile{}, kind, err
		}
		return Profile{ID: &ints}, kind, nil
	case KindTexture:
		if strings.HasPrefix(id, TexturePrefix) {
			return Profile{Texture: id}, kind, nil
		}
		return Profile{Texture: TexturePrefix + id}, kind, nil
	case KindName:
		return Profile{Name: id}, kind, nil
	default:
		return Profile{}, kind, errors.Errorf("unrecognized player identifier %q", id)
	}
}

func (p Profile) String() string {
	switch {
	case p.ID != nil:
		return FromInts(*p.ID)
	case p.Texture != "":
		return p.Texture
	case p.Name != "":
		return p.Name
	default:
		return fmt.Sprintf("%#v", p)
	}
}
