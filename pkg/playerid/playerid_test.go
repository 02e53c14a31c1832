package playerid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/minimark/pkg/playerid"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  playerid.Kind
	}{
		{input: "069a79f4-44e9-4726-a5be-fca90e38aaf5", want: playerid.KindUUID},
		{input: "069A79F4-44E9-4726-A5BE-FCA90E38AAF5", want: playerid.KindUnknown},
		{input: "entity/player/wide/steve", want: playerid.KindTexture},
		{input: "Notch", want: playerid.KindName},
		{input: "jeb_", want: playerid.KindName},
		{input: "", want: playerid.KindUnknown},
		{input: "has space", want: playerid.KindUnknown},
		{input: "waytoolongforaplayername", want: playerid.KindUnknown},
		{input: "069a79f444e94726a5befca90e38aaf5", want: playerid.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, playerid.Classify(tt.input))
		})
	}
}

func TestToInts_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want [4]int32
	}{
		{
			name: "notch",
			id:   "069a79f4-44e9-4726-a5be-fca90e38aaf5",
			want: [4]int32{0x069a79f4, 0x44e94726, -1514210135, 0x0e38aaf5},
		},
		{
			name: "all_high_bits",
			id:   "ffffffff-ffff-ffff-ffff-ffffffffffff",
			want: [4]int32{-1, -1, -1, -1},
		},
		{
			name: "nil",
			id:   "00000000-0000-0000-0000-000000000000",
			want: [4]int32{0, 0, 0, 0},
		},
		{
			name: "sign_boundary",
			id:   "80000000-7fff-ffff-8000-00007fffffff",
			want: [4]int32{-2147483648, 2147483647, -2147483648, 2147483647},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ints, err := playerid.ToInts(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ints)
			assert.Equal(t, tt.id, playerid.FromInts(ints))
		})
	}
}

func TestToInts_Rejects(t *testing.T) {
	for _, id := range []string{"", "Notch", "{069a79f4-44e9-4726-a5be-fca90e38aaf5}", "urn:uuid:069a79f4-44e9-4726-a5be-fca90e38aaf5"} {
		_, err := playerid.ToInts(id)
		assert.Error(t, err, "input %q", id)
	}
}

func TestNewProfile(t *testing.T) {
	t.Run("uuid", func(t *testing.T) {
		p, kind, err := playerid.NewProfile("069a79f4-44e9-4726-a5be-fca90e38aaf5")
		require.NoError(t, err)
		assert.Equal(t, playerid.KindUUID, kind)
		require.NotNil(t, p.ID)
		assert.Equal(t, "069a79f4-44e9-4726-a5be-fca90e38aaf5", p.String())
	})

	t.Run("texture_gets_namespace", func(t *testing.T) {
		p, kind, err := playerid.NewProfile("entity/player/wide/steve")
		require.NoError(t, err)
		assert.Equal(t, playerid.KindTexture, kind)
		assert.Equal(t, "minecraft:entity/player/wide/steve", p.Texture)
	})

	t.Run("texture_keeps_namespace", func(t *testing.T) {
		p, _, err := playerid.NewProfile("minecraft:entity/player/slim/alex")
		require.NoError(t, err)
		assert.Equal(t, "minecraft:entity/player/slim/alex", p.Texture)
	})

	t.Run("name", func(t *testing.T) {
		p, kind, err := playerid.NewProfile("Notch")
		require.NoError(t, err)
		assert.Equal(t, playerid.KindName, kind)
		assert.Equal(t, "Notch", p.Name)
	})

	t.Run("unknown", func(t *testing.T) {
		_, kind, err := playerid.NewProfile("")
		assert.Error(t, err)
		assert.Equal(t, playerid.KindUnknown, kind)
	})
}

func TestClassifiedUUIDsRoundTripExactly(t *testing.T) {
	for _, id := range []string{
		"069a79f4-44e9-4726-a5be-fca90e38aaf5",
		"069A79F4-44E9-4726-A5BE-FCA90E38AAF5",
		"069a79f4-44E9-4726-a5be-fca90e38aaf5",
	} {
		t.Run(id, func(t *testing.T) {
			if playerid.Classify(id) != playerid.KindUUID {
				return
			}
			ints, err := playerid.ToInts(id)
			require.NoError(t, err)
			assert.Equal(t, id, playerid.FromInts(ints))
		})
	}
}
