package standard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/minimark/pkg/args"
	"github.com/walteh/minimark/pkg/tag/standard"
)

func TestGradientResolver(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		at0     string
		at50    string
		wantNil bool
	}{
		{name: "two_stops", raw: "#000000:#FE0000", at0: "#000000", at50: "#7F0000"},
		{name: "default_stops", raw: "", at0: "#FFFFFF", at50: "#808080"},
		{name: "trailing_phase", raw: "#FF0000:#00FF00:#0000FF:0.5", at0: "#00FF00", at50: "#0000FF"},
		{name: "short_hex", raw: "#fff:#000", at0: "#FFFFFF", at50: "#808080"},
		{name: "single_stop_invalid", raw: "#FF0000", wantNil: true},
		{name: "garbage_invalid", raw: "#FF0000:banana", wantNil: true},
		{name: "phase_not_last_invalid", raw: "#FF0000:0.5:#00FF00", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := args.EmptyQueue
			if tt.raw != "" {
				q = args.New(tt.raw)
			}

			if tt.wantNil {
				got, err := standard.GradientResolver{}.Resolve(context.Background(), "gradient", q, nil)
				require.NoError(t, err)
				assert.Nil(t, got)
				return
			}

			c := applyModify(t, standard.GradientResolver{}, "gradient", q)
			assert.Equal(t, tt.at0, sample(t, c, 0))
			assert.Equal(t, tt.at50, sample(t, c, 0.5))
		})
	}
}
