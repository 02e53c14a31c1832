package sample

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/minimark/pkg/config"
	"github.com/walteh/minimark/pkg/placement"
	"github.com/walteh/minimark/pkg/tag/standard"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	steps int
	load  config.Loader
}

func NewSampleCommand(load config.Loader) *cobra.Command {
	me := &Handler{load: load}

	cmd := &cobra.Command{
		Use:   "sample [flag|phase]",
		Short: "sample a pride gradient and print color swatches",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.Flags().IntVar(&me.steps, "steps", 10, "number of evenly spaced samples")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if me.steps < 1 {
			return errors.Errorf("--steps must be at least 1, got %d", me.steps)
		}
		raw := ""
		if len(args) > 0 {
			raw = args[0]
		}
		return me.Run(cmd.Context(), raw, cmd.OutOrStdout())
	}

	return cmd
}

// Samples returns the hex colors at steps evenly spaced positions in [0, 1].
func Samples(fn func(float64) string, steps int) []string {
	if steps < 1 {
		return nil
	}
	if steps == 1 {
		return []string{fn(0)}
	}
	out := make([]string, steps)
	for i := range out {
		out[i] = fn(float64(i) / float64(steps-1))
	}
	return out
}

func (me *Handler) Run(ctx context.Context, raw string, out io.Writer) error {
	rt, err := me.load(ctx)
	if err != nil {
		return err
	}

	flag, phase := standard.ParseFlagArgument(raw, rt.Palettes.Default())
	if !rt.Palettes.Has(flag) {
		zerolog.Ctx(ctx).Warn().Str("flag", flag).Str("fallback", rt.Palettes.Default()).Msg("unknown flag")
		flag = rt.Palettes.Default()
	}

	fn, err := placement.Gradient(rt.Palettes.Lookup(flag), phase)
	if err != nil {
		return errors.Errorf("building %q gradient: %w", flag, err)
	}

	renderer := lipgloss.NewRenderer(out)
	swatches := make([]string, 0, max(me.steps, 0))
	for _, hex := range Samples(fn, me.steps) {
		swatch := renderer.NewStyle().
			Background(lipgloss.Color(hex)).
			Foreground(lipgloss.Color(hex)).
			Render("  ")
		swatches = append(swatches, swatch+" "+hex)
	}

	header := renderer.NewStyle().Bold(true).Render(fmt.Sprintf("%s (phase %g)", flag, phase))
	if _, err := fmt.Fprintln(out, header+"\n"+strings.Join(swatches, "\n")); err != nil {
		return errors.Errorf("writing swatches: %w", err)
	}
	return nil
}
