package render

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/minimark/pkg/config"
	"github.com/walteh/minimark/pkg/render"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	tree bool
	load config.Loader
}

func NewRenderCommand(load config.Loader) *cobra.Command {
	me := &Handler{load: load}

	cmd := &cobra.Command{
		Use:   "render [text]",
		Short: "render markup to the terminal (reads stdin when no text is given)",
	}

	cmd.Flags().BoolVar(&me.tree, "tree", false, "print the component tree as yaml instead")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		input := strings.Join(args, " ")
		if len(args) == 0 {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return errors.Errorf("reading stdin: %w", err)
			}
			input = strings.TrimRight(string(data), "\n")
		}
		return me.Run(cmd.Context(), input, cmd.OutOrStdout())
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, input string, out io.Writer) error {
	rt, err := me.load(ctx)
	if err != nil {
		return err
	}

	root, err := rt.Parser().Parse(ctx, input)
	if err != nil {
		return errors.Errorf("parsing markup: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Int("children", len(root.Children())).Msg("parsed markup")

	if me.tree {
		return render.Tree(out, root)
	}

	if err := render.ANSI(out, root); err != nil {
		return err
	}
	if _, err := io.WriteString(out, "\n"); err != nil {
		return errors.Errorf("writing output: %w", err)
	}
	return nil
}
