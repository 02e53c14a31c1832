package args

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/walteh/minimark/pkg/args"
	"gitlab.com/tozd/go/errors"
)

type Handler struct{}

func NewArgsCommand() *cobra.Command {
	me := &Handler{}

	cmd := &cobra.Command{
		Use:   "args <raw>",
		Short: "split a raw tag argument string and show how each argument reads",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, argv []string) error {
		return me.Run(cmd.Context(), argv[0], cmd.OutOrStdout())
	}

	return cmd
}

func (me *Handler) Run(_ context.Context, raw string, out io.Writer) error {
	q := args.New(raw)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "value", "number", "int", "bool")

	for i, arg := range q.Remaining() {
		t.Row(strconv.Itoa(i), strconv.Quote(arg.Value()), number(arg), integer(arg), boolean(arg))
	}

	if _, err := fmt.Fprintln(out, t.String()); err != nil {
		return errors.Errorf("writing table: %w", err)
	}
	return nil
}

func number(a args.Argument) string {
	if n, ok := a.AsNumber(); ok {
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
	return "-"
}

func integer(a args.Argument) string {
	if n, ok := a.AsInt(); ok {
		return strconv.Itoa(n)
	}
	return "-"
}

func boolean(a args.Argument) string {
	return strconv.FormatBool(a.IsTrue())
}
