package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	args_cmd "github.com/walteh/minimark/cmd/minimark/args"
	render_cmd "github.com/walteh/minimark/cmd/minimark/render"
	sample_cmd "github.com/walteh/minimark/cmd/minimark/sample"
	"github.com/walteh/minimark/pkg/config"
	logging "github.com/walteh/minimark/pkg/debug"
	"gitlab.com/tozd/go/errors"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var (
		debugLogging bool
		configPath   string
	)

	rootCmd := &cobra.Command{
		Use:           "minimark",
		Short:         "Render minimark text components in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}

	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file or directory (yaml or hcl)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(logging.WithLogger(cmd.Context(), cmd.ErrOrStderr(), debugLogging))
		return nil
	}

	cmdVersion := &cobra.Command{
		Use: "raw-version",
		Run: func(cmdz *cobra.Command, args []string) {
			cmdz.Println(rootCmd.Version)
		},
		Hidden: true,
	}

	rootCmd.AddCommand(cmdVersion)

	loader := func(ctx context.Context) (*config.Runtime, error) {
		return config.LoadRuntime(ctx, afero.NewOsFs(), configPath)
	}

	rootCmd.AddCommand(render_cmd.NewRenderCommand(loader))
	rootCmd.AddCommand(args_cmd.NewArgsCommand())
	rootCmd.AddCommand(sample_cmd.NewSampleCommand(loader))

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}
