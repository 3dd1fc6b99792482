// Package cli implements the nativefs command line tool.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/native"
	"github.com/jmgilman/go/native/errors"
	"github.com/jmgilman/go/native/fs/core"
	"github.com/jmgilman/go/native/internal/logging"
)

// app represents the CLI application with its dependencies.
type app struct {
	files  core.Files
	out    io.Writer
	errOut io.Writer

	output   string
	logLevel string
}

// newApp creates a new app writing to the process's standard streams.
func newApp() *app {
	return &app{out: os.Stdout, errOut: os.Stderr}
}

// newRootCmd creates the root command for nativefs.
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nativefs",
		Short: "Inspect file metadata and symbolic links",
		Long: `nativefs reports file status and permission bits, changes permission
bits, and creates and reads symbolic links through the native file facade.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := newPrinter(a.output, a.out); err != nil {
				return err
			}
			if a.files != nil {
				return nil
			}

			level, err := logging.ParseLogLevel(a.logLevel)
			if err != nil {
				return errors.Wrap(err, errors.CodeInvalidInput, "invalid --log-level")
			}
			logger := logging.New(logging.Config{Level: level, Output: a.errOut})

			registry := native.NewRegistry()
			registerFiles(registry, logger)
			files, err := native.Get[core.Files](registry)
			if err != nil {
				return err
			}
			a.files = files
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", formatText, "output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	rootCmd.AddCommand(newStatCmd(a))
	rootCmd.AddCommand(newGetModeCmd(a))
	rootCmd.AddCommand(newChmodCmd(a))
	rootCmd.AddCommand(newSymlinkCmd(a))
	rootCmd.AddCommand(newReadLinkCmd(a))

	return rootCmd
}

// run executes the command line and reports a failure on errOut.
// It returns the process exit code.
func run(a *app, args []string) int {
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	if err := rootCmd.Execute(); err != nil {
		a.printError(err)
		return 1
	}
	return 0
}

// Execute runs the CLI application.
func Execute() {
	os.Exit(run(newApp(), os.Args[1:]))
}

func (a *app) printError(err error) {
	if a.output == formatText {
		fmt.Fprintln(a.errOut, errorText(err))
		return
	}
	p, perr := newPrinter(a.output, a.errOut)
	if perr != nil {
		fmt.Fprintln(a.errOut, errorText(err))
		return
	}
	if werr := p.print(errors.ToJSON(err)); werr != nil {
		fmt.Fprintln(a.errOut, errorText(err))
	}
}

// errorText prefers the bare diagnostic of platform errors over the
// code-prefixed Error() form.
func errorText(err error) string {
	var pe errors.PlatformError
	if errors.As(err, &pe) {
		return pe.Message()
	}
	return err.Error()
}
