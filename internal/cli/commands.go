package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/native/errors"
	"github.com/jmgilman/go/native/fs/core"
)

// newStatCmd creates the stat command.
func newStatCmd(a *app) *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "stat PATH",
		Short: "Show file type, permission bits and ownership",
		Long: `Show the status of PATH. A missing path is reported with type "missing"
rather than as an error. Symbolic links are reported as links unless
--follow is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stat := a.files.Stat
			if follow {
				stat = a.files.StatTarget
			}
			st, err := stat(args[0])
			if err != nil {
				return err
			}
			return a.print(newStatResult(args[0], st))
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "L", false, "follow symbolic links")

	return cmd
}

// newGetModeCmd creates the getmode command.
func newGetModeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "getmode PATH",
		Short: "Print the permission bits of PATH in octal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := a.files.GetMode(args[0])
			if err != nil {
				return err
			}
			return a.print(modeResult{Path: args[0], Mode: mode.String()})
		},
	}
}

// newChmodCmd creates the chmod command.
func newChmodCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chmod MODE PATH",
		Short: "Set the permission bits of PATH",
		Long:  `Set the permission bits of PATH to MODE, an octal number such as 0740 or 4755.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseMode(args[0])
			if err != nil {
				return err
			}
			return a.files.SetMode(args[1], mode)
		},
	}
}

// newSymlinkCmd creates the symlink command.
func newSymlinkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "symlink TARGET LINK",
		Short: "Create a symbolic link at LINK pointing to TARGET",
		Long:  `Create a symbolic link at LINK. TARGET is stored verbatim and need not exist.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.files.Symlink(args[1], args[0])
		},
	}
}

// newReadLinkCmd creates the readlink command.
func newReadLinkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "readlink LINK",
		Short: "Print the target stored in a symbolic link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := a.files.ReadLink(args[0])
			if err != nil {
				return err
			}
			return a.print(linkResult{Link: args[0], Target: target})
		},
	}
}

func (a *app) print(v any) error {
	p, err := newPrinter(a.output, a.out)
	if err != nil {
		return err
	}
	return p.print(v)
}

// parseMode parses an octal permission string such as "0740".
func parseMode(s string) (core.PermissionBits, error) {
	n, err := strconv.ParseUint(s, 8, 32)
	if err != nil || core.PermissionBits(n)&^core.PermissionMask != 0 {
		return 0, errors.WithContext(
			errors.Newf(errors.CodeInvalidInput, "invalid mode %q: must be an octal number from 0 to 7777", s),
			"mode", s,
		)
	}
	return core.PermissionBits(n), nil
}
