package main

import (
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/crosskit/internal/version"
	"github.com/arthur-debert/crosskit/pkg/errors"
	"github.com/arthur-debert/crosskit/pkg/execute"
	"github.com/arthur-debert/crosskit/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "crosskit",
		Short: "Filesystem and process helpers for cross-compilation workspaces",
		Long: `crosskit carries the low-level plumbing a cross-compilation workspace
needs: portable relative symlinks, toolchain target installation, and
uniform handling of the external tools it shells out to.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	targetCmd.AddCommand(targetAddCmd)

	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(targetCmd)
	rootCmd.AddCommand(versionCmd)
}

var linkCmd = &cobra.Command{
	Use:   "link SOURCE DEST",
	Short: "Create a relative symlink at DEST pointing to SOURCE",
	Long: `Create a symlink at DEST whose target is expressed relative to DEST,
so the link keeps working when the containing tree is moved. An existing
link at DEST is replaced. Both paths must be absolute.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		dest, err := filepath.Abs(args[1])
		if err != nil {
			return err
		}
		if err := execute.RelativeSymlink(src, dest); err != nil {
			log.Error().Err(err).Str("source", src).Str("dest", dest).Msg("Failed to create symlink")
			return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link %s", dest)
		}
		return nil
	},
}

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Manage cross-compilation targets",
}

var targetAddCmd = &cobra.Command{
	Use:   "add TRIPLE",
	Short: "Install the toolchain components for a target triple",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := execute.AddTarget(args[0]); err != nil {
			log.Error().Err(err).Str("triple", args[0]).Msg("Failed to add target")
			return errors.Wrapf(err, commandCode(err), "failed to add target %s", args[0])
		}
		return nil
	},
}

// commandCode maps a normalized command failure to its structured error
// code: spawn failures and nonzero exits surface differently to callers.
func commandCode(err error) errors.ErrorCode {
	var cmdErr *execute.CommandError
	if stderrors.As(err, &cmdErr) && cmdErr.Kind == execute.KindSpawnFailed {
		return errors.ErrCommandSpawn
	}
	return errors.ErrCommandExit
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("crosskit version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
