package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/any-source/lokio/internal/messages"
	"github.com/any-source/lokio/internal/update"
)

type releaseChecker interface {
	Check(ctx context.Context, currentVersion string) (update.Result, error)
}

var newReleaseChecker = func() releaseChecker { return update.NewChecker() }

func newVersionCmd(flags *rootFlags) *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   messages.VersionUse,
		Short: messages.VersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, versionString()); err != nil {
				return err
			}
			if !check {
				return nil
			}
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			errOut := cmd.ErrOrStderr()
			reportRelease(cmd.Context(), out, errOut, cfg.ColorEnabled() && isTerminalWriter(errOut))
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, messages.VersionCheckFlagUsage)
	return cmd
}

// reportRelease prints the release check outcome. A failed check is only a
// warning.
func reportRelease(ctx context.Context, out io.Writer, errOut io.Writer, useColor bool) {
	warn := color.New(color.FgYellow)
	if useColor {
		warn.EnableColor()
	} else {
		warn.DisableColor()
	}

	result, err := newReleaseChecker().Check(ctx, Version)
	switch {
	case err != nil:
		_, _ = warn.Fprintf(errOut, messages.UpdateCheckFailedFmt+"\n", err)
	case result.CurrentIsDev:
		_, _ = fmt.Fprintf(out, messages.UpdateDevBuildFmt+"\n", result.Latest)
	case result.Outdated:
		_, _ = warn.Fprintf(errOut, messages.UpdateAvailableFmt+"\n", result.Current, result.Latest, update.ReleasesURL)
	default:
		_, _ = fmt.Fprintln(out, messages.UpdateUpToDate)
	}
}
