package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/any-source/lokio/internal/messages"
	"github.com/any-source/lokio/internal/projectfile"
)

func newInfoCmd(root *rootFlags) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:     messages.InfoUse,
		Aliases: []string{"i"},
		Short:   messages.InfoShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if dir == "" {
				cwd, err := getwd()
				if err != nil {
					return fmt.Errorf(messages.InfoResolveCwdErrFmt, err)
				}
				dir = cwd
			}

			file, err := projectfile.Load(dir, cfg.Catalog.ConfigFile)
			if errors.Is(err, projectfile.ErrNotFound) {
				return fmt.Errorf(messages.InfoNoConfigFmt, cfg.Catalog.ConfigFile, dir)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.InfoHeaderFmt, file.Path)
			if len(file.Fields) == 0 {
				_, _ = fmt.Fprintln(out, messages.InfoEmpty)
				return nil
			}
			width := 0
			for _, field := range file.Fields {
				width = max(width, len(field.Key)+1)
			}
			for _, field := range file.Fields {
				_, _ = fmt.Fprintf(out, messages.InfoFieldFmt, width, field.Key+":", field.Value)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", messages.InfoDirFlag)
	return cmd
}
