package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/any-source/lokio/internal/config"
	"github.com/any-source/lokio/internal/messages"
	"github.com/any-source/lokio/internal/prompt"
	"github.com/any-source/lokio/internal/terminal"
)

var (
	getwd            = os.Getwd
	loadConfig       = config.LoadDefault
	isInteractive    = terminal.IsInteractive
	isTerminalWriter = terminal.IsTerminalWriter
	newUI            = func() prompt.UI { return prompt.NewHuhUI() }
)

type rootFlags struct {
	configPath string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolP("version", "v", false, messages.RootVersionFlag)
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", messages.RootFlagConfig)
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, messages.RootFlagNoColor)

	cmd.AddCommand(
		newCreateCmd(flags),
		newInfoCmd(flags),
		newVersionCmd(flags),
		newCompletionCmd(),
	)
	return cmd
}

// load reads the user config and applies the root flags on top.
func (f *rootFlags) load() (*config.Config, error) {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.noColor {
		off := false
		cfg.Output.Color = &off
	}
	return cfg, nil
}
