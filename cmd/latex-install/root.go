package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/latex-install/internal/install"
	"github.com/conn-castle/latex-install/internal/messages"
)

var installRun = install.Run

func newRootCmd(cfg install.Config, sys install.System) *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          fmt.Sprintf(messages.RootLong, cfg.Root, cfg.SelfTestFlag, cfg.BackupSuffix, cfg.Root, messages.RootUse),
		Args:          rejectArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return installRun(cfg, install.Options{
				System: sys,
				Out:    cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().BoolP("help", "h", false, messages.RootHelpFlag)
	return cmd
}

// rejectArgs refuses positional arguments; the installer takes none.
func rejectArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &install.Error{Kind: install.KindUsage, Err: fmt.Errorf(messages.UnknownOptionFmt, args[0])}
	}
	return nil
}
