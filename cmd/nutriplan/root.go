package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nutriplan",
		Short:         "Daily energy and macro targets from biometrics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newTargetsCmd(), newConvertCmd())
	return root
}
