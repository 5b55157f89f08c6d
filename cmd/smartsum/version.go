package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set at build time using -ldflags.
var (
	version   = "dev"
	gitCommit = ""
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			v := version
			if gitCommit != "" {
				v += " (" + gitCommit + ")"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "smartsum %s %s\n", v, runtime.Version())
		},
	}
}
