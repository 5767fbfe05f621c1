package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"swagger-typings/internal/typescript"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the version of swagger-typings",
		Long:  `Displays the version of swagger-typings and the generator it implements.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "swagger-typings %s (%s)\n", Version, typescript.GeneratorName)
		},
	}
}
