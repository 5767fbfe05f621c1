package main

import (
	"github.com/spf13/cobra"
)

// globalFlags are shared by all subcommands.
type globalFlags struct {
	logfile  string
	verbose  bool
	jsonLogs bool
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:   "swagger-typings",
		Short: "Generate TypeScript typings for the swagger-js client",
		Long: `swagger-typings turns a resolved codegen document into a TypeScript
declaration package for the swagger-js client library: model and API
.d.ts files, package.json, README.md and the api.json manifest.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.logfile, "logfile", "", "File to write logs to")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "Verbose output")
	root.PersistentFlags().BoolVar(&flags.jsonLogs, "json-logs", false, "Write logs as JSON lines")

	root.AddCommand(newGenerateCmd(&flags))
	root.AddCommand(newVersionCmd())

	return root
}
