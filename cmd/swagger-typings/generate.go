package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"swagger-typings/internal/config"
	"swagger-typings/internal/diagnostic"
	"swagger-typings/internal/document"
	"swagger-typings/internal/logger"
	"swagger-typings/internal/pipeline"
	"swagger-typings/internal/render"
	"swagger-typings/internal/typescript"
)

type generateFlags struct {
	input      string
	configPath string
	dump       bool
}

// flagKeys binds command-line flags to configuration keys.
var flagKeys = map[string]string{
	"output":         config.KeyOutputDir,
	"npm-repository": config.KeyNpmRepository,
	"strict":         config.KeyStrict,
}

func newGenerateCmd(global *globalFlags) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the typings package from a codegen document",
		Long: `Loads a codegen document (.yaml, .yml, .json or .toml), post-processes
its models and operations and writes the typings package to the output
directory.

Configuration is read from --config, or swagger-typings.{yaml,toml,json} in
the working directory, and SWAGGER_TYPINGS_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Initialize(logger.Options{
				JSON:    global.jsonLogs,
				Verbose: global.verbose,
				File:    global.logfile,
			}); err != nil {
				return err
			}
			defer logger.Cleanup()

			v := config.New()
			for name, key := range flagKeys {
				if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
					return errors.Wrapf(err, "binding flag %s", name)
				}
			}

			return runGenerate(cmd, v, flags, logger.Logger)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "Codegen document to process")
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Config file (yaml, toml or json)")
	cmd.Flags().StringP("output", "o", "", "Output directory")
	cmd.Flags().String("npm-repository", "", "Private npm registry URL written to package.json")
	cmd.Flags().Bool("strict", false, "Fail on filename collisions")
	cmd.Flags().BoolVar(&flags.dump, "dump", false, "Dump the resolved document to stdout")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runGenerate(cmd *cobra.Command, v *viper.Viper, flags generateFlags, log *zap.SugaredLogger) error {
	cfg, err := config.Load(v, flags.configPath)
	if err != nil {
		return err
	}

	opts, err := cfg.StrategyOptions()
	if err != nil {
		return err
	}

	doc, err := document.LoadFile(flags.input)
	if err != nil {
		return err
	}

	log.Infow("document loaded",
		"input", flags.input, "models", len(doc.Models), "operations", doc.OperationCount())

	strategy := typescript.NewStrategy(opts)

	res, err := pipeline.New(strategy, cfg.PipelineConfig(), log).Run(cmd.Context(), doc)
	if res != nil {
		report(cmd, res.Diagnostics)
	}

	if err != nil {
		return err
	}

	if flags.dump {
		dumpResult(cmd.OutOrStdout(), res)
	}

	files, err := render.New(strategy.Deriver(), strategy.Name(), log).Render(res)
	if err != nil {
		return err
	}

	if err := render.WriteFiles(files, cfg.OutputDir); err != nil {
		return err
	}

	log.Infow("typings generated", "files", len(files), "output", cfg.OutputDir)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s\n", len(files), cfg.OutputDir)

	return nil
}

// report prints errors and warnings. Infos go to the debug log only.
func report(cmd *cobra.Command, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		if d.Severity == diagnostic.SeverityInfo {
			logger.Logger.Debugw(d.Message, "code", d.Code, "subject", d.Subject)
			continue
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", d.Severity, d)
	}
}
