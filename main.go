package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kasuganosora/packmule/app"
	"github.com/kasuganosora/packmule/cli"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	// Local .env is optional.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:                "packmule [flags] [source ...]",
		Short:              "Track a tabletop character's carried equipment",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, false, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.AddCommand(&cobra.Command{
		Use:                "manage [flags] [source ...]",
		Short:              "Report the inventory, then browse it interactively",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, true, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(args []string, interactive bool, in io.Reader, out io.Writer) error {
	opts := cli.ParseArgs(args)
	if opts.Help {
		_, err := fmt.Fprint(out, cli.Usage)
		return err
	}

	cfg, cfgErr := app.LoadConfig(opts.ConfigPath)

	// ---- Logger ----
	var logger *zap.Logger
	var logErr error
	if cfg.Log.Debug {
		logger, logErr = zap.NewDevelopment()
	} else {
		logger, logErr = zap.NewProduction()
	}
	if logErr != nil {
		log.Fatalf("logger: %v", logErr)
	}
	defer logger.Sync()

	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))
	if cfgErr != nil {
		logger.Warn("config not loaded, using defaults", zap.String("path", opts.ConfigPath), zap.Error(cfgErr))
	}

	a := app.New(runID, cfg, opts, logger)
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("close failed", zap.Error(err))
		}
	}()

	results := a.LoadSources()
	logger.Debug("sources loaded", zap.Int("loaded", len(results)), zap.Int("given", len(opts.Sources)))

	if err := a.Report(out); err != nil {
		return err
	}
	if !interactive {
		return nil
	}
	return a.Manage(in, out)
}
