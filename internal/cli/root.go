package cli

import (
	"os"

	"vehicle-auction/internal/config"
	"vehicle-auction/utils"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	envFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "auctiond",
		Short:        "Vehicle auction service",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a config file (defaults to ./config.yaml when present)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log.level")

	serve := serveCmd(opts)
	cmd.RunE = serve.RunE
	cmd.AddCommand(serve)
	cmd.AddCommand(migrateCmd(opts))
	return cmd
}

// load resolves configuration and applies the log level
func (o *rootOptions) load() (*config.Config, error) {
	if err := config.LoadEnvFiles(o.envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if err := utils.SetLevel(cfg.Log.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}
