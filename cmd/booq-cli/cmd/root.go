package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"booq/internal/adapters/booklooker"
	"booq/internal/adapters/console"
	"booq/internal/adapters/filesystem"
	"booq/internal/adapters/wordpress"
	"booq/internal/application/commands"
	"booq/internal/config"
	"booq/internal/ports"
)

var (
	configFile  string
	galleryPath string
	outputPath  string
	noColor     bool
	verbose     bool

	cfg      *config.Config
	reporter ports.Reporter
)

var rootCmd = &cobra.Command{
	Use:   "booq-cli",
	Short: "Publish a Booklooker image gallery",
	Long: `booq-cli keeps a folder of Booklooker item images in sync with the
shop's active inventory and publishes it as a static gallery page.

Duplicate image variants are deleted, images of sold items are moved to
Sold/, and index.html plus images/ are written to the output folder.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		reporter = console.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), console.ColorEnabled(noColor))

		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "init" {
			return nil
		}

		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		loaded.ApplyFlags(galleryPath, outputPath)
		cfg = loaded

		if verbose {
			if cfg.File != "" {
				reporter.Info("Config: %s", cfg.File)
			} else {
				reporter.Info("Config: none found, using defaults and environment")
			}
		}
		for _, w := range cfg.Warnings() {
			reporter.Warn("%s", w)
		}
		return nil
	},
}

// Execute runs the root command through fang
func Execute(version string) error {
	return fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ~/.config/booq/config.yaml or ~/.booq.yaml)")
	rootCmd.PersistentFlags().StringVarP(&galleryPath, "gallery", "g", "", "folder with the image export")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "folder for index.html and images/")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "report config file, kept and skipped images")
}

// newSyncCommand wires the production adapters for the loaded configuration
func newSyncCommand() *commands.SyncCommand {
	return commands.NewSyncCommand(
		booklooker.NewClient(booklooker.DefaultBaseURL),
		wordpress.NewEnricher(),
		filesystem.NewImageStore(cfg.OutputPath),
		filesystem.NewOutputTree(),
		reporter,
		cfg.ToSyncOptions(),
	)
}
