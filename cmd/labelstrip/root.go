package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string

	opts := generateOptions{}

	rootCmd := &cobra.Command{
		Use:   "labelstrip",
		Short: "Generate printable asset tag label strips",
		Long: `Generate a strip of asset tag labels, each pairing a QR code with the
human-readable asset ID. The QR payload links to the asset on the configured
inventory server. The strip is written as a PNG and can optionally be sent to
a label printer via ptouch-print.

Examples:
  labelstrip --start 001-086 --end 001-090
  labelstrip --start 001-086 --end 001-090 --domain box.example.com --print
  labelstrip --start 000-999 --end 001-010 --output batch.png`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("start") && !cmd.Flags().Changed("end") {
				return cmd.Help()
			}
			opts.configPath = configFlag
			opts.logLevel = logLevelFlag
			opts.logFormat = logFormatFlag
			return runGenerate(cmd, opts)
		},
	}

	rootCmd.Flags().StringVar(&opts.start, "start", "", "Starting asset ID, e.g. 001-086")
	rootCmd.Flags().StringVar(&opts.end, "end", "", "Ending asset ID (inclusive), e.g. 001-090")
	rootCmd.Flags().StringVar(&opts.domain, "domain", "", "Inventory domain for QR payload URLs (overrides config and HOMEBOX_DOMAIN)")
	rootCmd.Flags().StringVar(&opts.output, "output", "", "Output image filename (default from config: asset_labels.png)")
	rootCmd.Flags().BoolVar(&opts.print, "print", false, "Send the generated strip to the label printer")

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format override (console, json)")

	rootCmd.AddCommand(newConfigCommand(&configFlag))
	rootCmd.AddCommand(newDepsCommand(&configFlag))

	return rootCmd
}
